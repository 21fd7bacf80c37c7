package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uprisingink/studio-api/internal/httperr"
	"github.com/uprisingink/studio-api/internal/sitecontent"
)

// ======================================================
// HANDLER
// ======================================================

type SiteHandler struct {
	content *sitecontent.Store
}

func NewSiteHandler(content *sitecontent.Store) *SiteHandler {
	return &SiteHandler{content: content}
}

// ======================================================
// HERO BACKGROUND
// ======================================================

func (h *SiteHandler) GetHeroBackground(c *gin.Context) {
	dataURL, err := h.content.HeroBackground(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "hero_fetch_failed", "Could not load hero background.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"hero_background": dataURL})
}

type SetHeroRequest struct {
	HeroBackground string `json:"hero_background" binding:"required"`
}

func (h *SiteHandler) SetHeroBackground(c *gin.Context) {
	var req SetHeroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "hero_background is required.")
		return
	}

	if err := h.content.SetHeroBackground(c.Request.Context(), req.HeroBackground); err != nil {
		httperr.BadRequest(c, "invalid_hero_background", "Expected an image data URL.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ======================================================
// ASSET MANIFEST
// ======================================================

func (h *SiteHandler) GetAssetManifest(c *gin.Context) {
	version, urls, err := h.content.AssetManifest(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "manifest_failed", "Could not load asset manifest.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"version": version,
		"assets":  urls,
	})
}
