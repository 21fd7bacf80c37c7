package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/uprisingink/studio-api/internal/domain/artwork"
	"github.com/uprisingink/studio-api/internal/httperr"
	"github.com/uprisingink/studio-api/internal/httpresp"
	"github.com/uprisingink/studio-api/internal/middleware"
	usecase "github.com/uprisingink/studio-api/internal/usecase/artwork"
)

// ======================================================
// HANDLER
// ======================================================

type ArtworkHandler struct {
	upload *usecase.UploadArtwork
	update *usecase.UpdateArtwork
	toggle *usecase.ToggleVisibility
	delete *usecase.DeleteArtwork
	list   *usecase.ListArtwork
}

func NewArtworkHandler(
	upload *usecase.UploadArtwork,
	update *usecase.UpdateArtwork,
	toggle *usecase.ToggleVisibility,
	del *usecase.DeleteArtwork,
	list *usecase.ListArtwork,
) *ArtworkHandler {
	return &ArtworkHandler{
		upload: upload,
		update: update,
		toggle: toggle,
		delete: del,
		list:   list,
	}
}

// ======================================================
// UPLOAD (multipart)
// ======================================================

func (h *ArtworkHandler) Upload(c *gin.Context) {
	profileID := c.GetString(middleware.ContextProfileID)

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Attach the artwork as the 'image' field.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, usecase.MaxUploadBytes+1))
	if err != nil {
		httperr.BadRequest(c, "unreadable_image", "Could not read the uploaded file.")
		return
	}

	in := usecase.UploadArtworkInput{
		ArtistProfileID:  profileID,
		Title:            c.PostForm("title"),
		Description:      c.PostForm("description"),
		StyleTags:        splitTags(c.PostForm("style_tags")),
		IsPublic:         c.PostForm("is_public") == "true",
		IsPortfolioPiece: c.PostForm("is_portfolio_piece") == "true",
		Status:           c.PostForm("status"),
		ImageData:        data,
		ContentType:      header.Header.Get("Content-Type"),
	}
	if v := c.PostForm("client_id"); v != "" {
		in.ClientID = &v
	}
	if v := c.PostForm("appointment_id"); v != "" {
		in.AppointmentID = &v
	}

	aw, err := h.upload.Execute(c.Request.Context(), in)
	if err != nil {
		if !writeBusiness(c, err) {
			httperr.Internal(c, "upload_failed", "Could not save artwork.")
		}
		return
	}

	httpresp.Created(c, aw)
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// ======================================================
// UPDATE / VISIBILITY
// ======================================================

type UpdateArtworkRequest struct {
	Title            *string  `json:"title"`
	Description      *string  `json:"description"`
	StyleTags        []string `json:"style_tags"`
	IsPublic         *bool    `json:"is_public"`
	IsPortfolioPiece *bool    `json:"is_portfolio_piece"`
	Status           *string  `json:"status"`
}

func (h *ArtworkHandler) Update(c *gin.Context) {
	profileID := c.GetString(middleware.ContextProfileID)

	var req UpdateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid artwork payload.")
		return
	}

	aw, err := h.update.Execute(c.Request.Context(), usecase.UpdateArtworkInput{
		ArtworkID:        c.Param("id"),
		ArtistProfileID:  profileID,
		Title:            req.Title,
		Description:      req.Description,
		StyleTags:        req.StyleTags,
		IsPublic:         req.IsPublic,
		IsPortfolioPiece: req.IsPortfolioPiece,
		Status:           req.Status,
	})
	if err != nil {
		if !writeBusiness(c, err) {
			httperr.Internal(c, "artwork_update_failed", "Could not update artwork.")
		}
		return
	}

	httpresp.OK(c, aw)
}

// ToggleVisibility flips the public flag. Concurrent toggles resolve as
// last write wins.
func (h *ArtworkHandler) ToggleVisibility(c *gin.Context) {
	profileID := c.GetString(middleware.ContextProfileID)

	aw, err := h.toggle.Execute(c.Request.Context(), c.Param("id"), profileID)
	if err != nil {
		if !writeBusiness(c, err) {
			httperr.Internal(c, "toggle_failed", "Could not change visibility.")
		}
		return
	}

	httpresp.OK(c, aw)
}

func (h *ArtworkHandler) Delete(c *gin.Context) {
	profileID := c.GetString(middleware.ContextProfileID)

	if err := h.delete.Execute(c.Request.Context(), c.Param("id"), profileID); err != nil {
		if !writeBusiness(c, err) {
			httperr.Internal(c, "artwork_delete_failed", "Could not delete artwork.")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// LISTINGS
// ======================================================

func listFilterFromQuery(c *gin.Context) domain.ListFilter {
	return domain.ListFilter{
		StyleTag:      c.Query("style"),
		Query:         c.Query("q"),
		PortfolioOnly: c.Query("portfolio") == "true",
	}
}

// Gallery is the public portfolio view for one artist.
func (h *ArtworkHandler) Gallery(c *gin.Context) {
	filter := listFilterFromQuery(c)
	filter.PublicOnly = true

	works, err := h.list.ForArtist(c.Request.Context(), c.Param("id"), filter)
	if err != nil {
		httperr.Internal(c, "gallery_failed", "Could not load gallery.")
		return
	}

	httpresp.List(c, works)
}

// Mine lists everything the signed-in artist has uploaded.
func (h *ArtworkHandler) Mine(c *gin.Context) {
	profileID := c.GetString(middleware.ContextProfileID)

	works, err := h.list.Mine(c.Request.Context(), profileID, listFilterFromQuery(c))
	if err != nil {
		if !writeBusiness(c, err) {
			httperr.Internal(c, "artwork_list_failed", "Could not list artwork.")
		}
		return
	}

	httpresp.List(c, works)
}
