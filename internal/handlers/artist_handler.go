package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/uprisingink/studio-api/internal/httperr"
	"github.com/uprisingink/studio-api/internal/httpresp"
	"github.com/uprisingink/studio-api/internal/middleware"
	"github.com/uprisingink/studio-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type ArtistHandler struct {
	db *gorm.DB
}

func NewArtistHandler(db *gorm.DB) *ArtistHandler {
	return &ArtistHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateArtistRequest struct {
	Bio             *string  `json:"bio"`
	Specializations []string `json:"specializations"`
	HourlyRate      *float64 `json:"hourly_rate"`
	ExperienceYears *int     `json:"experience_years"`
	IsAvailable     *bool    `json:"is_available"`
	InstagramHandle *string  `json:"instagram_handle"`
	FacebookURL     *string  `json:"facebook_url"`
	WebsiteURL      *string  `json:"website_url"`
	WorkingHours    any      `json:"working_hours"`
}

// ======================================================
// PUBLIC LISTING
// ======================================================

func (h *ArtistHandler) List(c *gin.Context) {
	q := h.db.Preload("Profile")

	if c.Query("available") == "true" {
		q = q.Where("is_available = ?", true)
	}

	var artists []models.Artist
	if err := q.Order("created_at ASC").Find(&artists).Error; err != nil {
		httperr.Internal(c, "artist_list_failed", "Could not list artists.")
		return
	}

	httpresp.List(c, artists)
}

func (h *ArtistHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var artist models.Artist
	if err := h.db.Preload("Profile").
		Where("id = ?", id).
		First(&artist).Error; err != nil {

		httperr.NotFound(c, "artist_not_found", "Artist not found.")
		return
	}

	httpresp.OK(c, artist)
}

// ======================================================
// SELF-SERVICE PROFILE
// ======================================================

func (h *ArtistHandler) UpdateMe(c *gin.Context) {
	profileID := c.GetString(middleware.ContextProfileID)

	var artist models.Artist
	if err := h.db.Where("profile_id = ?", profileID).First(&artist).Error; err != nil {
		httperr.NotFound(c, "artist_record_missing", "No artist record for this account.")
		return
	}

	var req UpdateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid artist payload.")
		return
	}

	if req.Bio != nil {
		artist.Bio = *req.Bio
	}
	if req.Specializations != nil {
		if b, err := json.Marshal(req.Specializations); err == nil {
			artist.Specializations = datatypes.JSON(b)
		}
	}
	if req.HourlyRate != nil {
		if *req.HourlyRate < 0 {
			httperr.BadRequest(c, "invalid_hourly_rate", "Hourly rate cannot be negative.")
			return
		}
		artist.HourlyRate = *req.HourlyRate
	}
	if req.ExperienceYears != nil {
		artist.ExperienceYears = *req.ExperienceYears
	}
	if req.IsAvailable != nil {
		artist.IsAvailable = *req.IsAvailable
	}
	if req.InstagramHandle != nil {
		artist.InstagramHandle = *req.InstagramHandle
	}
	if req.FacebookURL != nil {
		artist.FacebookURL = *req.FacebookURL
	}
	if req.WebsiteURL != nil {
		artist.WebsiteURL = *req.WebsiteURL
	}
	if req.WorkingHours != nil {
		if b, err := json.Marshal(req.WorkingHours); err == nil {
			artist.WorkingHours = datatypes.JSON(b)
		}
	}

	if err := h.db.Save(&artist).Error; err != nil {
		httperr.Internal(c, "artist_update_failed", "Could not update artist profile.")
		return
	}

	c.JSON(http.StatusOK, artist)
}
