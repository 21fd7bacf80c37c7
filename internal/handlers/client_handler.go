package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/uprisingink/studio-api/internal/httperr"
	"github.com/uprisingink/studio-api/internal/middleware"
	"github.com/uprisingink/studio-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateClientRequest struct {
	PreferredArtistID     *string `json:"preferred_artist_id"`
	PhoneNumber           *string `json:"phone_number"`
	DateOfBirth           *string `json:"date_of_birth"`
	MedicalConditions     *string `json:"medical_conditions"`
	Allergies             *string `json:"allergies"`
	EmergencyContactName  *string `json:"emergency_contact_name"`
	EmergencyContactPhone *string `json:"emergency_contact_phone"`
}

// ======================================================
// SELF-SERVICE
// ======================================================

// UpdateMe fills in the intake details clients provide before their first
// session. The record is created lazily if it does not exist yet.
func (h *ClientHandler) UpdateMe(c *gin.Context) {
	profileID := c.GetString(middleware.ContextProfileID)

	var client models.Client
	err := h.db.Where("profile_id = ?", profileID).First(&client).Error
	if err == gorm.ErrRecordNotFound {
		client = models.Client{ProfileID: profileID}
		if err = h.db.Create(&client).Error; err != nil {
			httperr.Internal(c, "client_create_failed", "Could not create client record.")
			return
		}
	} else if err != nil {
		httperr.Internal(c, "internal_error", "Could not load client record.")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid client payload.")
		return
	}

	if req.PreferredArtistID != nil {
		if *req.PreferredArtistID == "" {
			client.PreferredArtistID = nil
		} else {
			var count int64
			h.db.Model(&models.Artist{}).Where("id = ?", *req.PreferredArtistID).Count(&count)
			if count == 0 {
				httperr.BadRequest(c, "artist_not_found", "Preferred artist does not exist.")
				return
			}
			client.PreferredArtistID = req.PreferredArtistID
		}
	}
	if req.PhoneNumber != nil {
		client.PhoneNumber = *req.PhoneNumber
	}
	if req.DateOfBirth != nil {
		if *req.DateOfBirth == "" {
			client.DateOfBirth = nil
		} else {
			dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
			if err != nil {
				httperr.BadRequest(c, "invalid_date_of_birth", "Use YYYY-MM-DD.")
				return
			}
			client.DateOfBirth = &dob
		}
	}
	if req.MedicalConditions != nil {
		client.MedicalConditions = *req.MedicalConditions
	}
	if req.Allergies != nil {
		client.Allergies = *req.Allergies
	}
	if req.EmergencyContactName != nil {
		client.EmergencyContactName = *req.EmergencyContactName
	}
	if req.EmergencyContactPhone != nil {
		client.EmergencyContactPhone = *req.EmergencyContactPhone
	}

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "client_update_failed", "Could not update client record.")
		return
	}

	c.JSON(http.StatusOK, client)
}
