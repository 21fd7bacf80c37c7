package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/uprisingink/studio-api/internal/middleware"
	"github.com/uprisingink/studio-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

// GetMe resolves the caller's profile plus the role record their portal
// needs: artists get their artist row, clients their client row, staff
// just the profile.
func (h *MeHandler) GetMe(c *gin.Context) {
	profileID := c.GetString(middleware.ContextProfileID)

	var profile models.Profile
	if err := h.db.First(&profile, "id = ?", profileID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile_not_found"})
		return
	}

	resp := gin.H{"profile": profile}

	switch profile.Role {
	case models.RoleArtist:
		var artist models.Artist
		if err := h.db.Where("profile_id = ?", profileID).First(&artist).Error; err != nil {
			// Artist accounts must carry their record; surface the gap.
			c.JSON(http.StatusNotFound, gin.H{"error": "artist_record_missing"})
			return
		}
		resp["artist"] = artist

	case models.RoleClient:
		var client models.Client
		err := h.db.Where("profile_id = ?", profileID).First(&client).Error
		if err == gorm.ErrRecordNotFound {
			client = models.Client{ProfileID: profileID}
			if err = h.db.Create(&client).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_client_record"})
				return
			}
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
			return
		}
		resp["client"] = client
	}

	c.JSON(http.StatusOK, resp)
}
