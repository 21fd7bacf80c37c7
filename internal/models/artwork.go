package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ArtworkStatusDraft      = "draft"
	ArtworkStatusInProgress = "in_progress"
	ArtworkStatusCompleted  = "completed"
	ArtworkStatusArchived   = "archived"
)

// Artwork is an artist-authored media entry. Status is set directly by the
// caller; unlike appointments there is no enforced transition order.
type Artwork struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ArtistID string `gorm:"type:uuid;not null;index" json:"artist_id"`
	Artist   Artist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"artist"`

	ClientID      *string `gorm:"type:uuid" json:"client_id"`
	AppointmentID *string `gorm:"type:uuid" json:"appointment_id"`

	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"size:2000" json:"description"`
	ImageURL    string `gorm:"size:500;not null" json:"image_url"`

	StyleTags datatypes.JSON `json:"style_tags"`

	IsPublic         bool `gorm:"default:false" json:"is_public"`
	IsPortfolioPiece bool `gorm:"default:false" json:"is_portfolio_piece"`

	Status         string     `gorm:"size:20;default:'completed'" json:"status"`
	CompletionDate *time.Time `json:"completion_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Artwork) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

func IsValidArtworkStatus(status string) bool {
	switch status {
	case ArtworkStatusDraft, ArtworkStatusInProgress, ArtworkStatusCompleted, ArtworkStatusArchived:
		return true
	}
	return false
}
