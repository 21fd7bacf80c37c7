package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	AppointmentID string      `gorm:"type:uuid;uniqueIndex;not null" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ArtistID string `gorm:"type:uuid;not null;index" json:"artist_id"`
	ClientID string `gorm:"type:uuid;not null;index" json:"client_id"`

	Rating     int    `gorm:"not null" json:"rating"`
	ReviewText string `gorm:"size:2000" json:"review_text"`
	IsPublic   bool   `gorm:"default:true" json:"is_public"`

	CreatedAt time.Time `json:"created_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
