package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Artist struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ProfileID string  `gorm:"type:uuid;uniqueIndex;not null" json:"profile_id"`
	Profile   Profile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"profile"`

	Bio             string         `gorm:"size:2000" json:"bio"`
	Specializations datatypes.JSON `json:"specializations"`
	HourlyRate      float64        `json:"hourly_rate"`
	ExperienceYears int            `json:"experience_years"`
	IsAvailable     bool           `gorm:"default:true" json:"is_available"`

	InstagramHandle string `gorm:"size:100" json:"instagram_handle"`
	FacebookURL     string `gorm:"size:255" json:"facebook_url"`
	WebsiteURL      string `gorm:"size:255" json:"website_url"`

	// weekday -> {"start": "HH:MM", "end": "HH:MM"}
	WorkingHours datatypes.JSON `json:"working_hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Artist) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
