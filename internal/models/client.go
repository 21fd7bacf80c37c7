package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client is the client-role extension of a Profile. Created lazily on the
// client's first portal visit, so every optional field starts empty.
type Client struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ProfileID string  `gorm:"type:uuid;uniqueIndex;not null" json:"profile_id"`
	Profile   Profile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"profile"`

	PreferredArtistID *string `gorm:"type:uuid" json:"preferred_artist_id"`

	PhoneNumber string     `gorm:"size:20" json:"phone_number"`
	DateOfBirth *time.Time `json:"date_of_birth"`

	MedicalConditions string `gorm:"size:1000" json:"medical_conditions"`
	Allergies         string `gorm:"size:1000" json:"allergies"`

	EmergencyContactName  string `gorm:"size:100" json:"emergency_contact_name"`
	EmergencyContactPhone string `gorm:"size:20" json:"emergency_contact_phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
