package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleClient  = "client"
	RoleArtist  = "artist"
	RoleManager = "manager"
	RoleOwner   = "owner"
)

// Profile is the canonical identity record; role is set only at account
// creation (privileged path) and never through the public API.
type Profile struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	FullName     string `gorm:"size:100" json:"full_name"`
	Role         string `gorm:"size:20;not null;default:'client'" json:"role"`
	ProfileImage string `gorm:"size:500" json:"profile_image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// IsAdmin reports whether the profile may use the admin portal.
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleManager || p.Role == RoleOwner
}

func IsValidRole(role string) bool {
	switch role {
	case RoleClient, RoleArtist, RoleManager, RoleOwner:
		return true
	}
	return false
}
