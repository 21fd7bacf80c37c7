package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ClientID string `gorm:"type:uuid;not null;index" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	ArtistID string `gorm:"type:uuid;not null;index" json:"artist_id"`
	Artist   Artist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"artist"`

	AppointmentDate time.Time `gorm:"not null" json:"appointment_date"`
	DurationHours   float64   `json:"duration_hours"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	EstimatedPrice float64  `json:"estimated_price"`
	ActualPrice    *float64 `json:"actual_price"`

	DepositAmount float64 `json:"deposit_amount"`
	DepositPaid   bool    `gorm:"default:false" json:"deposit_paid"`

	Description string `gorm:"size:2000" json:"description"`
	Notes       string `gorm:"size:2000" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
