package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MessageTypeText        = "text"
	MessageTypeAppointment = "appointment"
	MessageTypeImage       = "image"
)

// Message is immutable once created except for ReadAt. ThreadID is derived
// from the sorted participant pair so a thread can be fetched without scanning
// every message (see domain/message).
type Message struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ThreadID string `gorm:"size:64;not null;index" json:"thread_id"`

	SenderID string  `gorm:"type:uuid;not null;index" json:"sender_id"`
	Sender   Profile `gorm:"foreignKey:SenderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"sender"`

	RecipientID string  `gorm:"type:uuid;not null;index" json:"recipient_id"`
	Recipient   Profile `gorm:"foreignKey:RecipientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"recipient"`

	Content     string `gorm:"size:4000;not null" json:"content"`
	MessageType string `gorm:"size:20;default:'text'" json:"message_type"`

	AppointmentID *string `gorm:"type:uuid" json:"appointment_id"`
	AttachmentURL string  `gorm:"size:500" json:"attachment_url,omitempty"`

	ReadAt    *time.Time `json:"read_at"`
	CreatedAt time.Time  `json:"created_at"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
