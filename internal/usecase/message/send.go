package message

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/uprisingink/studio-api/internal/audit"
	domain "github.com/uprisingink/studio-api/internal/domain/message"
	"github.com/uprisingink/studio-api/internal/httperr"
	"github.com/uprisingink/studio-api/internal/models"
)

// Notifier pushes a freshly stored message into the recipient's live
// subscription, when one is open.
type Notifier interface {
	SendToProfile(profileID string, event any) bool
}

// ======================================================
// INPUT
// ======================================================

type SendMessageInput struct {
	SenderID      string
	RecipientID   string
	Content       string
	MessageType   string
	AppointmentID *string
}

// ======================================================
// USE CASE
// ======================================================

type SendMessage struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	notify Notifier
}

func NewSendMessage(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notify Notifier,
) *SendMessage {
	return &SendMessage{
		repo:   repo,
		audit:  audit,
		notify: notify,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SendMessage) Execute(
	ctx context.Context,
	in SendMessageInput,
) (*models.Message, error) {

	if err := domain.ValidateContent(in.Content); err != nil {
		return nil, err
	}

	if in.RecipientID == "" || in.RecipientID == in.SenderID {
		return nil, httperr.ErrBusiness("invalid_recipient")
	}

	// Both participants must resolve to real profiles.
	if _, err := uc.repo.GetProfileByID(ctx, in.RecipientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("recipient_not_found")
		}
		return nil, err
	}

	msgType := in.MessageType
	if msgType == "" {
		msgType = models.MessageTypeText
	}

	msg := &models.Message{
		ThreadID:      domain.ThreadID(in.SenderID, in.RecipientID),
		SenderID:      in.SenderID,
		RecipientID:   in.RecipientID,
		Content:       in.Content,
		MessageType:   msgType,
		AppointmentID: in.AppointmentID,
	}

	if err := uc.repo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.SenderID,
		Action:   "message_sent",
		Entity:   "message",
		EntityID: &msg.ID,
	})

	if uc.notify != nil {
		uc.notify.SendToProfile(in.RecipientID, MessageEvent{
			Type:    "message_received",
			Message: msg,
		})
	}

	return msg, nil
}

// MessageEvent is the payload pushed to open messaging views.
type MessageEvent struct {
	Type    string          `json:"type"`
	Message *models.Message `json:"message"`
}
