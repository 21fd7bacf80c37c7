package message

import (
	"context"
	"time"

	"github.com/uprisingink/studio-api/internal/models"
)

type Repository interface {
	// -------- Participants --------
	GetProfileByID(
		ctx context.Context,
		id string,
	) (*models.Profile, error)

	// -------- Messages --------
	CreateMessage(
		ctx context.Context,
		msg *models.Message,
	) error

	GetMessageByID(
		ctx context.Context,
		id string,
	) (*models.Message, error)

	// ListThread returns every message in a thread, created_at ascending.
	ListThread(
		ctx context.Context,
		threadID string,
	) ([]models.Message, error)

	// ListForProfile returns every message the profile sent or received,
	// newest first. Used to build the conversation overview.
	ListForProfile(
		ctx context.Context,
		profileID string,
	) ([]models.Message, error)

	// MarkRead sets read_at only when it is still null, so the first call
	// wins and repeats are no-ops.
	MarkRead(
		ctx context.Context,
		messageID string,
		at time.Time,
	) error

	CountUnread(
		ctx context.Context,
		recipientID string,
	) (int64, error)
}
