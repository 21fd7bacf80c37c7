package message

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/uprisingink/studio-api/internal/domain/message"
	"github.com/uprisingink/studio-api/internal/httperr"
	"github.com/uprisingink/studio-api/internal/models"
	"github.com/uprisingink/studio-api/internal/timezone"
)

type MarkRead struct {
	repo domain.Repository
}

func NewMarkRead(repo domain.Repository) *MarkRead {
	return &MarkRead{repo: repo}
}

// Execute stamps read_at on a message addressed to the caller. Idempotent:
// the repository only writes when read_at is still null, so the first call
// wins and later calls return the same timestamp.
func (uc *MarkRead) Execute(
	ctx context.Context,
	messageID string,
	readerProfileID string,
) (*models.Message, error) {

	msg, err := uc.repo.GetMessageByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("message_not_found")
		}
		return nil, err
	}

	if msg.RecipientID != readerProfileID {
		return nil, httperr.ErrBusiness("not_recipient")
	}

	if err := uc.repo.MarkRead(ctx, messageID, timezone.Now()); err != nil {
		return nil, err
	}

	return uc.repo.GetMessageByID(ctx, messageID)
}
