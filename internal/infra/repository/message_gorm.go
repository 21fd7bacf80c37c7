package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/uprisingink/studio-api/internal/domain/message"
	"github.com/uprisingink/studio-api/internal/models"
)

type MessageGormRepository struct {
	db *gorm.DB
}

func NewMessageGormRepository(db *gorm.DB) *MessageGormRepository {
	return &MessageGormRepository{db: db}
}

func (r *MessageGormRepository) GetProfileByID(
	ctx context.Context,
	id string,
) (*models.Profile, error) {

	var profile models.Profile
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *MessageGormRepository) CreateMessage(
	ctx context.Context,
	msg *models.Message,
) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *MessageGormRepository) GetMessageByID(
	ctx context.Context,
	id string,
) (*models.Message, error) {

	var msg models.Message
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *MessageGormRepository) ListThread(
	ctx context.Context,
	threadID string,
) ([]models.Message, error) {

	var msgs []models.Message
	if err := r.db.WithContext(ctx).
		Preload("Sender").
		Preload("Recipient").
		Where("thread_id = ?", threadID).
		Order("created_at ASC").
		Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *MessageGormRepository) ListForProfile(
	ctx context.Context,
	profileID string,
) ([]models.Message, error) {

	var msgs []models.Message
	if err := r.db.WithContext(ctx).
		Preload("Sender").
		Preload("Recipient").
		Where("sender_id = ? OR recipient_id = ?", profileID, profileID).
		Order("created_at DESC").
		Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

// MarkRead only touches rows where read_at is still null: the first call
// wins, repeat calls affect zero rows.
func (r *MessageGormRepository) MarkRead(
	ctx context.Context,
	messageID string,
	at time.Time,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("id = ? AND read_at IS NULL", messageID).
		Update("read_at", at).Error
}

func (r *MessageGormRepository) CountUnread(
	ctx context.Context,
	recipientID string,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("recipient_id = ? AND read_at IS NULL", recipientID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Compile-time check
var _ domain.Repository = (*MessageGormRepository)(nil)
