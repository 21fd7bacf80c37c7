package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/uprisingink/studio-api/internal/domain/review"
	"github.com/uprisingink/studio-api/internal/models"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) GetAppointmentByID(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *ReviewGormRepository) GetClientByProfileID(
	ctx context.Context,
	profileID string,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ReviewGormRepository) CreateReview(
	ctx context.Context,
	rv *models.Review,
) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *ReviewGormRepository) GetReviewByAppointmentID(
	ctx context.Context,
	appointmentID string,
) (*models.Review, error) {

	var rv models.Review
	if err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		First(&rv).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewGormRepository) ListPublicForArtist(
	ctx context.Context,
	artistID string,
) ([]models.Review, error) {

	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Where("artist_id = ? AND is_public = ?", artistID, true).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

var _ domain.Repository = (*ReviewGormRepository)(nil)
