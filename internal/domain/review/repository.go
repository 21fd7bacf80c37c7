package review

import (
	"context"

	"github.com/uprisingink/studio-api/internal/models"
)

type Repository interface {
	GetAppointmentByID(ctx context.Context, id string) (*models.Appointment, error)
	GetClientByProfileID(ctx context.Context, profileID string) (*models.Client, error)

	CreateReview(ctx context.Context, rv *models.Review) error
	GetReviewByAppointmentID(ctx context.Context, appointmentID string) (*models.Review, error)
	ListPublicForArtist(ctx context.Context, artistID string) ([]models.Review, error)
}
