package review

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/uprisingink/studio-api/internal/audit"
	appointmentdomain "github.com/uprisingink/studio-api/internal/domain/appointment"
	domain "github.com/uprisingink/studio-api/internal/domain/review"
	"github.com/uprisingink/studio-api/internal/httperr"
	"github.com/uprisingink/studio-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateReviewInput struct {
	ClientProfileID string
	AppointmentID   string
	Rating          int
	ReviewText      string
	IsPublic        bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateReview struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateReview(repo domain.Repository, audit *audit.Dispatcher) *CreateReview {
	return &CreateReview{repo: repo, audit: audit}
}

// Execute lets a client review their own completed appointment, once.
func (uc *CreateReview) Execute(
	ctx context.Context,
	in CreateReviewInput,
) (*models.Review, error) {

	if in.Rating < 1 || in.Rating > 5 {
		return nil, httperr.ErrBusiness("invalid_rating")
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	client, err := uc.repo.GetClientByProfileID(ctx, in.ClientProfileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("client_not_found")
		}
		return nil, err
	}

	if ap.ClientID != client.ID {
		return nil, httperr.ErrBusiness("not_participant")
	}
	if ap.Status != string(appointmentdomain.StatusCompleted) {
		return nil, httperr.ErrBusiness("appointment_not_completed")
	}

	if _, err := uc.repo.GetReviewByAppointmentID(ctx, in.AppointmentID); err == nil {
		return nil, httperr.ErrBusiness("already_reviewed")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	rv := &models.Review{
		AppointmentID: ap.ID,
		ArtistID:      ap.ArtistID,
		ClientID:      client.ID,
		Rating:        in.Rating,
		ReviewText:    strings.TrimSpace(in.ReviewText),
		IsPublic:      in.IsPublic,
	}

	if err := uc.repo.CreateReview(ctx, rv); err != nil {
		// unique index on appointment_id backstops the pre-check
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness("already_reviewed")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ClientProfileID,
		Action:   "review_created",
		Entity:   "review",
		EntityID: &rv.ID,
		Metadata: map[string]any{"rating": in.Rating},
	})

	return rv, nil
}

// ======================================================
// LISTING
// ======================================================

type ListReviews struct {
	repo domain.Repository
}

func NewListReviews(repo domain.Repository) *ListReviews {
	return &ListReviews{repo: repo}
}

func (uc *ListReviews) ForArtist(ctx context.Context, artistID string) ([]models.Review, error) {
	return uc.repo.ListPublicForArtist(ctx, artistID)
}
