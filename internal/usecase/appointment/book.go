package appointment

import (
	"context"
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/uprisingink/studio-api/internal/audit"
	domain "github.com/uprisingink/studio-api/internal/domain/appointment"
	"github.com/uprisingink/studio-api/internal/httperr"
	"github.com/uprisingink/studio-api/internal/models"
)

// Notifier pushes events into live portal subscriptions. Implemented by the
// realtime hub; the bool result is whether the profile was connected.
type Notifier interface {
	SendToProfile(profileID string, event any) bool
}

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	// Profile of the authenticated client placing the request.
	ClientProfileID string

	ArtistID        string
	AppointmentDate time.Time
	DurationHours   float64
	Description     string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	notify Notifier
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notify Notifier,
) *BookAppointment {
	return &BookAppointment{
		repo:   repo,
		audit:  audit,
		notify: notify,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	if in.ArtistID == "" || in.AppointmentDate.IsZero() || in.DurationHours <= 0 {
		return nil, httperr.ErrBusiness("missing_booking_fields")
	}

	if in.AppointmentDate.Before(time.Now()) {
		return nil, httperr.ErrBusiness("date_in_past")
	}

	artist, err := uc.repo.GetArtistByID(ctx, in.ArtistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("artist_not_found")
		}
		return nil, err
	}

	if !artist.IsAvailable {
		return nil, httperr.ErrBusiness("artist_unavailable")
	}

	client, err := uc.repo.GetOrCreateClientByProfileID(ctx, in.ClientProfileID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	estimate := domain.EstimatePrice(artist.HourlyRate, in.DurationHours)
	estimate = math.Round(estimate*100) / 100

	ap := &models.Appointment{
		ClientID:        client.ID,
		ArtistID:        artist.ID,
		AppointmentDate: in.AppointmentDate,
		DurationHours:   in.DurationHours,
		Status:          string(domain.InitialStatus()),
		EstimatedPrice:  estimate,
		DepositAmount:   math.Round(estimate*domain.DefaultDepositRate*100) / 100,
		Description:     in.Description,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ClientProfileID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	if uc.notify != nil {
		uc.notify.SendToProfile(artist.ProfileID, AppointmentEvent{
			Type:        "appointment_booked",
			Appointment: ap,
		})
	}

	return ap, nil
}

// AppointmentEvent is the payload pushed to live calendar/list views.
type AppointmentEvent struct {
	Type        string              `json:"type"`
	Appointment *models.Appointment `json:"appointment"`
}
