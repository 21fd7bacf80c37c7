package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/uprisingink/studio-api/internal/audit"
	domain "github.com/uprisingink/studio-api/internal/domain/appointment"
	"github.com/uprisingink/studio-api/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes a booking request. Only a still-pending appointment may be
// deleted, and only by the client who owns it or by studio staff.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	appointmentID string,
	actorProfileID string,
	actorRole string,
) error {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("appointment_not_found")
		}
		return err
	}

	actor := domain.ActorFor(actorRole)

	if actor == domain.ActorClient {
		client, err := uc.repo.GetOrCreateClientByProfileID(ctx, actorProfileID)
		if err != nil || client.ID != ap.ClientID {
			return httperr.ErrBusiness("delete_not_allowed")
		}
	}

	if err := domain.CanDelete(domain.Status(ap.Status), actor); err != nil {
		return err
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorProfileID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"status": ap.Status},
	})

	return nil
}
