package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/uprisingink/studio-api/internal/audit"
	domain "github.com/uprisingink/studio-api/internal/domain/appointment"
	"github.com/uprisingink/studio-api/internal/httperr"
	"github.com/uprisingink/studio-api/internal/models"
	"github.com/uprisingink/studio-api/internal/timezone"
)

type TransitionAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	notify Notifier
}

func NewTransitionAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notify Notifier,
) *TransitionAppointment {
	return &TransitionAppointment{
		repo:   repo,
		audit:  audit,
		notify: notify,
	}
}

// Execute moves an appointment along one lifecycle edge. The caller is
// identified by profile id and role; ownership is re-checked here rather than
// trusting the route that dispatched the request.
func (uc *TransitionAppointment) Execute(
	ctx context.Context,
	appointmentID string,
	newStatus string,
	actorProfileID string,
	actorRole string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	actor, err := uc.resolveActor(ctx, ap, actorProfileID, actorRole)
	if err != nil {
		return nil, err
	}

	now := timezone.Now()
	if err := domain.Transition(ap, domain.Status(newStatus), actor, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorProfileID,
		Action:   "appointment_" + newStatus,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	if uc.notify != nil {
		ev := AppointmentEvent{Type: "appointment_" + newStatus, Appointment: ap}
		uc.notify.SendToProfile(ap.Artist.ProfileID, ev)
		uc.notify.SendToProfile(ap.Client.ProfileID, ev)
	}

	return ap, nil
}

// resolveActor maps the caller onto the appointment. Staff act as admin;
// the booked artist and the owning client act as themselves; anyone else is
// rejected outright.
func (uc *TransitionAppointment) resolveActor(
	ctx context.Context,
	ap *models.Appointment,
	profileID string,
	role string,
) (domain.Actor, error) {

	switch role {
	case models.RoleManager, models.RoleOwner:
		return domain.ActorAdmin, nil

	case models.RoleArtist:
		artist, err := uc.repo.GetArtistByProfileID(ctx, profileID)
		if err != nil || artist.ID != ap.ArtistID {
			return "", httperr.ErrBusiness("not_participant")
		}
		return domain.ActorArtist, nil

	default:
		client, err := uc.repo.GetOrCreateClientByProfileID(ctx, profileID)
		if err != nil || client.ID != ap.ClientID {
			return "", httperr.ErrBusiness("not_participant")
		}
		return domain.ActorClient, nil
	}
}
