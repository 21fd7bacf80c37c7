package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/uprisingink/studio-api/internal/audit"
	domain "github.com/uprisingink/studio-api/internal/domain/appointment"
	"github.com/uprisingink/studio-api/internal/httperr"
	"github.com/uprisingink/studio-api/internal/models"
	"github.com/uprisingink/studio-api/internal/payments"
)

// CheckoutCreator abstracts the payment provider so tests can stub it.
type CheckoutCreator interface {
	CreateForAppointment(ctx context.Context, ap *models.Appointment) (*payments.Checkout, error)
}

// ======================================================
// DEPOSIT CHECKOUT
// ======================================================

type DepositCheckout struct {
	repo     domain.Repository
	checkout CheckoutCreator
	audit    *audit.Dispatcher
}

func NewDepositCheckout(
	repo domain.Repository,
	checkout CheckoutCreator,
	audit *audit.Dispatcher,
) *DepositCheckout {
	return &DepositCheckout{repo: repo, checkout: checkout, audit: audit}
}

// Execute creates a hosted checkout for the appointment's deposit. Only
// the owning client (or an admin) can start one, and only while the
// deposit is outstanding.
func (uc *DepositCheckout) Execute(
	ctx context.Context,
	appointmentID, actorProfileID, actorRole string,
) (*payments.Checkout, error) {

	if uc.checkout == nil {
		return nil, httperr.ErrBusiness("payments_disabled")
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	if actorRole == models.RoleClient {
		client, err := uc.repo.GetOrCreateClientByProfileID(ctx, actorProfileID)
		if err != nil {
			return nil, err
		}
		if ap.ClientID != client.ID {
			return nil, httperr.ErrBusiness("not_participant")
		}
	} else if actorRole != models.RoleManager && actorRole != models.RoleOwner {
		return nil, httperr.ErrBusiness("not_participant")
	}

	if ap.DepositPaid {
		return nil, httperr.ErrBusiness("deposit_already_paid")
	}
	if domain.IsTerminal(domain.Status(ap.Status)) {
		return nil, httperr.ErrBusiness("appointment_closed")
	}

	out, err := uc.checkout.CreateForAppointment(ctx, ap)
	if err != nil {
		return nil, httperr.ErrBusiness("payment_provider_failed")
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorProfileID,
		Action:   "deposit_checkout_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"amount": out.Amount},
	})

	return out, nil
}

// ======================================================
// MARK DEPOSIT PAID
// ======================================================

type MarkDepositPaid struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewMarkDepositPaid(repo domain.Repository, audit *audit.Dispatcher) *MarkDepositPaid {
	return &MarkDepositPaid{repo: repo, audit: audit}
}

// Execute records the deposit as settled. The assigned artist or an
// admin does this after confirming payment arrived.
func (uc *MarkDepositPaid) Execute(
	ctx context.Context,
	appointmentID, actorProfileID, actorRole string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	switch actorRole {
	case models.RoleArtist:
		artist, err := uc.repo.GetArtistByProfileID(ctx, actorProfileID)
		if err != nil {
			return nil, httperr.ErrBusiness("artist_record_missing")
		}
		if ap.ArtistID != artist.ID {
			return nil, httperr.ErrBusiness("not_participant")
		}
	case models.RoleManager, models.RoleOwner:
		// staff may settle any appointment
	default:
		return nil, httperr.ErrBusiness("not_participant")
	}

	if ap.DepositPaid {
		return ap, nil
	}

	ap.DepositPaid = true
	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorProfileID,
		Action:   "deposit_marked_paid",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"amount": ap.DepositAmount},
	})

	return ap, nil
}
