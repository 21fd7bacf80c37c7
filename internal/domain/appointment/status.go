package appointment

import (
	"github.com/uprisingink/studio-api/internal/httperr"
	"github.com/uprisingink/studio-api/internal/models"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusCancelled
}

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ===============================
// Transition table
// ===============================

// Actor is the role of whoever requests a state change, relative to the
// appointment: the booked artist, the owning client, or studio staff.
type Actor string

const (
	ActorArtist Actor = "artist"
	ActorClient Actor = "client"
	ActorAdmin  Actor = "admin"
)

// CanTransition validates a single status edge for the given actor.
// The lifecycle only moves forward:
//
//	pending     -> confirmed, cancelled   (artist)
//	confirmed   -> in_progress, cancelled (artist; client may only cancel)
//	in_progress -> completed              (artist)
//
// completed and cancelled are terminal. Anything else is invalid_transition,
// and an allowed edge requested by the wrong actor is transition_not_allowed.
func CanTransition(current, next Status, actor Actor) error {
	if !IsValidStatus(next) {
		return httperr.ErrBusiness("invalid_status")
	}

	allowed, artistOnly := edge(current, next)
	if !allowed {
		return httperr.ErrBusiness("invalid_transition")
	}

	if artistOnly && actor != ActorArtist {
		return httperr.ErrBusiness("transition_not_allowed")
	}

	return nil
}

// edge returns whether current->next exists, and whether only the booked
// artist may take it.
func edge(current, next Status) (allowed bool, artistOnly bool) {
	switch current {
	case StatusPending:
		switch next {
		case StatusConfirmed, StatusCancelled:
			return true, true
		}
	case StatusConfirmed:
		switch next {
		case StatusInProgress:
			return true, true
		case StatusCancelled:
			// Clients may back out of a confirmed booking.
			return true, false
		}
	case StatusInProgress:
		if next == StatusCompleted {
			return true, true
		}
	}
	return false, false
}

// CanDelete validates physical removal: only a still-pending request may be
// deleted, and only by the owning client or studio staff.
func CanDelete(current Status, actor Actor) error {
	if current != StatusPending {
		return httperr.ErrBusiness("not_deletable")
	}
	if actor != ActorClient && actor != ActorAdmin {
		return httperr.ErrBusiness("delete_not_allowed")
	}
	return nil
}

// ActorFor maps a profile role plus ownership into a transition actor.
// Ownership must already be established by the caller.
func ActorFor(role string) Actor {
	switch role {
	case models.RoleArtist:
		return ActorArtist
	case models.RoleManager, models.RoleOwner:
		return ActorAdmin
	default:
		return ActorClient
	}
}
