package appointment

import (
	"time"

	"github.com/uprisingink/studio-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition applies a validated status change to the model. On any error the
// model is left untouched.
func Transition(ap *models.Appointment, next Status, actor Actor, now time.Time) error {
	if err := CanTransition(Status(ap.Status), next, actor); err != nil {
		return err
	}

	ap.Status = string(next)
	ap.UpdatedAt = now
	return nil
}

// EstimatePrice computes the quoted price for a booking request.
func EstimatePrice(hourlyRate, durationHours float64) float64 {
	return hourlyRate * durationHours
}

// DefaultDeposit is the fraction of the estimate requested up front.
const DefaultDepositRate = 0.20
