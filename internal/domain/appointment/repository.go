package appointment

import (
	"context"
	"time"

	"github.com/uprisingink/studio-api/internal/models"
)

// ListOrder controls appointment_date ordering: ascending for calendar views,
// descending for recent-first list views.
type ListOrder string

const (
	OrderDateAsc  ListOrder = "date_asc"
	OrderDateDesc ListOrder = "date_desc"
)

type ListFilter struct {
	From  *time.Time
	To    *time.Time
	Order ListOrder
}

type Repository interface {
	// -------- Role records --------
	GetArtistByID(
		ctx context.Context,
		id string,
	) (*models.Artist, error)

	GetArtistByProfileID(
		ctx context.Context,
		profileID string,
	) (*models.Artist, error)

	GetOrCreateClientByProfileID(
		ctx context.Context,
		profileID string,
	) (*models.Client, error)

	// -------- Appointment (create) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (read) --------
	GetAppointmentByID(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	ListForClient(
		ctx context.Context,
		clientID string,
		filter ListFilter,
	) ([]models.Appointment, error)

	ListForArtist(
		ctx context.Context,
		artistID string,
		filter ListFilter,
	) ([]models.Appointment, error)

	// -------- Appointment (write) --------
	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id string,
	) error
}
