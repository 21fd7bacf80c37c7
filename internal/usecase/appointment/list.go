package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/uprisingink/studio-api/internal/domain/appointment"
	"github.com/uprisingink/studio-api/internal/httperr"
	"github.com/uprisingink/studio-api/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute lists appointments scoped to the caller's role record: artists see
// their booked work, clients see their own requests. The optional window and
// ordering come straight from the view (ascending for calendars, descending
// for list views).
func (uc *ListAppointments) Execute(
	ctx context.Context,
	profileID string,
	role string,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	switch role {
	case models.RoleArtist:
		artist, err := uc.repo.GetArtistByProfileID(ctx, profileID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, httperr.ErrBusiness("artist_record_missing")
			}
			return nil, err
		}
		return uc.repo.ListForArtist(ctx, artist.ID, filter)

	default:
		client, err := uc.repo.GetOrCreateClientByProfileID(ctx, profileID)
		if err != nil {
			return nil, err
		}
		return uc.repo.ListForClient(ctx, client.ID, filter)
	}
}
