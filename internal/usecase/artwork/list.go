package artwork

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/uprisingink/studio-api/internal/domain/artwork"
	"github.com/uprisingink/studio-api/internal/httperr"
	"github.com/uprisingink/studio-api/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

type ListArtwork struct {
	repo domain.Repository
}

func NewListArtwork(repo domain.Repository) *ListArtwork {
	return &ListArtwork{repo: repo}
}

// ForArtist lists an artist's work by artist id. Public visitors only see
// public pieces; the owner (and admins) see everything.
func (uc *ListArtwork) ForArtist(
	ctx context.Context,
	artistID string,
	filter domain.ListFilter,
) ([]models.Artwork, error) {
	return uc.repo.ListForArtist(ctx, artistID, filter)
}

// Mine resolves the caller's artist record and lists their own work
// unfiltered by visibility.
func (uc *ListArtwork) Mine(
	ctx context.Context,
	artistProfileID string,
	filter domain.ListFilter,
) ([]models.Artwork, error) {

	artist, err := uc.repo.GetArtistByProfileID(ctx, artistProfileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("artist_record_missing")
		}
		return nil, err
	}

	filter.PublicOnly = false
	return uc.repo.ListForArtist(ctx, artist.ID, filter)
}
