package artwork

import (
	"context"

	"github.com/uprisingink/studio-api/internal/models"
)

type ListFilter struct {
	// Match a single style tag, e.g. "blackwork".
	StyleTag string
	// Case-insensitive free-text match over title + description.
	Query string
	// Restrict to publicly visible pieces (public gallery).
	PublicOnly bool
	// Restrict to portfolio pieces.
	PortfolioOnly bool
}

type Repository interface {
	GetArtistByProfileID(
		ctx context.Context,
		profileID string,
	) (*models.Artist, error)

	CreateArtwork(
		ctx context.Context,
		aw *models.Artwork,
	) error

	GetArtworkByID(
		ctx context.Context,
		id string,
	) (*models.Artwork, error)

	UpdateArtwork(
		ctx context.Context,
		aw *models.Artwork,
	) error

	DeleteArtwork(
		ctx context.Context,
		id string,
	) error

	ListForArtist(
		ctx context.Context,
		artistID string,
		filter ListFilter,
	) ([]models.Artwork, error)
}
