package artwork

import (
	"context"

	"github.com/uprisingink/studio-api/internal/audit"
	domain "github.com/uprisingink/studio-api/internal/domain/artwork"
	"github.com/uprisingink/studio-api/internal/models"
)

// ToggleVisibility flips a piece between public gallery and private.
// Read-flip-save with no version token: two simultaneous toggles resolve
// as last write wins.
type ToggleVisibility struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewToggleVisibility(repo domain.Repository, audit *audit.Dispatcher) *ToggleVisibility {
	return &ToggleVisibility{repo: repo, audit: audit}
}

func (uc *ToggleVisibility) Execute(
	ctx context.Context,
	artworkID, artistProfileID string,
) (*models.Artwork, error) {

	fetch := &UpdateArtwork{repo: uc.repo}

	aw, err := fetch.fetchOwned(ctx, artworkID, artistProfileID)
	if err != nil {
		return nil, err
	}

	aw.IsPublic = !aw.IsPublic
	if err := uc.repo.UpdateArtwork(ctx, aw); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &artistProfileID,
		Action:   "artwork_visibility_toggled",
		Entity:   "artwork",
		EntityID: &aw.ID,
		Metadata: map[string]any{"is_public": aw.IsPublic},
	})

	return aw, nil
}
