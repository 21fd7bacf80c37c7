package artwork

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/uprisingink/studio-api/internal/audit"
	domain "github.com/uprisingink/studio-api/internal/domain/artwork"
	"github.com/uprisingink/studio-api/internal/httperr"
	"github.com/uprisingink/studio-api/internal/models"
	"github.com/uprisingink/studio-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

// Pointer fields act as "set if present". Last write wins; there is no
// version token on artwork rows.
type UpdateArtworkInput struct {
	ArtworkID       string
	ArtistProfileID string

	Title            *string
	Description      *string
	StyleTags        []string
	IsPublic         *bool
	IsPortfolioPiece *bool
	Status           *string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateArtwork struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateArtwork(repo domain.Repository, audit *audit.Dispatcher) *UpdateArtwork {
	return &UpdateArtwork{repo: repo, audit: audit}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateArtwork) Execute(
	ctx context.Context,
	in UpdateArtworkInput,
) (*models.Artwork, error) {

	aw, err := uc.fetchOwned(ctx, in.ArtworkID, in.ArtistProfileID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, httperr.ErrBusiness("missing_title")
		}
		aw.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		aw.Description = *in.Description
	}
	if in.StyleTags != nil {
		tags, _ := json.Marshal(in.StyleTags)
		aw.StyleTags = datatypes.JSON(tags)
	}
	if in.IsPublic != nil {
		aw.IsPublic = *in.IsPublic
	}
	if in.IsPortfolioPiece != nil {
		aw.IsPortfolioPiece = *in.IsPortfolioPiece
	}
	if in.Status != nil {
		if !models.IsValidArtworkStatus(*in.Status) {
			return nil, httperr.ErrBusiness("invalid_artwork_status")
		}
		aw.Status = *in.Status
		if aw.Status == models.ArtworkStatusCompleted && aw.CompletionDate == nil {
			now := timezone.Now()
			aw.CompletionDate = &now
		}
	}

	if err := uc.repo.UpdateArtwork(ctx, aw); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ArtistProfileID,
		Action:   "artwork_updated",
		Entity:   "artwork",
		EntityID: &aw.ID,
	})

	return aw, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteArtwork struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteArtwork(repo domain.Repository, audit *audit.Dispatcher) *DeleteArtwork {
	return &DeleteArtwork{repo: repo, audit: audit}
}

func (uc *DeleteArtwork) Execute(ctx context.Context, artworkID, artistProfileID string) error {
	fetch := &UpdateArtwork{repo: uc.repo}

	aw, err := fetch.fetchOwned(ctx, artworkID, artistProfileID)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteArtwork(ctx, aw.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &artistProfileID,
		Action:   "artwork_deleted",
		Entity:   "artwork",
		EntityID: &aw.ID,
	})

	return nil
}

// fetchOwned loads the artwork and verifies the caller's artist record
// owns it.
func (uc *UpdateArtwork) fetchOwned(
	ctx context.Context,
	artworkID, artistProfileID string,
) (*models.Artwork, error) {

	aw, err := uc.repo.GetArtworkByID(ctx, artworkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("artwork_not_found")
		}
		return nil, err
	}

	artist, err := uc.repo.GetArtistByProfileID(ctx, artistProfileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("artist_record_missing")
		}
		return nil, err
	}

	if aw.ArtistID != artist.ID {
		return nil, httperr.ErrBusiness("not_owner")
	}

	return aw, nil
}
