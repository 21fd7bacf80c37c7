package artwork

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/uprisingink/studio-api/internal/audit"
	domain "github.com/uprisingink/studio-api/internal/domain/artwork"
	"github.com/uprisingink/studio-api/internal/httperr"
	"github.com/uprisingink/studio-api/internal/models"
	"github.com/uprisingink/studio-api/internal/timezone"
)

const MaxUploadBytes = 15 * 1024 * 1024

// Accepted upload types; everything is re-encoded to WebP before storage.
var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ObjectStore is the artwork image bucket.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// Compressor turns an accepted upload into the stored WebP rendition.
type Compressor func(data []byte) ([]byte, error)

// ======================================================
// INPUT
// ======================================================

type UploadArtworkInput struct {
	ArtistProfileID string

	Title       string
	Description string
	StyleTags   []string

	IsPublic         bool
	IsPortfolioPiece bool
	Status           string

	ClientID      *string
	AppointmentID *string

	ImageData   []byte
	ContentType string
}

// ======================================================
// USE CASE
// ======================================================

type UploadArtwork struct {
	repo     domain.Repository
	store    ObjectStore
	compress Compressor
	audit    *audit.Dispatcher
}

func NewUploadArtwork(
	repo domain.Repository,
	store ObjectStore,
	compress Compressor,
	audit *audit.Dispatcher,
) *UploadArtwork {
	return &UploadArtwork{
		repo:     repo,
		store:    store,
		compress: compress,
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UploadArtwork) Execute(
	ctx context.Context,
	in UploadArtworkInput,
) (*models.Artwork, error) {

	if strings.TrimSpace(in.Title) == "" {
		return nil, httperr.ErrBusiness("missing_title")
	}

	if len(in.ImageData) == 0 {
		return nil, httperr.ErrBusiness("missing_image")
	}
	if len(in.ImageData) > MaxUploadBytes {
		return nil, httperr.ErrBusiness("image_too_large")
	}

	mime := strings.Split(in.ContentType, ";")[0]
	if !allowedMimeTypes[mime] {
		return nil, httperr.ErrBusiness("unsupported_file_type")
	}

	status := in.Status
	if status == "" {
		status = models.ArtworkStatusCompleted
	}
	if !models.IsValidArtworkStatus(status) {
		return nil, httperr.ErrBusiness("invalid_artwork_status")
	}

	artist, err := uc.repo.GetArtistByProfileID(ctx, in.ArtistProfileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("artist_record_missing")
		}
		return nil, err
	}

	compressed, err := uc.compress(in.ImageData)
	if err != nil {
		return nil, httperr.ErrBusiness("unsupported_file_type")
	}

	key := fmt.Sprintf("artwork/%s/%s.webp", artist.ID, uuid.NewString())
	imageURL, err := uc.store.Put(ctx, key, "image/webp", compressed)
	if err != nil {
		return nil, httperr.ErrBusiness("storage_failed")
	}

	tags, _ := json.Marshal(in.StyleTags)
	now := timezone.Now()

	aw := &models.Artwork{
		ArtistID:         artist.ID,
		ClientID:         in.ClientID,
		AppointmentID:    in.AppointmentID,
		Title:            strings.TrimSpace(in.Title),
		Description:      in.Description,
		ImageURL:         imageURL,
		StyleTags:        datatypes.JSON(tags),
		IsPublic:         in.IsPublic,
		IsPortfolioPiece: in.IsPortfolioPiece,
		Status:           status,
	}
	if status == models.ArtworkStatusCompleted {
		aw.CompletionDate = &now
	}

	if err := uc.repo.CreateArtwork(ctx, aw); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ArtistProfileID,
		Action:   "artwork_uploaded",
		Entity:   "artwork",
		EntityID: &aw.ID,
	})

	return aw, nil
}
