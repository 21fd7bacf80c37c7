package artwork

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	domain "github.com/uprisingink/studio-api/internal/domain/artwork"
	"github.com/uprisingink/studio-api/internal/httperr"
	"github.com/uprisingink/studio-api/internal/models"
)

// Mock repository

type MockArtworkRepository struct {
	mock.Mock
}

func (m *MockArtworkRepository) GetArtistByProfileID(ctx context.Context, profileID string) (*models.Artist, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Artist), args.Error(1)
}

func (m *MockArtworkRepository) CreateArtwork(ctx context.Context, aw *models.Artwork) error {
	args := m.Called(ctx, aw)
	if aw != nil && aw.ID == "" {
		aw.ID = "aw-1" // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockArtworkRepository) GetArtworkByID(ctx context.Context, id string) (*models.Artwork, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Artwork), args.Error(1)
}

func (m *MockArtworkRepository) UpdateArtwork(ctx context.Context, aw *models.Artwork) error {
	args := m.Called(ctx, aw)
	return args.Error(0)
}

func (m *MockArtworkRepository) DeleteArtwork(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockArtworkRepository) ListForArtist(ctx context.Context, artistID string, filter domain.ListFilter) ([]models.Artwork, error) {
	args := m.Called(ctx, artistID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Artwork), args.Error(1)
}

type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, key, contentType, data)
	return args.String(0), args.Error(1)
}

func passthroughCompress(data []byte) ([]byte, error) {
	return data, nil
}

// Tests

func TestUploadArtwork_EmptyTitleRejected(t *testing.T) {
	repo := new(MockArtworkRepository)
	store := new(MockObjectStore)

	uc := NewUploadArtwork(repo, store, passthroughCompress, nil)

	for _, title := range []string{"", "   "} {
		_, err := uc.Execute(context.Background(), UploadArtworkInput{
			ArtistProfileID: "artist-profile",
			Title:           title,
			ImageData:       []byte{0xff, 0xd8, 0xff},
			ContentType:     "image/jpeg",
		})
		assert.True(t, httperr.IsBusiness(err, "missing_title"))
	}

	repo.AssertNotCalled(t, "CreateArtwork", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadArtwork_UnsupportedType(t *testing.T) {
	uc := NewUploadArtwork(new(MockArtworkRepository), new(MockObjectStore), passthroughCompress, nil)

	_, err := uc.Execute(context.Background(), UploadArtworkInput{
		ArtistProfileID: "artist-profile",
		Title:           "Koi sleeve",
		ImageData:       []byte("%PDF-1.7"),
		ContentType:     "application/pdf",
	})

	assert.True(t, httperr.IsBusiness(err, "unsupported_file_type"))
}

func TestUploadArtwork_StoresWebPAndInserts(t *testing.T) {
	repo := new(MockArtworkRepository)
	repo.On("GetArtistByProfileID", mock.Anything, "artist-profile").
		Return(&models.Artist{ID: "artist-1", ProfileID: "artist-profile"}, nil)
	repo.On("CreateArtwork", mock.Anything, mock.Anything).Return(nil)

	store := new(MockObjectStore)
	store.On("Put", mock.Anything, mock.Anything, "image/webp", mock.Anything).
		Return("https://cdn.example.com/artwork/a.webp", nil)

	uc := NewUploadArtwork(repo, store, passthroughCompress, nil)

	aw, err := uc.Execute(context.Background(), UploadArtworkInput{
		ArtistProfileID: "artist-profile",
		Title:           "  Koi sleeve  ",
		StyleTags:       []string{"japanese", "color"},
		IsPublic:        true,
		ImageData:       []byte{0xff, 0xd8, 0xff},
		ContentType:     "image/jpeg",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Koi sleeve", aw.Title)
	assert.Equal(t, "artist-1", aw.ArtistID)
	assert.Equal(t, "https://cdn.example.com/artwork/a.webp", aw.ImageURL)
	assert.Equal(t, models.ArtworkStatusCompleted, aw.Status)
	assert.NotNil(t, aw.CompletionDate)
}

func TestToggleVisibility_FlipsFlag(t *testing.T) {
	repo := new(MockArtworkRepository)
	aw := &models.Artwork{ID: "aw-1", ArtistID: "artist-1", Title: "Koi sleeve", IsPublic: false}

	repo.On("GetArtworkByID", mock.Anything, "aw-1").Return(aw, nil)
	repo.On("GetArtistByProfileID", mock.Anything, "artist-profile").
		Return(&models.Artist{ID: "artist-1", ProfileID: "artist-profile"}, nil)
	repo.On("UpdateArtwork", mock.Anything, aw).Return(nil)

	uc := NewToggleVisibility(repo, nil)

	got, err := uc.Execute(context.Background(), "aw-1", "artist-profile")
	assert.NoError(t, err)
	assert.True(t, got.IsPublic)
}

func TestToggleVisibility_NotOwner(t *testing.T) {
	repo := new(MockArtworkRepository)
	aw := &models.Artwork{ID: "aw-1", ArtistID: "artist-1", IsPublic: true}

	repo.On("GetArtworkByID", mock.Anything, "aw-1").Return(aw, nil)
	repo.On("GetArtistByProfileID", mock.Anything, "other-profile").
		Return(&models.Artist{ID: "artist-2", ProfileID: "other-profile"}, nil)

	uc := NewToggleVisibility(repo, nil)

	_, err := uc.Execute(context.Background(), "aw-1", "other-profile")
	assert.True(t, httperr.IsBusiness(err, "not_owner"))
	assert.True(t, aw.IsPublic, "visibility unchanged on rejection")
	repo.AssertNotCalled(t, "UpdateArtwork", mock.Anything, mock.Anything)
}
