package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	domain "github.com/uprisingink/studio-api/internal/domain/appointment"
	"github.com/uprisingink/studio-api/internal/httperr"
	"github.com/uprisingink/studio-api/internal/models"
)

// Mock repository

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) GetArtistByID(ctx context.Context, id string) (*models.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Artist), args.Error(1)
}

func (m *MockAppointmentRepository) GetArtistByProfileID(ctx context.Context, profileID string) (*models.Artist, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Artist), args.Error(1)
}

func (m *MockAppointmentRepository) GetOrCreateClientByProfileID(ctx context.Context, profileID string) (*models.Client, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockAppointmentRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	if ap != nil && ap.ID == "" {
		ap.ID = "ap-1" // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockAppointmentRepository) GetAppointmentByID(ctx context.Context, id string) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) ListForClient(ctx context.Context, clientID string, filter domain.ListFilter) ([]models.Appointment, error) {
	args := m.Called(ctx, clientID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) ListForArtist(ctx context.Context, artistID string, filter domain.ListFilter) ([]models.Appointment, error) {
	args := m.Called(ctx, artistID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *MockAppointmentRepository) DeleteAppointment(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendToProfile(profileID string, event any) bool {
	args := m.Called(profileID, event)
	return args.Bool(0)
}

// Tests

func TestBookAppointment_EstimateFromRateAndDuration(t *testing.T) {
	repo := new(MockAppointmentRepository)

	artist := &models.Artist{ID: "artist-1", ProfileID: "artist-profile", HourlyRate: 100, IsAvailable: true}
	client := &models.Client{ID: "client-1", ProfileID: "client-profile"}

	repo.On("GetArtistByID", mock.Anything, "artist-1").Return(artist, nil)
	repo.On("GetOrCreateClientByProfileID", mock.Anything, "client-profile").Return(client, nil)
	repo.On("CreateAppointment", mock.Anything, mock.Anything).Return(nil)

	notify := new(MockNotifier)
	notify.On("SendToProfile", "artist-profile", mock.Anything).Return(true)

	uc := NewBookAppointment(repo, nil, notify)

	ap, err := uc.Execute(context.Background(), BookAppointmentInput{
		ClientProfileID: "client-profile",
		ArtistID:        "artist-1",
		AppointmentDate: time.Now().Add(48 * time.Hour),
		DurationHours:   2,
		Description:     "sleeve session",
	})

	assert.NoError(t, err)
	assert.Equal(t, 200.0, ap.EstimatedPrice)
	assert.Equal(t, 40.0, ap.DepositAmount)
	assert.Equal(t, "pending", ap.Status)
	assert.Equal(t, "client-1", ap.ClientID)
	assert.Equal(t, "artist-1", ap.ArtistID)
	notify.AssertCalled(t, "SendToProfile", "artist-profile", mock.Anything)
}

func TestBookAppointment_MissingFields(t *testing.T) {
	repo := new(MockAppointmentRepository)
	uc := NewBookAppointment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		ClientProfileID: "client-profile",
		AppointmentDate: time.Now().Add(time.Hour),
		DurationHours:   1,
	})

	assert.True(t, httperr.IsBusiness(err, "missing_booking_fields"))
	repo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
}

func TestBookAppointment_DateInPast(t *testing.T) {
	repo := new(MockAppointmentRepository)
	uc := NewBookAppointment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		ClientProfileID: "client-profile",
		ArtistID:        "artist-1",
		AppointmentDate: time.Now().Add(-time.Hour),
		DurationHours:   1,
	})

	assert.True(t, httperr.IsBusiness(err, "date_in_past"))
}

func TestBookAppointment_ArtistNotFound(t *testing.T) {
	repo := new(MockAppointmentRepository)
	repo.On("GetArtistByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	uc := NewBookAppointment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		ClientProfileID: "client-profile",
		ArtistID:        "ghost",
		AppointmentDate: time.Now().Add(time.Hour),
		DurationHours:   1,
	})

	assert.True(t, httperr.IsBusiness(err, "artist_not_found"))
}

func TestBookAppointment_ArtistUnavailable(t *testing.T) {
	repo := new(MockAppointmentRepository)
	artist := &models.Artist{ID: "artist-1", HourlyRate: 100, IsAvailable: false}
	repo.On("GetArtistByID", mock.Anything, "artist-1").Return(artist, nil)

	uc := NewBookAppointment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		ClientProfileID: "client-profile",
		ArtistID:        "artist-1",
		AppointmentDate: time.Now().Add(time.Hour),
		DurationHours:   1,
	})

	assert.True(t, httperr.IsBusiness(err, "artist_unavailable"))
	repo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
}
