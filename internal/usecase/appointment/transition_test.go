package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/uprisingink/studio-api/internal/httperr"
	"github.com/uprisingink/studio-api/internal/models"
)

func pendingAppointment() *models.Appointment {
	return &models.Appointment{
		ID:       "ap-1",
		ClientID: "client-1",
		ArtistID: "artist-1",
		Status:   "pending",
		Client:   models.Client{ID: "client-1", ProfileID: "client-profile"},
		Artist:   models.Artist{ID: "artist-1", ProfileID: "artist-profile"},
	}
}

func TestTransition_ArtistConfirmsPending(t *testing.T) {
	repo := new(MockAppointmentRepository)
	ap := pendingAppointment()

	repo.On("GetAppointmentByID", mock.Anything, "ap-1").Return(ap, nil)
	repo.On("GetArtistByProfileID", mock.Anything, "artist-profile").
		Return(&models.Artist{ID: "artist-1", ProfileID: "artist-profile"}, nil)
	repo.On("UpdateAppointment", mock.Anything, ap).Return(nil)

	notify := new(MockNotifier)
	notify.On("SendToProfile", mock.Anything, mock.Anything).Return(true)

	uc := NewTransitionAppointment(repo, nil, notify)

	got, err := uc.Execute(context.Background(), "ap-1", "confirmed", "artist-profile", "artist")

	assert.NoError(t, err)
	assert.Equal(t, "confirmed", got.Status)
	notify.AssertNumberOfCalls(t, "SendToProfile", 2)
}

func TestTransition_ClientCannotConfirm(t *testing.T) {
	repo := new(MockAppointmentRepository)
	ap := pendingAppointment()

	repo.On("GetAppointmentByID", mock.Anything, "ap-1").Return(ap, nil)
	repo.On("GetOrCreateClientByProfileID", mock.Anything, "client-profile").
		Return(&models.Client{ID: "client-1", ProfileID: "client-profile"}, nil)

	uc := NewTransitionAppointment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), "ap-1", "confirmed", "client-profile", "client")

	assert.True(t, httperr.IsBusiness(err, "transition_not_allowed"))
	assert.Equal(t, "pending", ap.Status, "state must be unchanged after a rejected transition")
	repo.AssertNotCalled(t, "UpdateAppointment", mock.Anything, mock.Anything)
}

func TestTransition_ConfirmedBackToPendingRejected(t *testing.T) {
	repo := new(MockAppointmentRepository)
	ap := pendingAppointment()
	ap.Status = "confirmed"

	repo.On("GetAppointmentByID", mock.Anything, "ap-1").Return(ap, nil)
	repo.On("GetArtistByProfileID", mock.Anything, "artist-profile").
		Return(&models.Artist{ID: "artist-1", ProfileID: "artist-profile"}, nil)

	uc := NewTransitionAppointment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), "ap-1", "pending", "artist-profile", "artist")

	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
	assert.Equal(t, "confirmed", ap.Status)
}

func TestTransition_OtherArtistIsNotParticipant(t *testing.T) {
	repo := new(MockAppointmentRepository)
	ap := pendingAppointment()

	repo.On("GetAppointmentByID", mock.Anything, "ap-1").Return(ap, nil)
	repo.On("GetArtistByProfileID", mock.Anything, "other-artist-profile").
		Return(&models.Artist{ID: "artist-2", ProfileID: "other-artist-profile"}, nil)

	uc := NewTransitionAppointment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), "ap-1", "confirmed", "other-artist-profile", "artist")

	assert.True(t, httperr.IsBusiness(err, "not_participant"))
}

func TestTransition_ClientCancelsConfirmed(t *testing.T) {
	repo := new(MockAppointmentRepository)
	ap := pendingAppointment()
	ap.Status = "confirmed"

	repo.On("GetAppointmentByID", mock.Anything, "ap-1").Return(ap, nil)
	repo.On("GetOrCreateClientByProfileID", mock.Anything, "client-profile").
		Return(&models.Client{ID: "client-1", ProfileID: "client-profile"}, nil)
	repo.On("UpdateAppointment", mock.Anything, ap).Return(nil)

	uc := NewTransitionAppointment(repo, nil, nil)

	got, err := uc.Execute(context.Background(), "ap-1", "cancelled", "client-profile", "client")

	assert.NoError(t, err)
	assert.Equal(t, "cancelled", got.Status)
}

func TestDelete_PendingByOwningClient(t *testing.T) {
	repo := new(MockAppointmentRepository)
	ap := pendingAppointment()

	repo.On("GetAppointmentByID", mock.Anything, "ap-1").Return(ap, nil)
	repo.On("GetOrCreateClientByProfileID", mock.Anything, "client-profile").
		Return(&models.Client{ID: "client-1", ProfileID: "client-profile"}, nil)
	repo.On("DeleteAppointment", mock.Anything, "ap-1").Return(nil)

	uc := NewDeleteAppointment(repo, nil)

	assert.NoError(t, uc.Execute(context.Background(), "ap-1", "client-profile", "client"))
	repo.AssertCalled(t, "DeleteAppointment", mock.Anything, "ap-1")
}

func TestDelete_ConfirmedIsNotDeletable(t *testing.T) {
	repo := new(MockAppointmentRepository)
	ap := pendingAppointment()
	ap.Status = "confirmed"

	repo.On("GetAppointmentByID", mock.Anything, "ap-1").Return(ap, nil)
	repo.On("GetOrCreateClientByProfileID", mock.Anything, "client-profile").
		Return(&models.Client{ID: "client-1", ProfileID: "client-profile"}, nil)

	uc := NewDeleteAppointment(repo, nil)

	err := uc.Execute(context.Background(), "ap-1", "client-profile", "client")
	assert.True(t, httperr.IsBusiness(err, "not_deletable"))
	repo.AssertNotCalled(t, "DeleteAppointment", mock.Anything, mock.Anything)
}

func TestDelete_ArtistMayNotDelete(t *testing.T) {
	repo := new(MockAppointmentRepository)
	ap := pendingAppointment()

	repo.On("GetAppointmentByID", mock.Anything, "ap-1").Return(ap, nil)

	uc := NewDeleteAppointment(repo, nil)

	err := uc.Execute(context.Background(), "ap-1", "artist-profile", "artist")
	assert.True(t, httperr.IsBusiness(err, "delete_not_allowed"))
}

func TestDelete_StaffMayDeletePending(t *testing.T) {
	repo := new(MockAppointmentRepository)
	ap := pendingAppointment()

	repo.On("GetAppointmentByID", mock.Anything, "ap-1").Return(ap, nil)
	repo.On("DeleteAppointment", mock.Anything, "ap-1").Return(nil)

	uc := NewDeleteAppointment(repo, nil)

	assert.NoError(t, uc.Execute(context.Background(), "ap-1", "manager-profile", "manager"))
}
