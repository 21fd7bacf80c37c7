package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/uprisingink/studio-api/internal/httperr"
	"github.com/uprisingink/studio-api/internal/models"
)

func TestDepositCheckout_DisabledWithoutProvider(t *testing.T) {
	repo := new(MockAppointmentRepository)
	uc := NewDepositCheckout(repo, nil, nil)

	_, err := uc.Execute(context.Background(), "ap-1", "client-profile", "client")
	assert.True(t, httperr.IsBusiness(err, "payments_disabled"))
}

func TestMarkDepositPaid_ByAssignedArtist(t *testing.T) {
	repo := new(MockAppointmentRepository)
	ap := pendingAppointment()
	ap.DepositAmount = 40

	repo.On("GetAppointmentByID", mock.Anything, "ap-1").Return(ap, nil)
	repo.On("GetArtistByProfileID", mock.Anything, "artist-profile").
		Return(&models.Artist{ID: "artist-1", ProfileID: "artist-profile"}, nil)
	repo.On("UpdateAppointment", mock.Anything, ap).Return(nil)

	uc := NewMarkDepositPaid(repo, nil)

	got, err := uc.Execute(context.Background(), "ap-1", "artist-profile", "artist")

	assert.NoError(t, err)
	assert.True(t, got.DepositPaid)
}

func TestMarkDepositPaid_AlreadyPaidIsIdempotent(t *testing.T) {
	repo := new(MockAppointmentRepository)
	ap := pendingAppointment()
	ap.DepositPaid = true

	repo.On("GetAppointmentByID", mock.Anything, "ap-1").Return(ap, nil)
	repo.On("GetArtistByProfileID", mock.Anything, "artist-profile").
		Return(&models.Artist{ID: "artist-1", ProfileID: "artist-profile"}, nil)

	uc := NewMarkDepositPaid(repo, nil)

	got, err := uc.Execute(context.Background(), "ap-1", "artist-profile", "artist")

	assert.NoError(t, err)
	assert.True(t, got.DepositPaid)
	repo.AssertNotCalled(t, "UpdateAppointment", mock.Anything, mock.Anything)
}

func TestMarkDepositPaid_ClientRejected(t *testing.T) {
	repo := new(MockAppointmentRepository)
	ap := pendingAppointment()

	repo.On("GetAppointmentByID", mock.Anything, "ap-1").Return(ap, nil)

	uc := NewMarkDepositPaid(repo, nil)

	_, err := uc.Execute(context.Background(), "ap-1", "client-profile", "client")
	assert.True(t, httperr.IsBusiness(err, "not_participant"))
}
