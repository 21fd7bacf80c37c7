package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uprisingink/studio-api/internal/httperr"
)

func TestCanTransition_FullEdgeTable(t *testing.T) {
	all := []Status{
		StatusPending,
		StatusConfirmed,
		StatusInProgress,
		StatusCompleted,
		StatusCancelled,
	}

	type edgeKey struct {
		from Status
		to   Status
	}

	// Every edge that exists, and whether only the booked artist may take it.
	valid := map[edgeKey]bool{
		{StatusPending, StatusConfirmed}:    true,
		{StatusPending, StatusCancelled}:    true,
		{StatusConfirmed, StatusInProgress}: true,
		{StatusConfirmed, StatusCancelled}:  false,
		{StatusInProgress, StatusCompleted}: true,
	}

	for _, from := range all {
		for _, to := range all {
			err := CanTransition(from, to, ActorArtist)

			if _, ok := valid[edgeKey{from, to}]; ok {
				assert.NoError(t, err, "artist should move %s -> %s", from, to)
			} else {
				assert.True(t, httperr.IsBusiness(err, "invalid_transition"),
					"%s -> %s must be rejected, got %v", from, to, err)
			}
		}
	}
}

func TestCanTransition_ConfirmedBackToPendingRejected(t *testing.T) {
	for _, actor := range []Actor{ActorArtist, ActorClient, ActorAdmin} {
		err := CanTransition(StatusConfirmed, StatusPending, actor)
		assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
	}
}

func TestCanTransition_ArtistOnlyEdges(t *testing.T) {
	artistOnly := []struct {
		from Status
		to   Status
	}{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusInProgress},
		{StatusInProgress, StatusCompleted},
	}

	for _, e := range artistOnly {
		assert.NoError(t, CanTransition(e.from, e.to, ActorArtist))

		err := CanTransition(e.from, e.to, ActorClient)
		assert.True(t, httperr.IsBusiness(err, "transition_not_allowed"),
			"client must not move %s -> %s", e.from, e.to)
	}
}

func TestCanTransition_ClientMayCancelConfirmed(t *testing.T) {
	assert.NoError(t, CanTransition(StatusConfirmed, StatusCancelled, ActorClient))
	assert.NoError(t, CanTransition(StatusConfirmed, StatusCancelled, ActorAdmin))
}

func TestCanTransition_TerminalStatesHaveNoEdges(t *testing.T) {
	for _, from := range []Status{StatusCompleted, StatusCancelled} {
		assert.True(t, IsTerminal(from))

		for _, to := range []Status{StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled} {
			err := CanTransition(from, to, ActorAdmin)
			assert.Error(t, err, "%s is terminal, %s -> %s must fail", from, from, to)
		}
	}
}

func TestCanTransition_UnknownStatusRejected(t *testing.T) {
	err := CanTransition(StatusPending, Status("archived"), ActorArtist)
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestCanDelete(t *testing.T) {
	assert.NoError(t, CanDelete(StatusPending, ActorClient))
	assert.NoError(t, CanDelete(StatusPending, ActorAdmin))

	err := CanDelete(StatusPending, ActorArtist)
	assert.True(t, httperr.IsBusiness(err, "delete_not_allowed"))

	for _, s := range []Status{StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled} {
		err := CanDelete(s, ActorClient)
		assert.True(t, httperr.IsBusiness(err, "not_deletable"),
			"%s must not be deletable", s)
	}
}

func TestActorFor(t *testing.T) {
	assert.Equal(t, ActorArtist, ActorFor("artist"))
	assert.Equal(t, ActorAdmin, ActorFor("manager"))
	assert.Equal(t, ActorAdmin, ActorFor("owner"))
	assert.Equal(t, ActorClient, ActorFor("client"))
	assert.Equal(t, ActorClient, ActorFor(""))
}
