package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdisalam/hoopup-cli/internal/app"
)

func TestRefreshReplacesSnapshotWholesale(t *testing.T) {
	gw := &fakeGateway{sessions: []app.Session{
		{ID: "s1", LocationName: "Court A"},
		{ID: "s2", LocationName: "Court B"},
	}}
	a, fb, _ := newTestApp(gw)
	loginAs(t, a, gw, fb, "jordan23")

	a.Refresh(context.Background())
	require.Len(t, a.Sessions(), 2)

	// the server's list shrinks; the snapshot must not merge with the old one
	gw.sessions = gw.sessions[:1]
	a.Refresh(context.Background())

	require.Len(t, a.Sessions(), 1)
	assert.Equal(t, "s1", a.Sessions()[0].ID)
	assert.Empty(t, fb.events, "successful refreshes emit no feedback")
	assert.False(t, a.Flags().ListBusy)
}

func TestRefreshFailureKeepsPriorSnapshot(t *testing.T) {
	gw := &fakeGateway{sessions: []app.Session{{ID: "s1", LocationName: "Court A"}}}
	a, fb, _ := newTestApp(gw)
	loginAs(t, a, gw, fb, "jordan23")
	a.Refresh(context.Background())
	require.Len(t, a.Sessions(), 1)

	gw.listErr = app.ErrServerRejected.Msg("Internal Server Error")
	a.Refresh(context.Background())

	require.Len(t, a.Sessions(), 1, "failed refresh must leave the snapshot untouched")
	assert.Equal(t, "s1", a.Sessions()[0].ID)
	require.Len(t, fb.events, 1)
	assert.Equal(t, app.FeedbackError, fb.events[0].kind)
	assert.False(t, a.Flags().ListBusy)
}

func TestRefreshWithoutAuthIsNoop(t *testing.T) {
	gw := &fakeGateway{sessions: []app.Session{{ID: "s1"}}}
	a, fb, _ := newTestApp(gw)

	a.Refresh(context.Background())

	assert.Empty(t, gw.calls, "unauthenticated refresh must not hit the network")
	assert.Empty(t, a.Sessions())
	assert.Empty(t, fb.events)
}

func TestFindSession(t *testing.T) {
	gw := &fakeGateway{sessions: []app.Session{{ID: "s1"}, {ID: "s2"}}}
	a, fb, _ := newTestApp(gw)
	loginAs(t, a, gw, fb, "jordan23")
	a.Refresh(context.Background())

	s, ok := a.FindSession("s2")
	assert.True(t, ok)
	assert.Equal(t, "s2", s.ID)

	_, ok = a.FindSession("nope")
	assert.False(t, ok)
}

func TestDerivedQueries(t *testing.T) {
	session := app.Session{
		ID:      "s1",
		Creator: app.UserRef{Username: "jordan23"},
		Attendees: []app.UserRef{
			{Username: "jordan23"},
			{Username: "pippen33"},
		},
	}

	tests := []struct {
		name      string
		username  string
		attending bool
		creator   bool
	}{
		{name: "creator attending", username: "jordan23", attending: true, creator: true},
		{name: "plain attendee", username: "pippen33", attending: true, creator: false},
		{name: "stranger", username: "rodman91", attending: false, creator: false},
		{name: "empty username", username: "", attending: false, creator: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.attending, app.IsAttending(session, tt.username))
			assert.Equal(t, tt.creator, app.IsCreator(session, tt.username))
		})
	}
}
