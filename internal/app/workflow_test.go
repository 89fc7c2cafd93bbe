package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdisalam/hoopup-cli/internal/app"
)

func validForm() app.SessionFields {
	return app.SessionFields{
		LocationName: "Court A",
		Date:         "2024-06-01",
		StartTime:    "18:00",
		EndTime:      "19:00",
	}
}

func TestCreateSessionMissingFieldMakesNoNetworkCall(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*app.SessionFields)
	}{
		{name: "missing location", mutate: func(f *app.SessionFields) { f.LocationName = "" }},
		{name: "missing date", mutate: func(f *app.SessionFields) { f.Date = "" }},
		{name: "missing start time", mutate: func(f *app.SessionFields) { f.StartTime = "" }},
		{name: "missing end time", mutate: func(f *app.SessionFields) { f.EndTime = "" }},
		{name: "all empty", mutate: func(f *app.SessionFields) { *f = app.SessionFields{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeGateway{}
			a, fb, _ := newTestApp(gw)
			loginAs(t, a, gw, fb, "jordan23")

			form := validForm()
			tt.mutate(&form)
			a.SetForm(form)
			a.CreateSession(context.Background())

			assert.Empty(t, gw.calls, "validation failures must not reach the network")
			require.Len(t, fb.events, 1, "exactly one error feedback")
			assert.Equal(t, app.FeedbackError, fb.events[0].kind)
			assert.False(t, a.Flags().FormBusy)
		})
	}
}

func TestCreateSessionSuccess(t *testing.T) {
	gw := &fakeGateway{}
	a, fb, _ := newTestApp(gw)
	loginAs(t, a, gw, fb, "jordan23")

	form := validForm()
	form.Note = ""
	a.SetForm(form)
	a.CreateSession(context.Background())

	require.Len(t, a.Sessions(), 1, "the refresh must pick up the created session")
	created := a.Sessions()[0]
	assert.Equal(t, "Court A", created.LocationName)
	assert.Equal(t, "2024-06-01", created.Date)
	assert.Equal(t, "18:00", created.StartTime)
	assert.Equal(t, "19:00", created.EndTime)
	assert.Equal(t, "", created.Note)
	assert.Equal(t, "jordan23", created.Creator.Username)

	assert.Equal(t, app.SessionFields{}, a.Form(), "form must reset after success")
	assert.Equal(t, 1, gw.count("list"))
	require.Len(t, fb.events, 1)
	assert.Equal(t, app.FeedbackSuccess, fb.events[0].kind)
}

func TestCreateSessionServerRejected(t *testing.T) {
	gw := &fakeGateway{createErr: app.ErrServerRejected.Msg("Location name is required")}
	a, fb, _ := newTestApp(gw)
	loginAs(t, a, gw, fb, "jordan23")

	a.SetForm(validForm())
	a.CreateSession(context.Background())

	assert.Zero(t, gw.count("list"), "no refresh after a failed create")
	assert.Equal(t, validForm(), a.Form(), "form is kept for a retry")
	require.Len(t, fb.events, 1)
	assert.Equal(t, "Location name is required", fb.events[0].text)
	assert.False(t, a.Flags().FormBusy)
}

func TestJoinLeaveRosterConvergence(t *testing.T) {
	gw := &fakeGateway{sessions: []app.Session{{ID: "s1", LocationName: "Court A"}}}
	a, fb, _ := newTestApp(gw)
	loginAs(t, a, gw, fb, "jordan23")

	ctx := context.Background()
	a.JoinSession(ctx, "s1")
	a.JoinSession(ctx, "s1") // duplicate join is the server's call; roster stays unique
	a.LeaveSession(ctx, "s1")
	a.JoinSession(ctx, "s1")

	require.Len(t, a.Sessions(), 1)
	assert.Equal(t, gw.sessions[0].Attendees, a.Sessions()[0].Attendees,
		"after the final refresh the roster must match the server exactly")
	assert.Equal(t, []app.UserRef{{Username: "jordan23"}}, a.Sessions()[0].Attendees)
	assert.False(t, a.Flags().ListBusy)
}

func TestJoinSessionFailure(t *testing.T) {
	gw := &fakeGateway{
		sessions: []app.Session{{ID: "s1"}},
		joinErr:  app.ErrNetworkFailure.Msg(""),
	}
	a, fb, _ := newTestApp(gw)
	loginAs(t, a, gw, fb, "jordan23")

	a.JoinSession(context.Background(), "s1")

	assert.Zero(t, gw.count("list"), "no refresh after a failed join")
	require.Len(t, fb.events, 1)
	assert.Equal(t, app.FeedbackError, fb.events[0].kind)
	assert.Equal(t, "Could not join session", fb.events[0].text)
	assert.False(t, a.Flags().ListBusy)
}

func TestDeleteSessionDeclinedConfirmation(t *testing.T) {
	gw := &fakeGateway{sessions: []app.Session{{ID: "s1"}}}
	a, fb, _ := newTestApp(gw)
	loginAs(t, a, gw, fb, "jordan23")
	a.SetConfirm(func(string) bool { return false })

	a.DeleteSession(context.Background(), "s1")

	assert.Empty(t, gw.calls, "a declined confirmation must not reach the network")
	assert.Empty(t, fb.events, "a declined confirmation is not an outcome")
}

func TestDeleteSessionConfirmed(t *testing.T) {
	gw := &fakeGateway{sessions: []app.Session{{ID: "s1"}}}
	a, fb, _ := newTestApp(gw)
	loginAs(t, a, gw, fb, "jordan23")

	a.DeleteSession(context.Background(), "s1")

	assert.Equal(t, 1, gw.count("delete"))
	assert.Equal(t, 1, gw.count("list"))
	assert.Empty(t, a.Sessions())
	require.Len(t, fb.events, 1)
	assert.Equal(t, app.FeedbackSuccess, fb.events[0].kind)
}

func TestDeleteSessionForbidden(t *testing.T) {
	gw := &fakeGateway{
		sessions:  []app.Session{{ID: "s1", Creator: app.UserRef{Username: "pippen33"}}},
		deleteErr: app.ErrServerRejected.Msg("You can only delete sessions you created"),
	}
	a, fb, _ := newTestApp(gw)
	loginAs(t, a, gw, fb, "jordan23")

	a.DeleteSession(context.Background(), "s1")

	require.Len(t, fb.events, 1)
	assert.Equal(t, "You can only delete sessions you created", fb.events[0].text)
}

func TestUpdateSessionReportsOutcome(t *testing.T) {
	gw := &fakeGateway{sessions: []app.Session{{ID: "s1", LocationName: "Court A"}}}
	a, fb, _ := newTestApp(gw)
	loginAs(t, a, gw, fb, "jordan23")

	fields := validForm()
	fields.LocationName = "Court B"
	ok := a.UpdateSession(context.Background(), "s1", fields)

	assert.True(t, ok)
	require.Len(t, a.Sessions(), 1)
	assert.Equal(t, "Court B", a.Sessions()[0].LocationName)

	fb.reset()
	gw.updateErr = app.ErrServerRejected.Msg("Session not found")
	ok = a.UpdateSession(context.Background(), "gone", validForm())

	assert.False(t, ok)
	require.Len(t, fb.events, 1)
	assert.Equal(t, "Session not found", fb.events[0].text)
	assert.False(t, a.Flags().FormBusy)
}

func TestActionsRequireAuthentication(t *testing.T) {
	tests := []struct {
		name string
		act  func(a *app.App)
	}{
		{name: "create", act: func(a *app.App) { a.SetForm(validForm()); a.CreateSession(context.Background()) }},
		{name: "join", act: func(a *app.App) { a.JoinSession(context.Background(), "s1") }},
		{name: "leave", act: func(a *app.App) { a.LeaveSession(context.Background(), "s1") }},
		{name: "delete", act: func(a *app.App) { a.DeleteSession(context.Background(), "s1") }},
		{name: "update", act: func(a *app.App) { a.UpdateSession(context.Background(), "s1", validForm()) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeGateway{}
			a, fb, _ := newTestApp(gw)

			tt.act(a)

			assert.Empty(t, gw.calls)
			require.Len(t, fb.events, 1)
			assert.Equal(t, app.FeedbackError, fb.events[0].kind)
		})
	}
}
