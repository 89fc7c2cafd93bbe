package app_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/abdisalam/hoopup-cli/internal/app"
)

const testToken = "eyJhbGciOiJIUzI1NiJ9.dGVzdA.c2ln"

// feedbackEvent is one recorded Emit call.
type feedbackEvent struct {
	kind app.FeedbackKind
	text string
}

// feedbackRecorder captures every feedback emission in order.
type feedbackRecorder struct {
	events []feedbackEvent
}

func (r *feedbackRecorder) Emit(kind app.FeedbackKind, text string) {
	r.events = append(r.events, feedbackEvent{kind: kind, text: text})
}

func (r *feedbackRecorder) reset() {
	r.events = nil
}

func (r *feedbackRecorder) errors() []feedbackEvent {
	var out []feedbackEvent
	for _, e := range r.events {
		if e.kind == app.FeedbackError {
			out = append(out, e)
		}
	}
	return out
}

// memCreds is an in-memory credential store double.
type memCreds struct {
	username, token  string
	loadErr, saveErr error
	clearErr         error
}

func (m *memCreds) Load() (string, string, error) {
	if m.loadErr != nil {
		return "", "", m.loadErr
	}
	return m.username, m.token, nil
}

func (m *memCreds) Save(username, token string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.username = username
	m.token = token
	return nil
}

func (m *memCreds) Clear() error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.username = ""
	m.token = ""
	return nil
}

// newTestApp wires an engine with the fake gateway, a recorder sink, and a
// confirm callback that always approves.
func newTestApp(gw *fakeGateway) (*app.App, *feedbackRecorder, *memCreds) {
	fb := &feedbackRecorder{}
	creds := &memCreds{}
	a := app.New(app.Options{
		Gateway:     gw,
		Credentials: creds,
		Feedback:    fb,
		Confirm:     func(string) bool { return true },
		Logger:      zerolog.Nop(),
	})
	return a, fb, creds
}

// loginAs authenticates the app through the normal login flow and clears
// the feedback recorded along the way.
func loginAs(t *testing.T, a *app.App, gw *fakeGateway, fb *feedbackRecorder, username string) {
	t.Helper()
	gw.loginText = testToken
	gw.user = username
	a.Login(context.Background(), username, "pw")
	require.True(t, a.Identity().IsAuthenticated(), "login helper failed")
	gw.calls = nil
	fb.reset()
}
