package app_test

import (
	"context"
	"fmt"

	"github.com/abdisalam/hoopup-cli/internal/app"
)

// fakeGateway is a scripted gateway double. It records every remote call
// and keeps a server-side session list, so roster mutations behave like the
// real backend: joins are unique, leaves remove, and ListSessions returns a
// deep copy of the server's truth.
type fakeGateway struct {
	loginText   string
	loginErr    error
	registerErr error
	listErr     error
	createErr   error
	joinErr     error
	leaveErr    error
	updateErr   error
	deleteErr   error

	user     string // creator recorded on created sessions
	sessions []app.Session
	calls    []string
}

func (g *fakeGateway) record(name string) {
	g.calls = append(g.calls, name)
}

func (g *fakeGateway) count(name string) int {
	n := 0
	for _, c := range g.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (g *fakeGateway) find(id string) *app.Session {
	for i := range g.sessions {
		if g.sessions[i].ID == id {
			return &g.sessions[i]
		}
	}
	return nil
}

func (g *fakeGateway) Login(ctx context.Context, username, password string) (string, error) {
	g.record("login")
	return g.loginText, g.loginErr
}

func (g *fakeGateway) Register(ctx context.Context, username, email, password string) error {
	g.record("register")
	return g.registerErr
}

func (g *fakeGateway) ListSessions(ctx context.Context, token string) ([]app.Session, error) {
	g.record("list")
	if g.listErr != nil {
		return nil, g.listErr
	}
	out := make([]app.Session, len(g.sessions))
	for i, s := range g.sessions {
		out[i] = s
		out[i].Attendees = append([]app.UserRef(nil), s.Attendees...)
	}
	return out, nil
}

func (g *fakeGateway) CreateSession(ctx context.Context, token string, fields app.SessionFields) error {
	g.record("create")
	if g.createErr != nil {
		return g.createErr
	}
	g.sessions = append(g.sessions, app.Session{
		ID:           fmt.Sprintf("s%d", len(g.sessions)+1),
		LocationName: fields.LocationName,
		Date:         fields.Date,
		StartTime:    fields.StartTime,
		EndTime:      fields.EndTime,
		Note:         fields.Note,
		Creator:      app.UserRef{Username: g.user},
	})
	return nil
}

func (g *fakeGateway) JoinSession(ctx context.Context, token, sessionID, username string) error {
	g.record("join")
	if g.joinErr != nil {
		return g.joinErr
	}
	s := g.find(sessionID)
	if s == nil {
		return nil
	}
	for _, att := range s.Attendees {
		if att.Username == username {
			return nil
		}
	}
	s.Attendees = append(s.Attendees, app.UserRef{Username: username})
	return nil
}

func (g *fakeGateway) LeaveSession(ctx context.Context, token, sessionID, username string) error {
	g.record("leave")
	if g.leaveErr != nil {
		return g.leaveErr
	}
	s := g.find(sessionID)
	if s == nil {
		return nil
	}
	remaining := s.Attendees[:0]
	for _, att := range s.Attendees {
		if att.Username != username {
			remaining = append(remaining, att)
		}
	}
	s.Attendees = remaining
	return nil
}

func (g *fakeGateway) UpdateSession(ctx context.Context, token, sessionID string, fields app.SessionFields) error {
	g.record("update")
	if g.updateErr != nil {
		return g.updateErr
	}
	s := g.find(sessionID)
	if s == nil {
		return app.ErrServerRejected.Msg("Session not found")
	}
	s.LocationName = fields.LocationName
	s.Date = fields.Date
	s.StartTime = fields.StartTime
	s.EndTime = fields.EndTime
	s.Note = fields.Note
	return nil
}

func (g *fakeGateway) DeleteSession(ctx context.Context, token, sessionID string) error {
	g.record("delete")
	if g.deleteErr != nil {
		return g.deleteErr
	}
	remaining := g.sessions[:0]
	for _, s := range g.sessions {
		if s.ID != sessionID {
			remaining = append(remaining, s)
		}
	}
	g.sessions = remaining
	return nil
}
