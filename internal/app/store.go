package app

import (
	"context"
)

// Refresh fetches the full session list and replaces the snapshot
// atomically. On failure the prior snapshot stays untouched and one error
// feedback is emitted. Idempotent: every successful call yields the
// server's current truth, never a merge with stale local state.
//
// The store deliberately applies no optimistic local mutation; every
// mutating action calls Refresh after the server confirms. When two
// refreshes race, the last one to complete wins the snapshot.
func (a *App) Refresh(ctx context.Context) {
	if !a.identity.IsAuthenticated() {
		return
	}
	a.flags.ListBusy = true
	defer func() { a.flags.ListBusy = false }()

	sessions, err := a.gw.ListSessions(ctx, a.identity.Token)
	if err != nil {
		a.emitError(err, "Could not load sessions")
		return
	}
	a.sessions = sessions
	a.log.Debug().Int("count", len(sessions)).Msg("session list refreshed")
}

// Sessions returns the current snapshot in server order. Callers must treat
// the returned slice as read-only.
func (a *App) Sessions() []Session {
	return a.sessions
}

// FindSession returns the snapshot entry with the given id.
func (a *App) FindSession(id string) (Session, bool) {
	for _, s := range a.sessions {
		if s.ID == id {
			return s, true
		}
	}
	return Session{}, false
}

// IsAttending reports whether username appears on the session's roster.
func IsAttending(s Session, username string) bool {
	for _, att := range s.Attendees {
		if att.Username == username {
			return true
		}
	}
	return false
}

// IsCreator reports whether username created the session.
func IsCreator(s Session, username string) bool {
	return s.Creator.Username == username
}
