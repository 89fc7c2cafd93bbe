package app

import (
	"context"
)

// Every workflow action follows the same template: validate, mark busy,
// call the gateway, refresh the store and emit success feedback on success,
// emit error feedback on failure, and always clear the busy flag. No action
// touches the snapshot directly.

// CreateSession posts the creation form to the server. Location, date,
// start and end time are required; a violation short-circuits with one
// error feedback and no network call. On success the creation form is
// cleared.
func (a *App) CreateSession(ctx context.Context) {
	if !a.requireAuth() {
		return
	}
	if err := validate.Struct(a.form); err != nil {
		a.log.Debug().Err(ErrValidation.Err(err)).Msg("create rejected")
		a.feedback.Emit(FeedbackError, "Location, date, start time and end time are required")
		return
	}

	a.flags.FormBusy = true
	defer func() { a.flags.FormBusy = false }()

	if err := a.gw.CreateSession(ctx, a.identity.Token, a.form); err != nil {
		a.emitError(err, "Could not create session")
		return
	}
	a.Refresh(ctx)
	a.form = SessionFields{}
	a.feedback.Emit(FeedbackSuccess, "Session created")
}

// JoinSession adds the current user to a session's roster. Duplicate joins
// are the server's call; the client does not pre-check the roster.
func (a *App) JoinSession(ctx context.Context, sessionID string) {
	if !a.requireAuth() {
		return
	}
	a.flags.ListBusy = true
	defer func() { a.flags.ListBusy = false }()

	if err := a.gw.JoinSession(ctx, a.identity.Token, sessionID, a.identity.Username); err != nil {
		a.emitError(err, "Could not join session")
		return
	}
	a.Refresh(ctx)
	a.feedback.Emit(FeedbackSuccess, "Joined session")
}

// LeaveSession removes the current user from a session's roster.
func (a *App) LeaveSession(ctx context.Context, sessionID string) {
	if !a.requireAuth() {
		return
	}
	a.flags.ListBusy = true
	defer func() { a.flags.ListBusy = false }()

	if err := a.gw.LeaveSession(ctx, a.identity.Token, sessionID, a.identity.Username); err != nil {
		a.emitError(err, "Could not leave session")
		return
	}
	a.Refresh(ctx)
	a.feedback.Emit(FeedbackSuccess, "Left session")
}

// DeleteSession deletes a session after an explicit user confirmation.
// A declined confirmation means the action was never invoked: no network
// call and no feedback. Only the creator succeeds, enforced server-side.
func (a *App) DeleteSession(ctx context.Context, sessionID string) {
	if !a.requireAuth() {
		return
	}
	if !a.confirm("Delete this session?") {
		return
	}

	a.flags.ListBusy = true
	defer func() { a.flags.ListBusy = false }()

	if err := a.gw.DeleteSession(ctx, a.identity.Token, sessionID); err != nil {
		a.emitError(err, "Could not delete session")
		return
	}
	a.Refresh(ctx)
	a.feedback.Emit(FeedbackSuccess, "Session deleted")
}

// UpdateSession sends the full edited field set for a session. It reports
// success to the caller so the inline edit state can decide whether to exit
// edit mode. Creator-only enforcement is server-side.
func (a *App) UpdateSession(ctx context.Context, sessionID string, fields SessionFields) bool {
	if !a.requireAuth() {
		return false
	}
	a.flags.FormBusy = true
	defer func() { a.flags.FormBusy = false }()

	if err := a.gw.UpdateSession(ctx, a.identity.Token, sessionID, fields); err != nil {
		a.emitError(err, "Could not update session")
		return false
	}
	a.Refresh(ctx)
	a.feedback.Emit(FeedbackSuccess, "Session updated")
	return true
}
