package app

import (
	"context"
)

// Inline edit sub-state. The list is either Viewing (no active edit) or
// Editing exactly one session, whose editable fields live in a detached
// draft. The draft never touches the snapshot until a save round-trips
// successfully.

type editState struct {
	targetID string // "" means Viewing
	draft    SessionFields
}

// StartEditing opens an edit draft seeded from the session's current
// values. Any prior draft is discarded first; at most one session is in
// Editing state at a time.
func (a *App) StartEditing(s Session) {
	a.editor = editState{
		targetID: s.ID,
		draft: SessionFields{
			LocationName: s.LocationName,
			Date:         s.Date,
			StartTime:    s.StartTime,
			EndTime:      s.EndTime,
			Note:         s.Note,
		},
	}
}

// Editing reports whether a session is under edit.
func (a *App) Editing() bool {
	return a.editor.targetID != ""
}

// EditingID returns the id of the session under edit, or "" when Viewing.
func (a *App) EditingID() string {
	return a.editor.targetID
}

// Draft returns the mutable edit draft, or nil when Viewing. Mutating the
// draft never touches the session store.
func (a *App) Draft() *SessionFields {
	if a.editor.targetID == "" {
		return nil
	}
	return &a.editor.draft
}

// CancelEditing discards the draft unconditionally and returns to Viewing.
func (a *App) CancelEditing() {
	a.editor = editState{}
}

// SaveEdit submits the draft through UpdateSession. On reported success the
// draft is discarded and the state returns to Viewing; on failure the edit
// stays open so the user may retry or cancel.
func (a *App) SaveEdit(ctx context.Context) bool {
	if a.editor.targetID == "" {
		return false
	}
	if !a.UpdateSession(ctx, a.editor.targetID, a.editor.draft) {
		return false
	}
	a.editor = editState{}
	return true
}
