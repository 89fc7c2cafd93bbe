package app

import (
	"context"
	"errors"
	"strings"
)

// TokenPrefix is the literal prefix that distinguishes a bearer token from
// a plain-text rejection in the login response. The backend answers both
// cases with a 2xx text body, so this prefix check is the only way to tell
// them apart. It works because the tokens are JWTs, whose base64 header
// always starts with "ey" — a fragile protocol convention inherited from
// the server, not a design choice of this client.
const TokenPrefix = "ey"

// Restore reads any previously persisted identity and, if well-formed,
// makes it the active identity without contacting the remote service.
func (a *App) Restore() {
	username, token, err := a.creds.Load()
	if err != nil {
		a.log.Warn().Err(err).Msg("could not restore credentials")
		return
	}
	if username == "" || token == "" {
		return
	}
	a.identity = AuthIdentity{Username: username, Token: token}
	a.log.Debug().Str("username", username).Msg("restored identity")
}

// Login authenticates against the remote service. On success the identity
// is persisted, success feedback is emitted, and an immediate store refresh
// is triggered. On any failure the client stays logged out and exactly one
// error feedback is emitted, carrying the server's literal message when one
// is available.
func (a *App) Login(ctx context.Context, username, password string) {
	a.flags.FormBusy = true
	defer func() { a.flags.FormBusy = false }()

	text, err := a.gw.Login(ctx, username, password)
	if err != nil {
		a.emitError(err, "Login failed, please try again")
		return
	}

	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, TokenPrefix) {
		// plain-text rejection such as "User not found" or "Wrong password"
		if text == "" {
			text = "Login failed, please try again"
		}
		a.feedback.Emit(FeedbackError, text)
		return
	}

	a.identity = AuthIdentity{Username: username, Token: text}
	if err := a.creds.Save(username, text); err != nil {
		a.log.Warn().Err(err).Msg("could not persist credentials")
	}
	a.feedback.Emit(FeedbackSuccess, "Login successful")
	a.Refresh(ctx)
}

// Register creates a new account. On success the registration form is
// cleared and the UI mode switches back to login. On failure the server's
// field-error messages are concatenated in server-dictated order into one
// feedback string.
func (a *App) Register(ctx context.Context, username, email, password string) {
	a.flags.FormBusy = true
	defer func() { a.flags.FormBusy = false }()

	err := a.gw.Register(ctx, username, email, password)
	if err != nil {
		var regErr *RegisterError
		if errors.As(err, &regErr) && len(regErr.Fields) > 0 {
			a.feedback.Emit(FeedbackError, regErr.Error())
			return
		}
		a.emitError(err, "Registration failed, please try again")
		return
	}

	a.regForm = RegisterForm{}
	a.registering = false
	a.feedback.Emit(FeedbackSuccess, "Registration successful! Please login.")
}

// Logout clears the identity and the session snapshot. Synchronous; cannot
// fail.
func (a *App) Logout() {
	a.identity = AuthIdentity{}
	a.sessions = nil
	if err := a.creds.Clear(); err != nil {
		a.log.Warn().Err(err).Msg("could not clear persisted credentials")
	}
	a.feedback.Emit(FeedbackSuccess, "Logged out")
}
