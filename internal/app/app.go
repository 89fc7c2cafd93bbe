// Package app implements the client-side session state and workflow engine
// for HoopUp. It owns the canonical session list, the authenticated
// identity, the in-flight loading flags, and the single-session inline-edit
// draft, and it defines how every user action mutates that state and
// synchronizes with the remote service.
//
// The engine is UI-agnostic: presentation layers plug in through the
// Feedback sink and the confirm callback. It is written for a single
// cooperative scheduling context; methods are synchronous and the App is
// not safe for concurrent use from multiple goroutines.
package app

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// CredentialStore persists the authenticated identity across process
// restarts. Load reports an absent identity as two empty strings with a nil
// error; the two entries are both present or both absent.
type CredentialStore interface {
	Load() (username, token string, err error)
	Save(username, token string) error
	Clear() error
}

// ConfirmFunc asks the user to approve a destructive action before the
// network call is made.
type ConfirmFunc func(prompt string) bool

var validate = validator.New(validator.WithRequiredStructEnabled())

// App is the explicitly owned context object for the engine. All state
// slices live here as plain fields with the mutation rules enforced by the
// methods in auth.go, store.go, workflow.go, and editor.go.
type App struct {
	gw       Gateway
	creds    CredentialStore
	feedback Feedback
	confirm  ConfirmFunc
	log      zerolog.Logger

	identity    AuthIdentity
	sessions    []Session // snapshot, replaced wholesale on refresh
	flags       LoadingFlags
	form        SessionFields // creation form
	regForm     RegisterForm
	registering bool // UI mode: registration vs. login
	editor      editState
}

// Options configures a new App. Gateway is required; the rest default to
// inert implementations so the engine stays usable in isolation.
type Options struct {
	Gateway     Gateway
	Credentials CredentialStore
	Feedback    Feedback
	Confirm     ConfirmFunc
	Logger      zerolog.Logger
}

// New creates an engine from the given options.
func New(opts Options) *App {
	if opts.Gateway == nil {
		panic("app: Options.Gateway is required")
	}
	if opts.Feedback == nil {
		opts.Feedback = nopFeedback{}
	}
	if opts.Credentials == nil {
		opts.Credentials = memoryCreds{}
	}
	if opts.Confirm == nil {
		// destructive actions are denied unless the caller wires a prompt
		opts.Confirm = func(string) bool { return false }
	}
	return &App{
		gw:       opts.Gateway,
		creds:    opts.Credentials,
		feedback: opts.Feedback,
		confirm:  opts.Confirm,
		log:      opts.Logger,
	}
}

// Identity returns the current authenticated identity. The zero value means
// the client is unauthenticated.
func (a *App) Identity() AuthIdentity {
	return a.identity
}

// Flags returns the current loading flags.
func (a *App) Flags() LoadingFlags {
	return a.flags
}

// Form returns the creation form fields.
func (a *App) Form() SessionFields {
	return a.form
}

// SetForm replaces the creation form fields.
func (a *App) SetForm(fields SessionFields) {
	a.form = fields
}

// RegistrationForm returns the registration form fields.
func (a *App) RegistrationForm() RegisterForm {
	return a.regForm
}

// SetRegistrationForm replaces the registration form fields.
func (a *App) SetRegistrationForm(form RegisterForm) {
	a.regForm = form
}

// SetConfirm replaces the confirmation callback for destructive actions.
// A nil callback denies everything.
func (a *App) SetConfirm(confirm ConfirmFunc) {
	if confirm == nil {
		confirm = func(string) bool { return false }
	}
	a.confirm = confirm
}

// Registering reports whether the UI is in registration mode.
func (a *App) Registering() bool {
	return a.registering
}

// SetRegistering switches between registration and login mode.
func (a *App) SetRegistering(v bool) {
	a.registering = v
}

// emitError resolves an action failure into a single error feedback
// emission. Server-reported reasons are surfaced literally; transport and
// other faults fall back to the generic message.
func (a *App) emitError(err error, generic string) {
	text := generic
	if errors.Is(err, ErrServerRejected) || errors.Is(err, ErrAuthRejected) {
		if msg := err.Error(); msg != "" {
			text = msg
		}
	}
	a.log.Debug().Err(err).Msg("action failed")
	a.feedback.Emit(FeedbackError, text)
}

// requireAuth guards actions that need a token. Violations report through
// the feedback channel like any other validation failure.
func (a *App) requireAuth() bool {
	if a.identity.IsAuthenticated() {
		return true
	}
	a.feedback.Emit(FeedbackError, "You must be logged in")
	return false
}

// memoryCreds is the default in-memory credential store; it never persists.
type memoryCreds struct{}

func (memoryCreds) Load() (string, string, error) { return "", "", nil }
func (memoryCreds) Save(string, string) error     { return nil }
func (memoryCreds) Clear() error                  { return nil }
