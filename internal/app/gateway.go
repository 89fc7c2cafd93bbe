package app

import (
	"context"
	"strings"
)

// Gateway is the remote boundary for auth and session operations. The HTTP
// implementation lives in internal/api; tests substitute scripted fakes.
//
// Login returns the literal 2xx response text: the backend answers the login
// endpoint with either a bearer token or a plain-text rejection, with no
// structured success field. Interpreting that text is the auth manager's job.
type Gateway interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, email, password string) error
	ListSessions(ctx context.Context, token string) ([]Session, error)
	CreateSession(ctx context.Context, token string, fields SessionFields) error
	JoinSession(ctx context.Context, token, sessionID, username string) error
	LeaveSession(ctx context.Context, token, sessionID, username string) error
	UpdateSession(ctx context.Context, token, sessionID string, fields SessionFields) error
	DeleteSession(ctx context.Context, token, sessionID string) error
}

// FieldError is one field-level validation message from the registration
// endpoint.
type FieldError struct {
	Field   string
	Message string
}

// RegisterError carries the server's per-field registration messages in the
// order the server reported them.
type RegisterError struct {
	Fields []FieldError
}

// Error returns all field messages joined in server order.
func (e *RegisterError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, ", ")
}

// Is classifies a RegisterError as an auth rejection.
func (e *RegisterError) Is(target error) bool {
	return target == ErrAuthRejected
}
