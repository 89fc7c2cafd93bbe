package app

import (
	"github.com/abdisalam/hoopup-cli/internal/common/apperrors"
)

// Failure taxonomy. Every failure inside a workflow action resolves to one
// of these roots, is reported through the feedback channel exactly once,
// and never escapes as a fatal error.
var (
	// ErrValidation is a missing required local input. The network is
	// never contacted.
	ErrValidation = apperrors.New("required fields are missing")

	// ErrAuthRejected is a server-reported credential or registration
	// failure.
	ErrAuthRejected = apperrors.New("credentials rejected")

	// ErrNetworkFailure is a transport-level fault with no server response.
	ErrNetworkFailure = apperrors.New("could not reach the server")

	// ErrServerRejected is a non-2xx response carrying a textual reason.
	ErrServerRejected = apperrors.New("server rejected the request")
)
