// Package apperrors provides wrappable, classifiable errors for the client.
// Taxonomy roots are created with New; call sites refine them with Msg or Err
// while remaining compatible with errors.Is for classification at the boundary.
package apperrors

// Error is the interface implemented by all application errors.
// It extends the standard error interface with message refinement
// and error aggregation.
type Error interface {
	error

	// Msg returns a new error carrying msg, wrapping the current error.
	Msg(msg string) Error

	// Err returns a new error attaching errs to the current error.
	// The message is unchanged.
	Err(errs ...error) Error

	// Unwrap returns the base error for errors.Is / errors.As.
	Unwrap() error

	// UnwrapAll returns all attached errors in the order they were added.
	UnwrapAll() []error
}
