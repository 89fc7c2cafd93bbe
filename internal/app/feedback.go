package app

// FeedbackKind classifies a feedback event.
type FeedbackKind string

const (
	FeedbackSuccess FeedbackKind = "success"
	FeedbackError   FeedbackKind = "error"
)

// Feedback receives the one-shot outcome notification of every workflow
// action. Implementations display the message however the presentation
// layer sees fit; the core only guarantees exactly one Emit per terminal
// outcome and none for pending-state transitions.
type Feedback interface {
	Emit(kind FeedbackKind, text string)
}

// FeedbackFunc adapts a function to the Feedback interface.
type FeedbackFunc func(kind FeedbackKind, text string)

// Emit calls f.
func (f FeedbackFunc) Emit(kind FeedbackKind, text string) {
	f(kind, text)
}

type nopFeedback struct{}

func (nopFeedback) Emit(FeedbackKind, string) {}
