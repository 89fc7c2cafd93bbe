package app

// UserRef identifies a user by name, as the server reports them on
// session creators and attendee rosters.
type UserRef struct {
	Username string `json:"username"`
}

// Session is a scheduled meetup as reported by the server. Sessions are
// values owned by the store's snapshot; the client never constructs an ID
// locally. Attendees carry no duplicate usernames.
type Session struct {
	ID           string    `json:"id"`
	LocationName string    `json:"locationName"`
	Date         string    `json:"date"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	Note         string    `json:"note,omitempty"`
	Creator      UserRef   `json:"creator"`
	Attendees    []UserRef `json:"attendees"`
}

// SessionFields holds the editable fields of a session. It backs both the
// creation form and the inline edit draft. Note is the only optional field.
type SessionFields struct {
	LocationName string `json:"locationName" validate:"required"`
	Date         string `json:"date" validate:"required"`
	StartTime    string `json:"startTime" validate:"required"`
	EndTime      string `json:"endTime" validate:"required"`
	Note         string `json:"note"`
}

// RegisterForm holds the transient registration form fields. Cleared on
// successful registration.
type RegisterForm struct {
	Username string
	Email    string
	Password string
}

// AuthIdentity is the authenticated user. The token is non-empty iff the
// user is considered authenticated, and the username is non-empty whenever
// the token is.
type AuthIdentity struct {
	Username string
	Token    string
}

// IsAuthenticated reports whether the identity carries a token.
func (id AuthIdentity) IsAuthenticated() bool {
	return id.Token != ""
}

// LoadingFlags are the ephemeral busy indicators for the UI. FormBusy covers
// form submissions (login, register, create, save-edit); ListBusy covers
// list-level operations (refresh, join, leave, delete). Both always reset on
// completion, success or failure.
type LoadingFlags struct {
	FormBusy bool
	ListBusy bool
}
