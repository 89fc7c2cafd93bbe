package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/abdisalam/hoopup-cli/internal/app"
)

// Login posts credentials and returns the literal response text. The
// endpoint answers 2xx with either a token or a plain-text rejection;
// telling them apart is the caller's job (see app.TokenPrefix). A non-2xx
// status is treated as an auth rejection carrying the server's reason.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", app.ErrNetworkFailure.Err(err)
	}

	respBody, status, err := c.doRequest(ctx, requestOptions{
		method: http.MethodPost,
		path:   "users/login",
		body:   body,
	})
	if err != nil {
		return "", err
	}
	if status >= 400 {
		return "", app.ErrAuthRejected.Msg(serverMessage(respBody, status))
	}
	return string(respBody), nil
}

// Register creates an account. A 4xx response carries a JSON object of
// field-error messages; these are returned as an app.RegisterError with the
// fields in the order the server wrote them. encoding/json would decode the
// body into a map and scramble that order, so the object is walked with
// gjson instead.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	body, err := json.Marshal(map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return app.ErrNetworkFailure.Err(err)
	}

	respBody, status, err := c.doRequest(ctx, requestOptions{
		method: http.MethodPost,
		path:   "users/register",
		body:   body,
	})
	if err != nil {
		return err
	}
	if status >= 400 {
		if fields := parseFieldErrors(respBody); len(fields) > 0 {
			return &app.RegisterError{Fields: fields}
		}
		return app.ErrAuthRejected.Msg(serverMessage(respBody, status))
	}
	return nil
}

func parseFieldErrors(body []byte) []app.FieldError {
	parsed := gjson.ParseBytes(body)
	if !parsed.IsObject() {
		return nil
	}
	var fields []app.FieldError
	parsed.ForEach(func(key, value gjson.Result) bool {
		fields = append(fields, app.FieldError{
			Field:   key.String(),
			Message: value.String(),
		})
		return true
	})
	return fields
}

// ListSessions fetches the full session list in server order.
func (c *Client) ListSessions(ctx context.Context, token string) ([]app.Session, error) {
	respBody, status, err := c.doRequest(ctx, requestOptions{
		method: http.MethodGet,
		path:   "sessions",
		token:  token,
	})
	if err != nil {
		return nil, err
	}
	if status >= 400 {
		return nil, rejected(respBody, status)
	}
	return decodeSessions(respBody)
}

// decodeSessions builds the session slice from the wire body. Walking with
// gjson keeps the decode tolerant of the id's wire type: the backend serves
// numeric ids, while test servers use strings.
func decodeSessions(body []byte) ([]app.Session, error) {
	parsed := gjson.ParseBytes(body)
	if !parsed.IsArray() {
		return nil, app.ErrServerRejected.Msg("malformed session list")
	}

	sessions := make([]app.Session, 0)
	parsed.ForEach(func(_, item gjson.Result) bool {
		s := app.Session{
			ID:           item.Get("id").String(),
			LocationName: item.Get("locationName").String(),
			Date:         item.Get("date").String(),
			StartTime:    item.Get("startTime").String(),
			EndTime:      item.Get("endTime").String(),
			Note:         item.Get("note").String(),
			Creator:      app.UserRef{Username: item.Get("creator.username").String()},
		}
		item.Get("attendees").ForEach(func(_, att gjson.Result) bool {
			s.Attendees = append(s.Attendees, app.UserRef{Username: att.Get("username").String()})
			return true
		})
		sessions = append(sessions, s)
		return true
	})
	return sessions, nil
}

// CreateSession posts a new session.
func (c *Client) CreateSession(ctx context.Context, token string, fields app.SessionFields) error {
	body, err := json.Marshal(fields)
	if err != nil {
		return app.ErrNetworkFailure.Err(err)
	}
	respBody, status, err := c.doRequest(ctx, requestOptions{
		method: http.MethodPost,
		path:   "sessions",
		token:  token,
		body:   body,
	})
	if err != nil {
		return err
	}
	if status >= 400 {
		return rejected(respBody, status)
	}
	return nil
}

// JoinSession adds username to the session's roster.
func (c *Client) JoinSession(ctx context.Context, token, sessionID, username string) error {
	return c.postRoster(ctx, token, sessionID, "join", username)
}

// LeaveSession removes username from the session's roster.
func (c *Client) LeaveSession(ctx context.Context, token, sessionID, username string) error {
	return c.postRoster(ctx, token, sessionID, "leave", username)
}

func (c *Client) postRoster(ctx context.Context, token, sessionID, action, username string) error {
	body, err := json.Marshal(map[string]string{"username": username})
	if err != nil {
		return app.ErrNetworkFailure.Err(err)
	}
	respBody, status, err := c.doRequest(ctx, requestOptions{
		method: http.MethodPost,
		path:   strings.Join([]string{"sessions", sessionID, action}, "/"),
		token:  token,
		body:   body,
	})
	if err != nil {
		return err
	}
	if status >= 400 {
		return rejected(respBody, status)
	}
	return nil
}

// UpdateSession sends the full edited field set for the session.
func (c *Client) UpdateSession(ctx context.Context, token, sessionID string, fields app.SessionFields) error {
	body, err := json.Marshal(fields)
	if err != nil {
		return app.ErrNetworkFailure.Err(err)
	}
	respBody, status, err := c.doRequest(ctx, requestOptions{
		method: http.MethodPut,
		path:   "sessions/" + sessionID,
		token:  token,
		body:   body,
	})
	if err != nil {
		return err
	}
	if status >= 400 {
		return rejected(respBody, status)
	}
	return nil
}

// DeleteSession removes the session.
func (c *Client) DeleteSession(ctx context.Context, token, sessionID string) error {
	respBody, status, err := c.doRequest(ctx, requestOptions{
		method: http.MethodDelete,
		path:   "sessions/" + sessionID,
		token:  token,
	})
	if err != nil {
		return err
	}
	if status >= 400 {
		return rejected(respBody, status)
	}
	return nil
}
