// Package api provides the HTTP client for the HoopUp REST API. It handles
// request building, bearer-token authentication, and response decoding, and
// implements the app.Gateway contract consumed by the workflow engine.
package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/gjson"

	"github.com/abdisalam/hoopup-cli/internal/app"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var _ app.Gateway = (*Client)(nil)

// Client makes HTTP requests to a HoopUp server. Failures are classified
// into the app error taxonomy: transport faults become network failures,
// non-2xx responses become server rejections carrying the server's reason.
type Client struct {
	serverURL  string
	httpClient *http.Client
}

// NewClient creates a client for the given server URL. Trailing slashes are
// tolerated.
func NewClient(serverURL string) *Client {
	return &Client{
		serverURL:  strings.TrimRight(serverURL, "/"),
		httpClient: &http.Client{},
	}
}

// requestOptions describes one API request. Token is optional; body may be
// nil.
type requestOptions struct {
	method string
	path   string
	token  string
	body   []byte
}

// doRequest performs the request and returns the response body and status
// code. Transport-level faults are returned as network failures; HTTP error
// statuses are left to the caller, which knows the endpoint's error shape.
func (c *Client) doRequest(ctx context.Context, opts requestOptions) ([]byte, int, error) {
	u, err := url.Parse(c.serverURL)
	if err != nil {
		return nil, 0, app.ErrNetworkFailure.Err(err)
	}
	u.Path = path.Join(u.Path, opts.path)

	req, err := http.NewRequestWithContext(ctx, opts.method, u.String(), bytes.NewBuffer(opts.body))
	if err != nil {
		return nil, 0, app.ErrNetworkFailure.Err(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if opts.token != "" {
		req.Header.Set("Authorization", "Bearer "+opts.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, app.ErrNetworkFailure.Err(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, app.ErrNetworkFailure.Err(err)
	}
	return body, resp.StatusCode, nil
}

// serverMessage extracts a human-readable reason from an error response.
// The backend mostly answers with plain text, but framework-generated
// errors arrive as JSON with an "error" or "message" field.
func serverMessage(body []byte, status int) string {
	if gjson.ValidBytes(body) {
		parsed := gjson.ParseBytes(body)
		for _, key := range []string{"error", "message"} {
			if v := parsed.Get(key); v.Exists() && v.String() != "" {
				return v.String()
			}
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return http.StatusText(status)
}

// rejected wraps a non-2xx response into a server rejection carrying the
// server's reason text.
func rejected(body []byte, status int) error {
	return app.ErrServerRejected.Msg(serverMessage(body, status))
}
