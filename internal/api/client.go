package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/oops"

	"preptogether/internal/domain"
)

// Error codes attached to failures returned by Client.
const (
	CodeTransport = "API_TRANSPORT"
	CodeStatus    = "API_STATUS"
	CodeDecode    = "API_DECODE"
	CodeRequest   = "API_REQUEST"
)

// DefaultTimeout bounds a single request when no HTTP client is supplied.
const DefaultTimeout = 30 * time.Second

// maxErrorBody caps how much of a failed response is read for diagnostics.
const maxErrorBody = 4 << 10

// Client talks JSON over HTTP to the Prepare Together API.
type Client struct {
	base   string
	http   *http.Client
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New returns a Client for the API rooted at base, e.g. http://127.0.0.1:5000.
func New(base string, opts ...Option) *Client {
	c := &Client{
		base:   strings.TrimRight(base, "/"),
		http:   &http.Client{Timeout: DefaultTimeout},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root this client talks to.
func (c *Client) BaseURL() string { return c.base }

// CheckEmail asks whether email already belongs to an account.
func (c *Client) CheckEmail(ctx context.Context, email string) (bool, error) {
	var out struct {
		Exists bool `json:"exists"`
	}
	path := "/check-email?email=" + url.QueryEscape(email)
	if err := c.do(ctx, http.MethodGet, path, nil, "", &out); err != nil {
		return false, err
	}
	return out.Exists, nil
}

// Register submits a new account.
func (c *Client) Register(
	ctx context.Context,
	request domain.RegistrationRequest,
) (domain.RegistrationResult, error) {
	var out domain.RegistrationResult
	if err := c.do(ctx, http.MethodPost, "/register", request, "", &out); err != nil {
		return domain.RegistrationResult{}, err
	}
	return out, nil
}

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	in := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}
	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.do(ctx, http.MethodPost, "/login", in, "", &out); err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", oops.Code(CodeDecode).
			With("path", "/login").
			Errorf("login response carried no access token")
	}
	return out.AccessToken, nil
}

// FetchProfile returns the profile of the user the token belongs to.
func (c *Client) FetchProfile(ctx context.Context, token string) (domain.Profile, error) {
	var out struct {
		User *domain.Profile `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/profile", nil, token, &out); err != nil {
		return domain.Profile{}, err
	}
	if out.User == nil {
		return domain.Profile{}, oops.Code(CodeDecode).
			With("path", "/profile").
			Errorf("profile response carried no user")
	}
	return *out.User, nil
}

func (c *Client) do(ctx context.Context, method, path string, in any, token string, out any) error {
	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return oops.Code(CodeRequest).With("path", path).Wrap(err)
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return oops.Code(CodeRequest).With("method", method).With("path", path).Wrap(err)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		// *url.Error repeats the full URL, query included.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return oops.Code(CodeTransport).
			With("method", method).
			With("path", endpoint(path)).
			With("request_id", requestID).
			Wrap(err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "api request",
		"method", method,
		"path", endpoint(path),
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return oops.Code(CodeStatus).
			With("method", method).
			With("path", endpoint(path)).
			With("status", resp.StatusCode).
			With("request_id", requestID).
			Errorf("%s %s: %s%s", method, endpoint(path), resp.Status, serverMessage(resp.Body))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return oops.Code(CodeDecode).
			With("method", method).
			With("path", endpoint(path)).
			With("request_id", requestID).
			Wrap(err)
	}
	return nil
}

// StatusCode returns the HTTP status carried by an API_STATUS error, or 0.
func StatusCode(err error) int {
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return 0
	}
	status, _ := oopsErr.Context()["status"].(int)
	return status
}

// IsTransport reports whether err is a network-level failure.
func IsTransport(err error) bool {
	oopsErr, ok := oops.AsOops(err)
	return ok && fmt.Sprint(oopsErr.Code()) == CodeTransport
}

// endpoint strips the query so e-mail addresses stay out of logs and errors.
func endpoint(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		return path[:i]
	}
	return path
}

// serverMessage extracts the {"error": "..."} text of a failed response.
func serverMessage(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(b) == 0 {
		return ""
	}
	var body struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(b, &body) != nil || body.Error == "" {
		return ""
	}
	return " (" + body.Error + ")"
}

var _ domain.APIClient = (*Client)(nil)
