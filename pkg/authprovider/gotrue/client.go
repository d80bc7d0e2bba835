// Package gotrue provides an authprovider.Client implementation backed by a
// GoTrue-compatible HTTP API (the auth service Supabase exposes).
package gotrue

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"urs/pkg/authprovider"
	"urs/pkg/domain"
	"urs/pkg/serrors"

	"github.com/google/uuid"
)

// Client talks to the GoTrue REST API and fulfills the authprovider.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string // baseURL is the project URL, e.g. https://xyz.supabase.co
	anonKey    string // anonKey is the public API key sent with every request
}

// Ensure Client conforms to the authprovider.Client interface at compile time.
var _ authprovider.Client = (*Client)(nil)

// New constructs a Client for the given project base URL and anon key.
func New(httpClient *http.Client, baseURL, anonKey string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		anonKey:    anonKey,
	}
}

type credentialsReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResp struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	User        *struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`

	// Signup-pending-confirmation responses carry the user object at the top
	// level instead of a session.
	ID    string `json:"id"`
	Email string `json:"email"`

	// GoTrue reports errors through these fields with non-2xx statuses.
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
}

func (r sessionResp) errorMessage() string {
	if r.ErrorDescription != "" {
		return r.ErrorDescription
	}

	return r.Msg
}

func (c *Client) post(ctx context.Context, path string, body any) (*sessionResp, int, error) {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, 0, fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		c.baseURL+path,
		strings.NewReader(string(bodyBytes)))
	if err != nil {
		return nil, 0, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.anonKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, serrors.Wrap(serrors.ErrUnavailable, err, "could not reach auth provider")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("could not read response body: %w", err)
	}

	var out sessionResp
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("could not decode response: %w", err)
	}

	return &out, resp.StatusCode, nil
}

func toSession(r *sessionResp) (*authprovider.Session, error) {
	if r.User == nil || r.AccessToken == "" {
		return nil, nil //nolint: nilnil
	}

	id, err := uuid.Parse(r.User.ID)
	if err != nil {
		return nil, fmt.Errorf("could not parse user ID: %w", err)
	}

	return &authprovider.Session{
		AccessToken: r.AccessToken,
		TokenType:   r.TokenType,
		ExpiresIn:   r.ExpiresIn,
		User: domain.User{
			ID:    domain.UserID(id),
			Email: r.User.Email,
		},
	}, nil
}

// SignIn exchanges email/password for a session through the password grant.
func (c *Client) SignIn(ctx context.Context, email, password string) (*authprovider.Session, error) {
	resp, status, err := c.post(ctx,
		"/auth/v1/token?grant_type=password",
		credentialsReq{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	if status < 200 || status >= 300 {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid email or password")
	}

	session, err := toSession(resp)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid email or password")
	}

	return session, nil
}

// SignUp registers a new account. When the provider requires email
// confirmation, the result carries the user but no session.
func (c *Client) SignUp(ctx context.Context, email, password string) (*authprovider.SignUpResult, error) {
	resp, status, err := c.post(ctx, "/auth/v1/signup", credentialsReq{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	if status == http.StatusUnprocessableEntity || status == http.StatusBadRequest {
		return nil, serrors.With(serrors.ErrBadRequest, "could not create account: %s", resp.errorMessage())
	}
	if status < 200 || status >= 300 {
		return nil, serrors.With(serrors.ErrUnavailable, "auth provider error: %s", resp.errorMessage())
	}

	session, err := toSession(resp)
	if err != nil {
		return nil, err
	}
	if session != nil {
		return &authprovider.SignUpResult{User: session.User, Session: session}, nil
	}

	// signup accepted but pending email confirmation: GoTrue returns the
	// bare user object instead of a session
	userID, userEmail := resp.ID, resp.Email
	if resp.User != nil {
		userID, userEmail = resp.User.ID, resp.User.Email
	}
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, serrors.With(serrors.ErrBadRequest, "could not create account")
	}

	return &authprovider.SignUpResult{
		User: domain.User{ID: domain.UserID(id), Email: userEmail},
	}, nil
}
