package gotrue_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"urs/pkg/authprovider/gotrue"
	"urs/pkg/domain"
	"urs/pkg/serrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *gotrue.Client {
	return gotrue.New(&http.Client{Transport: fn}, "https://proj.supabase.co/", "anon-key")
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestClient_SignIn_Success(t *testing.T) {
	uid := uuid.New()
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "proj.supabase.co", r.URL.Host)
		require.Equal(t, "/auth/v1/token", r.URL.Path)
		require.Equal(t, "password", r.URL.Query().Get("grant_type"))
		require.Equal(t, "anon-key", r.Header.Get("apikey"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.JSONEq(t, `{"email":"a@b.c","password":"pw"}`, string(body))

		return jsonResponse(http.StatusOK, `{
			"access_token":"jwt-token","token_type":"bearer","expires_in":3600,
			"user":{"id":"`+uid.String()+`","email":"a@b.c"}
		}`), nil
	})

	session, err := c.SignIn(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	require.Equal(t, "jwt-token", session.AccessToken)
	require.Equal(t, "bearer", session.TokenType)
	require.Equal(t, 3600, session.ExpiresIn)
	require.Equal(t, domain.UserID(uid), session.User.ID)
	require.Equal(t, "a@b.c", session.User.Email)
}

func TestClient_SignIn_BadCredentials(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadRequest,
			`{"error_description":"Invalid login credentials"}`), nil
	})

	_, err := c.SignIn(context.Background(), "a@b.c", "wrong")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestClient_SignUp_WithSession(t *testing.T) {
	uid := uuid.New()
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/auth/v1/signup", r.URL.Path)

		return jsonResponse(http.StatusOK, `{
			"access_token":"jwt-token","token_type":"bearer","expires_in":3600,
			"user":{"id":"`+uid.String()+`","email":"new@b.c"}
		}`), nil
	})

	res, err := c.SignUp(context.Background(), "new@b.c", "pw")
	require.NoError(t, err)
	require.NotNil(t, res.Session)
	require.Equal(t, domain.UserID(uid), res.User.ID)
}

func TestClient_SignUp_PendingConfirmation(t *testing.T) {
	uid := uuid.New()
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		// no session, bare user object at the top level
		return jsonResponse(http.StatusOK, `{"id":"`+uid.String()+`","email":"new@b.c"}`), nil
	})

	res, err := c.SignUp(context.Background(), "new@b.c", "pw")
	require.NoError(t, err)
	require.Nil(t, res.Session, "confirmation pending means no session yet")
	require.Equal(t, domain.UserID(uid), res.User.ID)
	require.Equal(t, "new@b.c", res.User.Email)
}

func TestClient_SignUp_Rejected(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusUnprocessableEntity,
			`{"msg":"Password should be at least 6 characters"}`), nil
	})

	_, err := c.SignUp(context.Background(), "new@b.c", "pw")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Contains(t, err.Error(), "at least 6 characters")
}

func TestClient_SignUp_ProviderDown(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadGateway, `{"msg":"upstream down"}`), nil
	})

	_, err := c.SignUp(context.Background(), "new@b.c", "pw")
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}
