package v1handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"urs/internal/api/handler/v1handler"
	"urs/pkg/domain"
	"urs/pkg/serrors"
)

func newTestSecHandler(t *testing.T) *v1handler.SecHandler {
	t.Helper()

	sec, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{
		Secret:   testSecret,
		Audience: testAudience,
	})
	require.NoError(t, err)

	return sec
}

func signClaims(t *testing.T, secret string, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestNewSecHandler_RequiresSecret(t *testing.T) {
	_, err := v1handler.NewSecHandler(nil)
	require.Error(t, err)

	_, err = v1handler.NewSecHandler(&v1handler.SecHandlerOptions{Secret: ""})
	require.Error(t, err)
}

func TestVerify_ValidToken(t *testing.T) {
	sec := newTestSecHandler(t)

	user := domain.User{ID: domain.UserID(uuid.New()), Email: "a@b.c"}
	user2, err := sec.Verify(signTestToken(t, user))
	require.NoError(t, err)
	require.Equal(t, user.ID, user2.ID)
	require.Equal(t, user.Email, user2.Email)
}

func TestVerify_WrongSecret(t *testing.T) {
	sec := newTestSecHandler(t)

	now := time.Now()
	tkn := signClaims(t, "other-secret", jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": uuid.NewString(), "aud": testAudience,
		"iat": now.Unix(), "exp": now.Add(time.Hour).Unix(),
	})

	_, err := sec.Verify(tkn)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestVerify_ExpiredToken(t *testing.T) {
	sec := newTestSecHandler(t)

	now := time.Now()
	tkn := signClaims(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": uuid.NewString(), "aud": testAudience,
		"iat": now.Add(-2 * time.Hour).Unix(), "exp": now.Add(-time.Hour).Unix(),
	})

	_, err := sec.Verify(tkn)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestVerify_MissingExpiry(t *testing.T) {
	sec := newTestSecHandler(t)

	tkn := signClaims(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": uuid.NewString(), "aud": testAudience,
		"iat": time.Now().Unix(),
	})

	_, err := sec.Verify(tkn)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestVerify_WrongAudience(t *testing.T) {
	sec := newTestSecHandler(t)

	now := time.Now()
	tkn := signClaims(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": uuid.NewString(), "aud": "somebody-else",
		"iat": now.Unix(), "exp": now.Add(time.Hour).Unix(),
	})

	_, err := sec.Verify(tkn)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestVerify_WrongAlgorithm(t *testing.T) {
	sec := newTestSecHandler(t)

	now := time.Now()
	tkn := signClaims(t, testSecret, jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": uuid.NewString(), "aud": testAudience,
		"iat": now.Unix(), "exp": now.Add(time.Hour).Unix(),
	})

	_, err := sec.Verify(tkn)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestVerify_NonUUIDSubject(t *testing.T) {
	sec := newTestSecHandler(t)

	now := time.Now()
	tkn := signClaims(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "not-a-uuid", "aud": testAudience,
		"iat": now.Unix(), "exp": now.Add(time.Hour).Unix(),
	})

	_, err := sec.Verify(tkn)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestVerify_MissingSubject(t *testing.T) {
	sec := newTestSecHandler(t)

	now := time.Now()
	tkn := signClaims(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{
		"aud": testAudience,
		"iat": now.Unix(), "exp": now.Add(time.Hour).Unix(),
	})

	_, err := sec.Verify(tkn)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

// probe records the user the middleware placed on the context.
func probeHandler(captured *domain.User) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = v1handler.GetUserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddleware_BearerHeader(t *testing.T) {
	sec := newTestSecHandler(t)

	user := domain.User{ID: domain.UserID(uuid.New()), Email: "a@b.c"}
	var captured domain.User

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, user))
	rec := httptest.NewRecorder()

	sec.Middleware(probeHandler(&captured)).ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, user.ID, captured.ID)
}

func TestMiddleware_QueryTokenFallback(t *testing.T) {
	sec := newTestSecHandler(t)

	user := domain.User{ID: domain.UserID(uuid.New()), Email: "a@b.c"}
	var captured domain.User

	// browser download links cannot set headers
	req := httptest.NewRequest(http.MethodGet,
		"/jobs/x/export?format=json&token="+signTestToken(t, user), nil)
	rec := httptest.NewRecorder()

	sec.Middleware(probeHandler(&captured)).ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, user.ID, captured.ID)
}

func TestMiddleware_MissingToken(t *testing.T) {
	sec := newTestSecHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	rec := httptest.NewRecorder()

	var captured domain.User
	sec.Middleware(probeHandler(&captured)).ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "missing bearer token")
}

func TestMiddleware_MalformedAuthorizationHeader(t *testing.T) {
	sec := newTestSecHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwdw==")
	rec := httptest.NewRecorder()

	var captured domain.User
	sec.Middleware(probeHandler(&captured)).ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
