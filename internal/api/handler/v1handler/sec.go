package v1handler

import (
	"context"
	"net/http"
	"strings"

	"urs/internal/config"
	"urs/pkg/domain"
	"urs/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type userCtxKeyType struct{}

var userCtxKey userCtxKeyType

// SecHandlerOptions configure bearer token verification.
type SecHandlerOptions struct {
	// Secret is the HS256 signing secret shared with the auth provider.
	Secret string
	// Audience is the expected audience claim.
	Audience string
}

// NewSecHandlerOptions derives SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		Secret:   cfg.JWT.Secret,
		Audience: cfg.JWT.Audience,
	}
}

// SecHandler verifies bearer tokens and injects the authenticated user into
// the request context.
type SecHandler struct {
	secret   []byte
	audience string
}

// NewSecHandler validates the options and constructs a SecHandler.
func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || opts.Secret == "" {
		return nil, serrors.With(serrors.ErrInternal, "jwt secret is not configured")
	}

	return &SecHandler{
		secret:   []byte(opts.Secret),
		audience: opts.Audience,
	}, nil
}

// Middleware rejects requests without a valid token. The token comes from
// the Authorization header, or from a ?token= query parameter for browser
// download links that cannot set headers.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := bearerToken(r)
		if raw == "" {
			raw = r.URL.Query().Get("token")
		}
		if raw == "" {
			writeError(r.Context(), w, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		user, err := s.Verify(raw)
		if err != nil {
			writeError(r.Context(), w, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), *user)))
	})
}

// Verify parses and validates a token and returns the identity it carries.
func (s *SecHandler) Verify(raw string) (*domain.User, error) {
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if s.audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(s.audience))
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, parserOpts...)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, serrors.With(serrors.ErrUnauthorized, "token has no subject")
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "token subject is not a user ID")
	}

	email, _ := claims["email"].(string)

	return &domain.User{
		ID:    domain.UserID(id),
		Email: email,
	}, nil
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

// WithUser stores the authenticated user on the context.
func WithUser(ctx context.Context, user domain.User) context.Context {
	return context.WithValue(ctx, userCtxKey, user)
}

// GetUserFromContext returns the authenticated user placed by the
// middleware. The zero value means the request was not authenticated.
func GetUserFromContext(ctx context.Context) domain.User {
	user, _ := ctx.Value(userCtxKey).(domain.User)

	return user
}
