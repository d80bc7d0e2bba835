// Package auth implements the credential flows of the API: proxying
// sign-in/sign-up to the external auth provider, the local demo login, and
// minting of HS256 access tokens compatible with provider-issued ones.
package auth

import (
	"context"
	"fmt"
	"time"

	"urs/internal/config"
	"urs/pkg/authprovider"
	"urs/pkg/domain"
	"urs/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DemoUserID is the fixed identity behind the demo login. Stable across
// restarts so demo data survives.
var DemoUserID = uuid.MustParse("00000000-0000-4000-8000-000000000001")

// Options configure the auth service.
type Options struct {
	// Secret is the HS256 signing secret shared with the auth provider.
	Secret string
	// Audience is the audience claim stamped on and expected from tokens.
	Audience string
	// DemoEnabled turns on the local demo login.
	DemoEnabled bool
	// DemoEmail and DemoPassword are the credentials the demo login accepts.
	DemoEmail    string
	DemoPassword string
	// TokenTTL is the lifetime of locally minted tokens.
	TokenTTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Secret:       cfg.JWT.Secret,
		Audience:     cfg.JWT.Audience,
		DemoEnabled:  cfg.Auth.DemoEnabled,
		DemoEmail:    cfg.Auth.DemoEmail,
		DemoPassword: cfg.Auth.DemoPassword,
		TokenTTL:     cfg.Auth.TokenTTL,
	}
}

//go:generate mockgen -package mockauth -source=auth.go -destination=mock/mockauth.go *
type Service interface {
	// SignIn authenticates email/password and returns a session. When demo
	// mode is enabled and the demo credentials are supplied, a local token is
	// minted without contacting the provider.
	SignIn(ctx context.Context, email, password string) (*authprovider.Session, error)
	// SignUp registers a new account with the provider.
	SignUp(ctx context.Context, email, password string) (*authprovider.SignUpResult, error)
	// MintToken issues a signed access token for the given identity.
	MintToken(subject domain.UserID, email string, ttl time.Duration) (string, error)
}

type service struct {
	options  Options
	provider authprovider.Client
}

// New creates an auth service backed by the given provider client. The
// provider may be nil when only demo mode is used.
func New(provider authprovider.Client, options Options) Service {
	return &service{
		options:  options,
		provider: provider,
	}
}

func (s *service) SignIn(ctx context.Context, email, password string) (*authprovider.Session, error) {
	if email == "" || password == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "email and password are required")
	}

	if s.options.DemoEnabled && email == s.options.DemoEmail && password == s.options.DemoPassword {
		return s.demoSession(email)
	}

	if s.provider == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid email or password")
	}

	session, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("could not sign in: %w", err)
	}

	return session, nil
}

func (s *service) SignUp(ctx context.Context, email, password string) (*authprovider.SignUpResult, error) {
	if email == "" || password == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "email and password are required")
	}
	if s.provider == nil {
		return nil, serrors.With(serrors.ErrUnavailable, "registration is not available")
	}

	res, err := s.provider.SignUp(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("could not sign up: %w", err)
	}

	return res, nil
}

func (s *service) demoSession(email string) (*authprovider.Session, error) {
	userID := domain.UserID(DemoUserID)
	token, err := s.MintToken(userID, email, s.options.TokenTTL)
	if err != nil {
		return nil, err
	}

	return &authprovider.Session{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(s.options.TokenTTL.Seconds()),
		User: domain.User{
			ID:    userID,
			Email: email,
		},
	}, nil
}

// MintToken signs an HS256 token carrying the same claims the auth provider
// stamps on its access tokens, so the verification path is identical.
func (s *service) MintToken(subject domain.UserID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": uuid.UUID(subject).String(),
		"aud": s.options.Audience,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	if email != "" {
		claims["email"] = email
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.options.Secret))
	if err != nil {
		return "", fmt.Errorf("could not sign token: %w", err)
	}

	return token, nil
}
