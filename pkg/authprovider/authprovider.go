// Package authprovider defines the abstraction over the external
// authentication service. The backend never stores passwords; it proxies
// credential flows to the provider and afterwards only verifies the bearer
// tokens the provider issued.
package authprovider

import (
	"context"

	"urs/pkg/domain"
)

// Session is the provider-issued token bundle for a signed-in user.
type Session struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int    `json:"expiresIn"`

	User domain.User `json:"user"`
}

// SignUpResult reports the outcome of a registration. Session is nil when the
// provider requires email confirmation before issuing tokens.
type SignUpResult struct {
	User    domain.User
	Session *Session
}

// Client is the abstraction for the external auth service.
//
//go:generate mockgen -package mockauthprovider -source=authprovider.go -destination=mock/mockauthprovider.go *
type Client interface {
	// SignIn exchanges email/password credentials for a session.
	SignIn(ctx context.Context, email, password string) (*Session, error)
	// SignUp registers a new account.
	SignUp(ctx context.Context, email, password string) (*SignUpResult, error)
}
