package auth

import "context"

type Service interface {
	// Signup registers (or re-confirms) an identity pair and emails a
	// confirmation code. Idempotent for an exact (username, email) match.
	Signup(ctx context.Context, req SignupRequest) (*SignupResponse, error)

	// Token exchanges a confirmation code for a JWT access token.
	Token(ctx context.Context, req TokenRequest) (*TokenResponse, error)
}
