package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"reviewdb-backend/internal/domains/auth"
	"reviewdb-backend/internal/domains/user"
	"reviewdb-backend/internal/infrastructure/email"
	"reviewdb-backend/internal/infrastructure/queue"
	"reviewdb-backend/internal/shared/access"
	"reviewdb-backend/pkg/jwt"
	"reviewdb-backend/pkg/logger"
	"reviewdb-backend/pkg/token"
)

type authService struct {
	users    user.Repository
	codes    *token.Generator
	jwt      *jwt.Manager
	enqueuer queue.Enqueuer
}

func NewAuthService(
	users user.Repository,
	codes *token.Generator,
	jwtManager *jwt.Manager,
	enqueuer queue.Enqueuer,
) auth.Service {
	return &authService{
		users:    users,
		codes:    codes,
		jwt:      jwtManager,
		enqueuer: enqueuer,
	}
}

func (s *authService) Signup(ctx context.Context, req auth.SignupRequest) (*auth.SignupResponse, error) {
	// Step 1: Validate input ("me" and malformed emails die here)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))

	// Step 2: Resolve the identity pair. An exact match re-confirms the
	// existing account; a half match is a collision with someone else.
	u, err := s.resolveUser(ctx, req.Username, emailAddr)
	if err != nil {
		return nil, err
	}

	// Step 3: Issue a state-bound confirmation code
	code := s.codes.MakeCode(u.TokenState())

	// Step 4: Deliver in the background. Delivery failures are logged,
	// never surfaced: the client learns nothing about mailbox validity,
	// and a retryable queue hiccup must not fail the signup.
	if err := s.enqueuer.EnqueueConfirmationEmail(ctx, email.ConfirmationEmailData{
		Email:    u.Email,
		Username: u.Username,
		Code:     code,
	}); err != nil {
		logger.Error("failed to enqueue confirmation email", err)
	}

	return &auth.SignupResponse{Username: u.Username, Email: u.Email}, nil
}

// resolveUser implements get-or-create on the (username, email) pair.
func (s *authService) resolveUser(ctx context.Context, username, emailAddr string) (*user.User, error) {
	existing, err := s.users.GetByUsername(ctx, username)
	switch {
	case err == nil:
		if existing.Email != emailAddr {
			return nil, user.ErrUsernameTaken
		}
		return existing, nil
	case !errors.Is(err, user.ErrNotFound):
		return nil, fmt.Errorf("lookup username: %w", err)
	}

	if _, err := s.users.GetByEmail(ctx, emailAddr); err == nil {
		return nil, user.ErrEmailTaken
	} else if !errors.Is(err, user.ErrNotFound) {
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	u := &user.User{
		Username: username,
		Email:    emailAddr,
		Role:     access.RoleUser,
	}
	u.Normalize()

	// Concurrent signups race to the unique constraints; the loser gets
	// the same collision error a sequential check would have produced.
	created, err := s.users.Create(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return created, nil
}

func (s *authService) Token(ctx context.Context, req auth.TokenRequest) (*auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	if !s.codes.CheckCode(u.TokenState(), req.ConfirmationCode) {
		return nil, auth.ErrCodeMismatch
	}

	accessToken, err := s.jwt.GenerateAccessToken(u.ID, u.Username, string(u.Role))
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	return &auth.TokenResponse{Token: accessToken}, nil
}
