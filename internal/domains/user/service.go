package user

import (
	"context"

	"reviewdb-backend/internal/shared/access"
)

// ============================================================
// SERVICE INTERFACE
// ============================================================

type Service interface {
	// Admin surface, keyed by username.
	List(ctx context.Context, req ListUsersRequest) ([]UserResponse, int64, error)
	Get(ctx context.Context, username string) (*UserResponse, error)
	Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error)
	Update(ctx context.Context, username string, req UpdateUserRequest) (*UserResponse, error)
	Delete(ctx context.Context, username string) error

	// Self-service surface. UpdateMe silently discards any submitted
	// role; accounts cannot escalate themselves.
	GetMe(ctx context.Context, p access.Principal) (*UserResponse, error)
	UpdateMe(ctx context.Context, p access.Principal, req UpdateUserRequest) (*UserResponse, error)
}
