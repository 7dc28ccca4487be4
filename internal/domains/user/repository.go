package user

import "context"

// ============================================================
// REPOSITORY INTERFACE
// ============================================================

type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)

	GetByID(ctx context.Context, id int64) (*User, error)

	GetByUsername(ctx context.Context, username string) (*User, error)

	GetByEmail(ctx context.Context, email string) (*User, error)

	// List searches by substring on username, case-insensitively.
	List(ctx context.Context, search string, limit, offset int) ([]User, int64, error)

	// Update persists every mutable column and refreshes updated_at.
	Update(ctx context.Context, user *User) (*User, error)

	DeleteByUsername(ctx context.Context, username string) error
}
