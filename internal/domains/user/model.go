package user

import (
	"strings"
	"time"

	"reviewdb-backend/internal/shared/access"
	"reviewdb-backend/pkg/token"
)

// User is an account on the platform. Role drives authorization; the
// superuser flag exists for operator-created accounts and always implies
// admin regardless of what the role column says.
type User struct {
	ID          int64
	Username    string
	Email       string
	FirstName   *string
	LastName    *string
	Bio         *string
	Role        access.Role
	IsSuperuser bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Normalize applies persistence invariants. Every write path must call
// it before handing the user to the repository.
func (u *User) Normalize() {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	if u.Role == "" {
		u.Role = access.RoleUser
	}
	// superuser outranks whatever the role field claims
	if u.IsSuperuser {
		u.Role = access.RoleAdmin
	}
}

// IsAdmin includes superusers even if the stored role was never coerced.
func (u *User) IsAdmin() bool {
	return u.Role == access.RoleAdmin || u.IsSuperuser
}

// TokenState exposes the fields confirmation codes are bound to.
func (u *User) TokenState() token.UserState {
	return token.UserState{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      string(u.Role),
		UpdatedAt: u.UpdatedAt,
	}
}
