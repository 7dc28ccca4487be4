package user

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"reviewdb-backend/internal/shared/access"
)

// usernamePattern matches letters, digits and @/./+/-/_ only.
var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// NotReserved rejects usernames that collide with API routes.
// "me" is the profile endpoint and can never be an account name.
var NotReserved = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if s == "me" {
		return validation.NewError("validation_reserved", "this username is reserved")
	}
	return nil
})

var validRoles = []interface{}{
	string(access.RoleUser),
	string(access.RoleModerator),
	string(access.RoleAdmin),
}

// ============================================================
// REQUESTS
// ============================================================

type CreateUserRequest struct {
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Bio       *string `json:"bio"`
	Role      string  `json:"role"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required,
			validation.Length(1, 150),
			validation.Match(usernamePattern),
			NotReserved,
		),
		validation.Field(&r.Email,
			validation.Required,
			validation.Length(1, 254),
			// format-only check; is.Email resolves the domain over DNS
			is.EmailFormat,
		),
		validation.Field(&r.FirstName, validation.Length(0, 150)),
		validation.Field(&r.LastName, validation.Length(0, 150)),
		validation.Field(&r.Role, validation.In(validRoles...)),
	)
}

// UpdateUserRequest is a partial update; nil fields stay untouched.
// Role is only honoured on the admin path, never on /users/me.
type UpdateUserRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Bio       *string `json:"bio"`
	Role      *string `json:"role"`
}

func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Length(1, 254), is.EmailFormat),
		validation.Field(&r.FirstName, validation.Length(0, 150)),
		validation.Field(&r.LastName, validation.Length(0, 150)),
		validation.Field(&r.Role, validation.In(validRoles...)),
	)
}

type ListUsersRequest struct {
	Search string `form:"search"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

func (r *ListUsersRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = 10
	}
	if r.Limit > 100 {
		r.Limit = 100
	}
}

func (r *ListUsersRequest) Offset() int {
	return (r.Page - 1) * r.Limit
}

// ============================================================
// RESPONSES
// ============================================================

type UserResponse struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
	Role      string `json:"role"`
}

func ToResponse(u *User) UserResponse {
	return UserResponse{
		Username:  u.Username,
		Email:     u.Email,
		FirstName: deref(u.FirstName),
		LastName:  deref(u.LastName),
		Bio:       deref(u.Bio),
		Role:      string(u.Role),
	}
}

func ToResponseList(users []User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, ToResponse(&users[i]))
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
