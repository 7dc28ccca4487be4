package auth

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"reviewdb-backend/internal/domains/user"
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// SignupRequest asks for a confirmation code. No password exists in this
// flow; possession of the mailbox is the credential.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (r SignupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required,
			validation.Length(1, 150),
			validation.Match(usernamePattern),
			user.NotReserved,
		),
		validation.Field(&r.Email,
			validation.Required,
			validation.Length(1, 254),
			// format-only check; is.Email resolves the domain over DNS
			is.EmailFormat,
		),
	)
}

// SignupResponse echoes the accepted identity pair.
type SignupResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type TokenRequest struct {
	Username         string `json:"username"`
	ConfirmationCode string `json:"confirmation_code"`
}

func (r TokenRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.ConfirmationCode, validation.Required),
	)
}

type TokenResponse struct {
	Token string `json:"token"`
}
