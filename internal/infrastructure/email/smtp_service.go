package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strconv"

	"reviewdb-backend/pkg/logger"
)

// ConfirmationEmailData carries everything needed to deliver a
// signup confirmation code.
type ConfirmationEmailData struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Code     string `json:"code"`
}

type EmailService interface {
	SendConfirmationEmail(ctx context.Context, data ConfirmationEmailData) error
}

type smtpEmailService struct {
	smtpAddr string
	auth     smtp.Auth
	from     string
}

// NewSMTPEmailService targets any SMTP endpoint; in development that is
// usually a local mailcatcher, so empty credentials skip auth entirely.
func NewSMTPEmailService(host string, port int, username, password, from string) EmailService {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	return &smtpEmailService{
		smtpAddr: host + ":" + strconv.Itoa(port),
		auth:     auth,
		from:     from,
	}
}

func (s *smtpEmailService) SendConfirmationEmail(ctx context.Context, data ConfirmationEmailData) error {
	subject := "Your confirmation code"
	body := fmt.Sprintf(`Hi %s,

Use this confirmation code to obtain your access token:

    %s

If you did not request it, ignore this email.`, data.Username, data.Code)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.from, data.Email, subject, body))

	if err := smtp.SendMail(s.smtpAddr, s.auth, s.from, []string{data.Email}, msg); err != nil {
		logger.Error("failed to send confirmation email", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
