package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"reviewdb-backend/internal/infrastructure/email"
)

// ConfirmationEmailHandler consumes confirmation-code delivery tasks.
type ConfirmationEmailHandler struct {
	emailService email.EmailService
}

func NewConfirmationEmailHandler(emailService email.EmailService) *ConfirmationEmailHandler {
	return &ConfirmationEmailHandler{
		emailService: emailService,
	}
}

func (h *ConfirmationEmailHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload email.ConfirmationEmailData
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal confirmation email payload")
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	log.Info().
		Str("email", payload.Email).
		Str("username", payload.Username).
		Msg("processing confirmation email")

	if err := h.emailService.SendConfirmationEmail(ctx, payload); err != nil {
		log.Error().Err(err).Str("email", payload.Email).Msg("failed to send confirmation email")
		return fmt.Errorf("send confirmation email: %w", err)
	}

	return nil
}
