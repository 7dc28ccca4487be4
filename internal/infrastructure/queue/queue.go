// Package queue holds the asynq task definitions shared between the API
// (producer) and the worker (consumer).
package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"reviewdb-backend/internal/infrastructure/email"
)

const (
	// TypeConfirmationEmail delivers a signup confirmation code.
	TypeConfirmationEmail = "email:confirmation"
)

// NewConfirmationEmailTask builds the task for the worker's email handler.
func NewConfirmationEmailTask(data email.ConfirmationEmailData) (*asynq.Task, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal confirmation email payload: %w", err)
	}
	return asynq.NewTask(TypeConfirmationEmail, payload), nil
}

// Enqueuer is what services depend on; kept narrow so tests can fake it.
type Enqueuer interface {
	EnqueueConfirmationEmail(ctx context.Context, data email.ConfirmationEmailData) error
}

// Client wraps the asynq producer.
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr, redisPassword string, redisDB int) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		}),
	}
}

func (c *Client) EnqueueConfirmationEmail(ctx context.Context, data email.ConfirmationEmailData) error {
	task, err := NewConfirmationEmailTask(data)
	if err != nil {
		return err
	}

	_, err = c.client.EnqueueContext(ctx, task,
		asynq.Queue("default"),
		asynq.MaxRetry(3),
	)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", TypeConfirmationEmail, err)
	}

	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
