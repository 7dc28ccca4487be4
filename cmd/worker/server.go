package main

import (
	"context"

	"github.com/hibiken/asynq"

	"reviewdb-backend/internal/config"
	"reviewdb-backend/pkg/logger"
)

// newWorkerServer configures the asynq consumer. Shutdown waits for
// in-flight tasks, so a confirmation email picked up before SIGTERM
// still goes out.
func newWorkerServer(cfg *config.Config) *asynq.Server {
	return asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Host,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 10,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Warn("task failed", map[string]interface{}{
					"type":  task.Type(),
					"error": err.Error(),
				})
			}),
		},
	)
}
