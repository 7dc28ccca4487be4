package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"reviewdb-backend/internal/config"
	"reviewdb-backend/internal/infrastructure/email"
	emailjob "reviewdb-backend/internal/infrastructure/email/job"
	"reviewdb-backend/internal/infrastructure/queue"
	"reviewdb-backend/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using system environment variables", nil)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", err)
		os.Exit(1)
	}
	logger.Init(cfg.App.Environment)

	emailSvc := email.NewSMTPEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
	)

	mux := asynq.NewServeMux()
	mux.Handle(queue.TypeConfirmationEmail, emailjob.NewConfirmationEmailHandler(emailSvc))

	srv := newWorkerServer(cfg)

	go func() {
		logger.Info("worker starting", map[string]interface{}{
			"redis": cfg.Redis.Host,
		})
		if err := srv.Run(mux); err != nil {
			logger.Error("worker failed", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down", nil)
	srv.Shutdown()
	logger.Info("worker stopped", nil)
}
