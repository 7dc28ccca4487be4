package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// DBConfig centralizes every parameter needed to reach PostgreSQL
// instead of passing them around individually.
type DBConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	DBName   string
	SSLMode  string

	// Connection pool tuning
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration

	// Retry behaviour on startup
	MaxRetries     int
	RetryDelay     time.Duration
	ConnectTimeout time.Duration
}

// PostgresDB wraps the pgx connection pool and its lifecycle.
type PostgresDB struct {
	Pool   *pgxpool.Pool
	Config *DBConfig
}

// NewPostgresDB returns an unconnected instance; call Connect before use.
func NewPostgresDB(config *DBConfig) *PostgresDB {
	return &PostgresDB{Config: config}
}

func (db *PostgresDB) buildConnectionString() string {
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		db.Config.Username,
		db.Config.Password,
		db.Config.Host,
		db.Config.Port,
		db.Config.DBName,
		db.Config.SSLMode,
	)
}

func (db *PostgresDB) configurePool() (*pgxpool.Config, error) {
	config, err := pgxpool.ParseConfig(db.buildConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	config.MaxConns = db.Config.MaxConns
	config.MinConns = db.Config.MinConns
	config.MaxConnLifetime = db.Config.MaxConnLifetime
	config.MaxConnIdleTime = db.Config.MaxConnIdleTime
	config.HealthCheckPeriod = db.Config.HealthCheckPeriod
	config.ConnConfig.ConnectTimeout = db.Config.ConnectTimeout

	return config, nil
}

// connectWithRetry retries with exponential backoff so a database that is
// still starting up does not kill the service.
func (db *PostgresDB) connectWithRetry(ctx context.Context, config *pgxpool.Config) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var lastErr error

	for attempt := 1; attempt <= db.Config.MaxRetries; attempt++ {
		log.Info().Int("attempt", attempt).Int("max", db.Config.MaxRetries).Msg("database connection attempt")

		connectCtx, cancel := context.WithTimeout(ctx, db.Config.ConnectTimeout)
		pool, lastErr = pgxpool.NewWithConfig(connectCtx, config)
		cancel()

		if lastErr == nil {
			if err := pool.Ping(ctx); err != nil {
				pool.Close()
				lastErr = err
			} else {
				log.Info().Int("attempt", attempt).Msg("database connected")
				return pool, nil
			}
		}

		log.Warn().Err(lastErr).Int("attempt", attempt).Msg("database connection failed")

		if attempt < db.Config.MaxRetries {
			// delay = base * 2^(attempt-1)
			delay := db.Config.RetryDelay * time.Duration(1<<uint(attempt-1))

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, fmt.Errorf("connection cancelled: %w", ctx.Err())
			}
		}
	}

	return nil, fmt.Errorf("failed to connect after %d attempts: %w",
		db.Config.MaxRetries, lastErr)
}

// Connect establishes the pool: configure, retry, verify.
func (db *PostgresDB) Connect(ctx context.Context) error {
	config, err := db.configurePool()
	if err != nil {
		return fmt.Errorf("pool configuration failed: %w", err)
	}

	pool, err := db.connectWithRetry(ctx, config)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}

	db.Pool = pool
	return nil
}

// HealthCheck verifies connectivity; called by the health endpoint.
func (db *PostgresDB) HealthCheck(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Pool.Ping(healthCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	if db.Pool.Stat().TotalConns() == 0 {
		return fmt.Errorf("no active database connections")
	}

	return nil
}

// Close releases the pool.
func (db *PostgresDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}
