package database

import (
	"context"
	"fmt"
)

// schema is the idempotent bootstrap DDL executed on startup.
// Ratings are intentionally absent: they are derived from review scores
// at read time and never stored.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id          BIGSERIAL PRIMARY KEY,
    username    VARCHAR(150) NOT NULL UNIQUE,
    email       VARCHAR(254) NOT NULL UNIQUE,
    first_name  VARCHAR(150),
    last_name   VARCHAR(150),
    bio         TEXT,
    role        VARCHAR(20) NOT NULL DEFAULT 'user'
                CHECK (role IN ('user', 'moderator', 'admin')),
    is_superuser BOOLEAN NOT NULL DEFAULT FALSE,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS categories (
    id   BIGSERIAL PRIMARY KEY,
    name VARCHAR(256) NOT NULL UNIQUE,
    slug VARCHAR(50) NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS genres (
    id   BIGSERIAL PRIMARY KEY,
    name VARCHAR(256) NOT NULL UNIQUE,
    slug VARCHAR(50) NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS titles (
    id          BIGSERIAL PRIMARY KEY,
    name        VARCHAR(256) NOT NULL,
    year        INT NOT NULL,
    description TEXT,
    category_id BIGINT REFERENCES categories(id) ON DELETE SET NULL
);

CREATE INDEX IF NOT EXISTS idx_titles_year ON titles (year DESC);
CREATE INDEX IF NOT EXISTS idx_titles_category ON titles (category_id);

CREATE TABLE IF NOT EXISTS title_genres (
    title_id BIGINT NOT NULL REFERENCES titles(id) ON DELETE CASCADE,
    genre_id BIGINT NOT NULL REFERENCES genres(id) ON DELETE CASCADE,
    PRIMARY KEY (title_id, genre_id)
);

CREATE TABLE IF NOT EXISTS reviews (
    id        BIGSERIAL PRIMARY KEY,
    title_id  BIGINT NOT NULL REFERENCES titles(id) ON DELETE CASCADE,
    author_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    text      TEXT NOT NULL,
    score     INT NOT NULL CHECK (score BETWEEN 1 AND 10),
    pub_date  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    CONSTRAINT uq_reviews_title_author UNIQUE (title_id, author_id)
);

CREATE INDEX IF NOT EXISTS idx_reviews_title ON reviews (title_id, pub_date DESC);

CREATE TABLE IF NOT EXISTS comments (
    id        BIGSERIAL PRIMARY KEY,
    review_id BIGINT NOT NULL REFERENCES reviews(id) ON DELETE CASCADE,
    author_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    text      TEXT NOT NULL,
    pub_date  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_comments_review ON comments (review_id, pub_date DESC);
`

// Migrate applies the bootstrap schema. Safe to run on every start.
func (db *PostgresDB) Migrate(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	if _, err := db.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}

	return nil
}
