package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"reviewdb-backend/internal/domains/genre"
	"reviewdb-backend/pkg/cache"
)

const (
	slugCacheKeyPrefix = "genre:slug:"
	slugCacheTTL       = 10 * time.Minute
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) genre.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

func (r *postgresRepository) Create(ctx context.Context, g *genre.Genre) (*genre.Genre, error) {
	query := `
		INSERT INTO genres (name, slug)
		VALUES ($1, $2)
		RETURNING id`

	err := r.pool.QueryRow(ctx, query, g.Name, g.Slug).Scan(&g.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, genre.ErrAlreadyExists
		}
		return nil, fmt.Errorf("insert genre: %w", err)
	}

	_ = r.cache.Delete(ctx, slugCacheKeyPrefix+g.Slug)

	return g, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*genre.Genre, error) {
	cacheKey := slugCacheKeyPrefix + slug

	var cached genre.Genre
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	var g genre.Genre
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, slug FROM genres WHERE slug = $1`, slug,
	).Scan(&g.ID, &g.Name, &g.Slug)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, genre.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select genre by slug: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, g, slugCacheTTL)

	return &g, nil
}

func (r *postgresRepository) GetBySlugs(ctx context.Context, slugs []string) ([]genre.Genre, error) {
	if len(slugs) == 0 {
		return nil, nil
	}

	query := `SELECT id, name, slug FROM genres WHERE slug = ANY($1)`

	rows, err := r.pool.Query(ctx, query, pq.StringArray(slugs))
	if err != nil {
		return nil, fmt.Errorf("select genres by slugs: %w", err)
	}
	defer rows.Close()

	found := make(map[string]genre.Genre, len(slugs))
	for rows.Next() {
		var g genre.Genre
		if err := rows.Scan(&g.ID, &g.Name, &g.Slug); err != nil {
			return nil, fmt.Errorf("scan genre: %w", err)
		}
		found[g.Slug] = g
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate genres: %w", err)
	}

	// preserve input order, fail on the first unknown slug
	out := make([]genre.Genre, 0, len(slugs))
	for _, slug := range slugs {
		g, ok := found[slug]
		if !ok {
			return nil, fmt.Errorf("genre %q: %w", slug, genre.ErrNotFound)
		}
		out = append(out, g)
	}

	return out, nil
}

func (r *postgresRepository) List(ctx context.Context, search string, limit, offset int) ([]genre.Genre, int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM genres WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')`, search,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count genres: %w", err)
	}

	query := `
		SELECT id, name, slug
		FROM genres
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY name
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, search, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("select genres: %w", err)
	}
	defer rows.Close()

	var genres []genre.Genre
	for rows.Next() {
		var g genre.Genre
		if err := rows.Scan(&g.ID, &g.Name, &g.Slug); err != nil {
			return nil, 0, fmt.Errorf("scan genre: %w", err)
		}
		genres = append(genres, g)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate genres: %w", err)
	}

	return genres, total, nil
}

func (r *postgresRepository) DeleteBySlug(ctx context.Context, slug string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM genres WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("delete genre: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return genre.ErrNotFound
	}

	_ = r.cache.Delete(ctx, slugCacheKeyPrefix+slug)

	return nil
}
