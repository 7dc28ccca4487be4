package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"reviewdb-backend/internal/domains/category"
	"reviewdb-backend/pkg/cache"
)

const (
	slugCacheKeyPrefix = "category:slug:"
	slugCacheTTL       = 10 * time.Minute
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) category.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

func (r *postgresRepository) Create(ctx context.Context, c *category.Category) (*category.Category, error) {
	query := `
		INSERT INTO categories (name, slug)
		VALUES ($1, $2)
		RETURNING id`

	err := r.pool.QueryRow(ctx, query, c.Name, c.Slug).Scan(&c.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, category.ErrAlreadyExists
		}
		return nil, fmt.Errorf("insert category: %w", err)
	}

	// a fresh slug may shadow a previously cached miss
	_ = r.cache.Delete(ctx, slugCacheKeyPrefix+c.Slug)

	return c, nil
}

// GetBySlug is the hot path for title writes resolving category slugs,
// so results are cached.
func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*category.Category, error) {
	cacheKey := slugCacheKeyPrefix + slug

	var cached category.Category
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := `SELECT id, name, slug FROM categories WHERE slug = $1`

	var c category.Category
	err := r.pool.QueryRow(ctx, query, slug).Scan(&c.ID, &c.Name, &c.Slug)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, category.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select category by slug: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, c, slugCacheTTL)

	return &c, nil
}

func (r *postgresRepository) List(ctx context.Context, search string, limit, offset int) ([]category.Category, int64, error) {
	countQuery := `SELECT COUNT(*) FROM categories WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')`

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, search).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}

	query := `
		SELECT id, name, slug
		FROM categories
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY name
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, search, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("select categories: %w", err)
	}
	defer rows.Close()

	var cats []category.Category
	for rows.Next() {
		var c category.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, 0, fmt.Errorf("scan category: %w", err)
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate categories: %w", err)
	}

	return cats, total, nil
}

func (r *postgresRepository) DeleteBySlug(ctx context.Context, slug string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return category.ErrNotFound
	}

	_ = r.cache.Delete(ctx, slugCacheKeyPrefix+slug)

	return nil
}
