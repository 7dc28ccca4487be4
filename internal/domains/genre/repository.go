package genre

import "context"

type Repository interface {
	Create(ctx context.Context, genre *Genre) (*Genre, error)

	GetBySlug(ctx context.Context, slug string) (*Genre, error)

	// GetBySlugs resolves several slugs at once, preserving input order.
	// A single unknown slug fails the whole lookup with ErrNotFound.
	GetBySlugs(ctx context.Context, slugs []string) ([]Genre, error)

	List(ctx context.Context, search string, limit, offset int) ([]Genre, int64, error)

	DeleteBySlug(ctx context.Context, slug string) error
}
