package category

import "context"

// ============================================================
// REPOSITORY INTERFACE
// ============================================================

type Repository interface {
	Create(ctx context.Context, category *Category) (*Category, error)

	GetBySlug(ctx context.Context, slug string) (*Category, error)

	// List returns a page of categories plus the total match count.
	// search filters by substring on name, case-insensitively.
	List(ctx context.Context, search string, limit, offset int) ([]Category, int64, error)

	DeleteBySlug(ctx context.Context, slug string) error
}
