package category

import "context"

// ============================================================
// SERVICE INTERFACE
// ============================================================

type Service interface {
	Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error)

	List(ctx context.Context, req ListCategoriesRequest) ([]CategoryResponse, int64, error)

	DeleteBySlug(ctx context.Context, slug string) error
}
