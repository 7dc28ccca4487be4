package genre

import "context"

type Service interface {
	Create(ctx context.Context, req CreateGenreRequest) (*GenreResponse, error)

	List(ctx context.Context, req ListGenresRequest) ([]GenreResponse, int64, error)

	DeleteBySlug(ctx context.Context, slug string) error
}
