package title

import "context"

// ============================================================
// SERVICE INTERFACE
// ============================================================

type Service interface {
	Create(ctx context.Context, req CreateTitleRequest) (*TitleResponse, error)

	Get(ctx context.Context, id int64) (*TitleResponse, error)

	List(ctx context.Context, req ListTitlesRequest) ([]TitleResponse, int64, error)

	Update(ctx context.Context, id int64, req UpdateTitleRequest) (*TitleResponse, error)

	Delete(ctx context.Context, id int64) error
}
