package review

import (
	"context"

	"reviewdb-backend/internal/shared/access"
)

// ============================================================
// SERVICE INTERFACE
// ============================================================

type Service interface {
	// Create enforces the one-review-per-user-per-title rule. Author
	// and publication date come from the server, never the request.
	Create(ctx context.Context, p access.Principal, titleID int64, req CreateReviewRequest) (*ReviewResponse, error)

	Get(ctx context.Context, titleID, id int64) (*ReviewResponse, error)

	// List returns a page of reviews plus aggregate statistics.
	List(ctx context.Context, titleID int64, req ListReviewsRequest) (*ListReviewsResponse, int64, error)

	// Update and Delete allow the owner, moderators and admins.
	Update(ctx context.Context, p access.Principal, titleID, id int64, req UpdateReviewRequest) (*ReviewResponse, error)

	Delete(ctx context.Context, p access.Principal, titleID, id int64) error
}
