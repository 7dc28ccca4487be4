package comment

import "context"

// ============================================================
// REPOSITORY INTERFACE
// ============================================================

type Repository interface {
	Create(ctx context.Context, c *Comment) (*Comment, error)

	// GetByID scopes the lookup to the review so comment ids cannot be
	// addressed through the wrong review's URL.
	GetByID(ctx context.Context, reviewID, id int64) (*Comment, error)

	ListByReview(ctx context.Context, reviewID int64, limit, offset int) ([]Comment, int64, error)

	Update(ctx context.Context, c *Comment) error

	Delete(ctx context.Context, reviewID, id int64) error
}
