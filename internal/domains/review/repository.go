package review

import "context"

// ============================================================
// REPOSITORY INTERFACE
// ============================================================

type Repository interface {
	// Create inserts the review. The UNIQUE(title_id, author_id)
	// constraint is the race-proof duplicate guard; a violation comes
	// back as ErrAlreadyReviewed.
	Create(ctx context.Context, r *Review) (*Review, error)

	// GetByID scopes the lookup to the title so review ids cannot be
	// addressed through the wrong title's URL.
	GetByID(ctx context.Context, titleID, id int64) (*Review, error)

	ListByTitle(ctx context.Context, titleID int64, limit, offset int) ([]Review, int64, error)

	// ScoresByTitle feeds the statistics aggregation.
	ScoresByTitle(ctx context.Context, titleID int64) ([]int, error)

	ExistsByTitleAndAuthor(ctx context.Context, titleID, authorID int64) (bool, error)

	Update(ctx context.Context, r *Review) error

	Delete(ctx context.Context, titleID, id int64) error
}
