package comment

import (
	"context"

	"reviewdb-backend/internal/shared/access"
)

// ============================================================
// SERVICE INTERFACE
// ============================================================

type Service interface {
	// Create attaches a comment to a review. Author and publication
	// date come from the server, never the request.
	Create(ctx context.Context, p access.Principal, titleID, reviewID int64, req CreateCommentRequest) (*CommentResponse, error)

	Get(ctx context.Context, titleID, reviewID, id int64) (*CommentResponse, error)

	List(ctx context.Context, titleID, reviewID int64, req ListCommentsRequest) ([]CommentResponse, int64, error)

	// Update and Delete allow the owner, moderators and admins.
	Update(ctx context.Context, p access.Principal, titleID, reviewID, id int64, req UpdateCommentRequest) (*CommentResponse, error)

	Delete(ctx context.Context, p access.Principal, titleID, reviewID, id int64) error
}
