package service

import (
	"context"
	"fmt"

	"reviewdb-backend/internal/domains/comment"
	"reviewdb-backend/internal/domains/review"
	"reviewdb-backend/internal/shared/access"
)

type commentService struct {
	repo    comment.Repository
	reviews review.Repository
}

func NewCommentService(repo comment.Repository, reviews review.Repository) comment.Service {
	return &commentService{repo: repo, reviews: reviews}
}

func (s *commentService) Create(ctx context.Context, p access.Principal, titleID, reviewID int64, req comment.CreateCommentRequest) (*comment.CommentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.requireReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &comment.Comment{
		ReviewID: reviewID,
		AuthorID: p.UserID,
		Text:     req.Text,
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	created.Author = p.Username
	resp := comment.ToResponse(created)
	return &resp, nil
}

func (s *commentService) Get(ctx context.Context, titleID, reviewID, id int64) (*comment.CommentResponse, error) {
	if err := s.requireReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	cm, err := s.repo.GetByID(ctx, reviewID, id)
	if err != nil {
		return nil, fmt.Errorf("get comment %d: %w", id, err)
	}

	resp := comment.ToResponse(cm)
	return &resp, nil
}

func (s *commentService) List(ctx context.Context, titleID, reviewID int64, req comment.ListCommentsRequest) ([]comment.CommentResponse, int64, error) {
	req.Normalize()

	if err := s.requireReview(ctx, titleID, reviewID); err != nil {
		return nil, 0, err
	}

	comments, total, err := s.repo.ListByReview(ctx, reviewID, req.Limit, req.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list comments: %w", err)
	}

	return comment.ToResponseList(comments), total, nil
}

func (s *commentService) Update(ctx context.Context, p access.Principal, titleID, reviewID, id int64, req comment.UpdateCommentRequest) (*comment.CommentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.requireReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	cm, err := s.repo.GetByID(ctx, reviewID, id)
	if err != nil {
		return nil, fmt.Errorf("get comment %d: %w", id, err)
	}

	if err := access.Authorize(p, access.ActionUpdate, access.ResourceComment, cm.AuthorID); err != nil {
		return nil, err
	}

	if req.Text != nil {
		cm.Text = *req.Text
	}

	if err := s.repo.Update(ctx, cm); err != nil {
		return nil, fmt.Errorf("update comment %d: %w", id, err)
	}

	resp := comment.ToResponse(cm)
	return &resp, nil
}

func (s *commentService) Delete(ctx context.Context, p access.Principal, titleID, reviewID, id int64) error {
	if err := s.requireReview(ctx, titleID, reviewID); err != nil {
		return err
	}

	cm, err := s.repo.GetByID(ctx, reviewID, id)
	if err != nil {
		return fmt.Errorf("get comment %d: %w", id, err)
	}

	if err := access.Authorize(p, access.ActionDelete, access.ResourceComment, cm.AuthorID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, reviewID, id); err != nil {
		return fmt.Errorf("delete comment %d: %w", id, err)
	}

	return nil
}

// requireReview verifies the review exists under the given title, so a
// comment URL with a mismatched title and review pair is a 404.
func (s *commentService) requireReview(ctx context.Context, titleID, reviewID int64) error {
	if _, err := s.reviews.GetByID(ctx, titleID, reviewID); err != nil {
		return fmt.Errorf("check review: %w", err)
	}
	return nil
}
