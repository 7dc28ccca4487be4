package service

import (
	"context"
	"fmt"

	"reviewdb-backend/internal/domains/review"
	"reviewdb-backend/internal/domains/title"
	"reviewdb-backend/internal/shared/access"
)

type reviewService struct {
	repo   review.Repository
	titles title.Repository
}

func NewReviewService(repo review.Repository, titles title.Repository) review.Service {
	return &reviewService{repo: repo, titles: titles}
}

func (s *reviewService) Create(ctx context.Context, p access.Principal, titleID int64, req review.CreateReviewRequest) (*review.ReviewResponse, error) {
	// Step 1: Validate input (score bounds included)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 2: The title must exist
	if err := s.requireTitle(ctx, titleID); err != nil {
		return nil, err
	}

	// Step 3: One review per user per title. This pre-check gives the
	// friendly error; the DB constraint catches the race.
	exists, err := s.repo.ExistsByTitleAndAuthor(ctx, titleID, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if exists {
		return nil, review.ErrAlreadyReviewed
	}

	// Step 4: Persist with server-assigned author and pub_date
	created, err := s.repo.Create(ctx, &review.Review{
		TitleID:  titleID,
		AuthorID: p.UserID,
		Text:     req.Text,
		Score:    req.Score,
	})
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	created.Author = p.Username
	resp := review.ToResponse(created)
	return &resp, nil
}

func (s *reviewService) Get(ctx context.Context, titleID, id int64) (*review.ReviewResponse, error) {
	if err := s.requireTitle(ctx, titleID); err != nil {
		return nil, err
	}

	rv, err := s.repo.GetByID(ctx, titleID, id)
	if err != nil {
		return nil, fmt.Errorf("get review %d: %w", id, err)
	}

	resp := review.ToResponse(rv)
	return &resp, nil
}

func (s *reviewService) List(ctx context.Context, titleID int64, req review.ListReviewsRequest) (*review.ListReviewsResponse, int64, error) {
	req.Normalize()

	if err := s.requireTitle(ctx, titleID); err != nil {
		return nil, 0, err
	}

	reviews, total, err := s.repo.ListByTitle(ctx, titleID, req.Limit, req.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list reviews: %w", err)
	}

	// Statistics cover the whole title, not just this page.
	scores, err := s.repo.ScoresByTitle(ctx, titleID)
	if err != nil {
		return nil, 0, fmt.Errorf("load scores: %w", err)
	}

	return &review.ListReviewsResponse{
		Reviews: review.ToResponseList(reviews),
		Statistics: review.Statistics{
			TotalReviews: total,
			AverageScore: review.MeanScore(scores),
		},
	}, total, nil
}

func (s *reviewService) Update(ctx context.Context, p access.Principal, titleID, id int64, req review.UpdateReviewRequest) (*review.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rv, err := s.repo.GetByID(ctx, titleID, id)
	if err != nil {
		return nil, fmt.Errorf("get review %d: %w", id, err)
	}

	if err := access.Authorize(p, access.ActionUpdate, access.ResourceReview, rv.AuthorID); err != nil {
		return nil, err
	}

	// No duplicate check here: editing the existing review is exactly
	// how an author revises their score.
	if req.Text != nil {
		rv.Text = *req.Text
	}
	if req.Score != nil {
		rv.Score = *req.Score
	}

	if err := s.repo.Update(ctx, rv); err != nil {
		return nil, fmt.Errorf("update review %d: %w", id, err)
	}

	resp := review.ToResponse(rv)
	return &resp, nil
}

func (s *reviewService) Delete(ctx context.Context, p access.Principal, titleID, id int64) error {
	rv, err := s.repo.GetByID(ctx, titleID, id)
	if err != nil {
		return fmt.Errorf("get review %d: %w", id, err)
	}

	if err := access.Authorize(p, access.ActionDelete, access.ResourceReview, rv.AuthorID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, titleID, id); err != nil {
		return fmt.Errorf("delete review %d: %w", id, err)
	}

	return nil
}

func (s *reviewService) requireTitle(ctx context.Context, titleID int64) error {
	exists, err := s.titles.ExistsByID(ctx, titleID)
	if err != nil {
		return fmt.Errorf("check title: %w", err)
	}
	if !exists {
		return title.ErrNotFound
	}
	return nil
}
