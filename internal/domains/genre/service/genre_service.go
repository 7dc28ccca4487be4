package service

import (
	"context"
	"fmt"

	"reviewdb-backend/internal/domains/genre"
	"reviewdb-backend/internal/shared/utils"
)

type genreService struct {
	repo genre.Repository
}

func NewGenreService(repo genre.Repository) genre.Service {
	return &genreService{repo: repo}
}

func (s *genreService) Create(ctx context.Context, req genre.CreateGenreRequest) (*genre.GenreResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.GenerateSlug(req.Name)
	}

	created, err := s.repo.Create(ctx, &genre.Genre{Name: req.Name, Slug: slug})
	if err != nil {
		return nil, fmt.Errorf("create genre: %w", err)
	}

	resp := genre.ToResponse(created)
	return &resp, nil
}

func (s *genreService) List(ctx context.Context, req genre.ListGenresRequest) ([]genre.GenreResponse, int64, error) {
	req.Normalize()

	genres, total, err := s.repo.List(ctx, req.Search, req.Limit, req.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list genres: %w", err)
	}

	return genre.ToResponseList(genres), total, nil
}

func (s *genreService) DeleteBySlug(ctx context.Context, slug string) error {
	if err := s.repo.DeleteBySlug(ctx, slug); err != nil {
		return fmt.Errorf("delete genre %q: %w", slug, err)
	}
	return nil
}
