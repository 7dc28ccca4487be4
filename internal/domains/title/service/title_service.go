package service

import (
	"context"
	"fmt"

	"reviewdb-backend/internal/domains/category"
	"reviewdb-backend/internal/domains/genre"
	"reviewdb-backend/internal/domains/title"
)

type titleService struct {
	repo       title.Repository
	categories category.Repository
	genres     genre.Repository
}

func NewTitleService(
	repo title.Repository,
	categories category.Repository,
	genres genre.Repository,
) title.Service {
	return &titleService{
		repo:       repo,
		categories: categories,
		genres:     genres,
	}
}

func (s *titleService) Create(ctx context.Context, req title.CreateTitleRequest) (*title.TitleResponse, error) {
	// Step 1: Validate input (name, year bounds, slug shapes)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Resolve referenced slugs. An unknown slug is a client
	// error on this path, not a missing resource.
	cat, err := s.categories.GetBySlug(ctx, req.Category)
	if err != nil {
		return nil, fmt.Errorf("resolve category: %w", err)
	}

	genreIDs, err := s.resolveGenres(ctx, req.Genre)
	if err != nil {
		return nil, err
	}

	// Step 3: Persist title and genre links
	t := &title.Title{
		Name:        req.Name,
		Year:        req.Year,
		Description: req.Description,
	}

	id, err := s.repo.Create(ctx, t, &cat.ID, genreIDs)
	if err != nil {
		return nil, fmt.Errorf("create title: %w", err)
	}

	// Step 4: Re-read for the nested representation
	return s.Get(ctx, id)
}

func (s *titleService) Get(ctx context.Context, id int64) (*title.TitleResponse, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get title %d: %w", id, err)
	}

	resp := title.ToResponse(t)
	return &resp, nil
}

func (s *titleService) List(ctx context.Context, req title.ListTitlesRequest) ([]title.TitleResponse, int64, error) {
	req.Normalize()

	filter := title.ListFilter{
		CategorySlug: req.Category,
		GenreSlug:    req.Genre,
		Name:         req.Name,
		Year:         req.Year,
	}

	titles, total, err := s.repo.List(ctx, filter, req.Limit, req.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list titles: %w", err)
	}

	return title.ToResponseList(titles), total, nil
}

func (s *titleService) Update(ctx context.Context, id int64, req title.UpdateTitleRequest) (*title.TitleResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Load the current row so unspecified fields carry over.
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get title %d: %w", id, err)
	}

	data := title.UpdateData{
		Name:        existing.Name,
		Year:        existing.Year,
		Description: existing.Description,
	}
	if existing.Category != nil {
		cat, err := s.categories.GetBySlug(ctx, existing.Category.Slug)
		if err != nil {
			return nil, fmt.Errorf("resolve current category: %w", err)
		}
		data.CategoryID = &cat.ID
	}

	if req.Name != nil {
		data.Name = *req.Name
	}
	if req.Year != nil {
		data.Year = *req.Year
	}
	if req.Description != nil {
		data.Description = req.Description
	}
	if req.Category != nil {
		cat, err := s.categories.GetBySlug(ctx, *req.Category)
		if err != nil {
			return nil, fmt.Errorf("resolve category: %w", err)
		}
		data.CategoryID = &cat.ID
	}
	if req.Genre != nil {
		genreIDs, err := s.resolveGenres(ctx, req.Genre)
		if err != nil {
			return nil, err
		}
		data.GenreIDs = genreIDs
		data.ReplaceGenres = true
	}

	if err := s.repo.Update(ctx, id, data); err != nil {
		return nil, fmt.Errorf("update title %d: %w", id, err)
	}

	return s.Get(ctx, id)
}

func (s *titleService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete title %d: %w", id, err)
	}
	return nil
}

func (s *titleService) resolveGenres(ctx context.Context, slugs []string) ([]int64, error) {
	genres, err := s.genres.GetBySlugs(ctx, slugs)
	if err != nil {
		return nil, fmt.Errorf("resolve genres: %w", err)
	}

	ids := make([]int64, 0, len(genres))
	for _, g := range genres {
		ids = append(ids, g.ID)
	}
	return ids, nil
}
