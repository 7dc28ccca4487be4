package service

import (
	"context"
	"fmt"

	"reviewdb-backend/internal/domains/category"
	"reviewdb-backend/internal/shared/utils"
)

type categoryService struct {
	repo category.Repository
}

func NewCategoryService(repo category.Repository) category.Service {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, req category.CreateCategoryRequest) (*category.CategoryResponse, error) {
	// Step 1: Validate input
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Derive slug when the client did not supply one
	slug := req.Slug
	if slug == "" {
		slug = utils.GenerateSlug(req.Name)
	}

	// Step 3: Persist; uniqueness is enforced by the database
	created, err := s.repo.Create(ctx, &category.Category{
		Name: req.Name,
		Slug: slug,
	})
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	resp := category.ToResponse(created)
	return &resp, nil
}

func (s *categoryService) List(ctx context.Context, req category.ListCategoriesRequest) ([]category.CategoryResponse, int64, error) {
	req.Normalize()

	cats, total, err := s.repo.List(ctx, req.Search, req.Limit, req.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}

	return category.ToResponseList(cats), total, nil
}

func (s *categoryService) DeleteBySlug(ctx context.Context, slug string) error {
	if err := s.repo.DeleteBySlug(ctx, slug); err != nil {
		return fmt.Errorf("delete category %q: %w", slug, err)
	}
	return nil
}
