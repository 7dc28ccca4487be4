package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reviewdb-backend/internal/domains/category"
)

type fakeRepo struct {
	nextID     int64
	categories map[string]*category.Category
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1, categories: make(map[string]*category.Category)}
}

func (f *fakeRepo) Create(_ context.Context, c *category.Category) (*category.Category, error) {
	if _, ok := f.categories[c.Slug]; ok {
		return nil, category.ErrAlreadyExists
	}
	c.ID = f.nextID
	f.nextID++
	cp := *c
	f.categories[c.Slug] = &cp
	return c, nil
}

func (f *fakeRepo) GetBySlug(_ context.Context, slug string) (*category.Category, error) {
	c, ok := f.categories[slug]
	if !ok {
		return nil, category.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeRepo) List(_ context.Context, _ string, _, _ int) ([]category.Category, int64, error) {
	var out []category.Category
	for _, c := range f.categories {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepo) DeleteBySlug(_ context.Context, slug string) error {
	if _, ok := f.categories[slug]; !ok {
		return category.ErrNotFound
	}
	delete(f.categories, slug)
	return nil
}

func TestCreateCategoryDerivesSlug(t *testing.T) {
	svc := NewCategoryService(newFakeRepo())

	resp, err := svc.Create(context.Background(), category.CreateCategoryRequest{
		Name: "Science Fiction",
	})
	require.NoError(t, err)
	assert.Equal(t, "science-fiction", resp.Slug)
}

func TestCreateCategoryKeepsExplicitSlug(t *testing.T) {
	svc := NewCategoryService(newFakeRepo())

	resp, err := svc.Create(context.Background(), category.CreateCategoryRequest{
		Name: "Science Fiction",
		Slug: "sci-fi",
	})
	require.NoError(t, err)
	assert.Equal(t, "sci-fi", resp.Slug)
}

func TestCreateCategoryValidation(t *testing.T) {
	svc := NewCategoryService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, category.CreateCategoryRequest{Name: ""})
	assert.Error(t, err)

	_, err = svc.Create(ctx, category.CreateCategoryRequest{Name: "Books", Slug: "no spaces"})
	assert.Error(t, err)
}

func TestCreateCategoryDuplicateSlug(t *testing.T) {
	svc := NewCategoryService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, category.CreateCategoryRequest{Name: "Books"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, category.CreateCategoryRequest{Name: "Books"})
	assert.ErrorIs(t, err, category.ErrAlreadyExists)
}

func TestDeleteCategory(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCategoryService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, category.CreateCategoryRequest{Name: "Books"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBySlug(ctx, "books"))
	assert.ErrorIs(t, svc.DeleteBySlug(ctx, "books"), category.ErrNotFound)
}
