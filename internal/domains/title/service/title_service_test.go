package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reviewdb-backend/internal/domains/category"
	"reviewdb-backend/internal/domains/genre"
	"reviewdb-backend/internal/domains/title"
)

// ============================================================
// FAKES
// ============================================================

type storedTitle struct {
	name        string
	year        int
	description *string
	categoryID  *int64
	genreIDs    []int64
}

type fakeTitleRepo struct {
	nextID     int64
	titles     map[int64]*storedTitle
	categories map[int64]title.CategoryInfo
	genres     map[int64]title.GenreInfo
}

func newFakeTitleRepo() *fakeTitleRepo {
	return &fakeTitleRepo{
		nextID:     1,
		titles:     make(map[int64]*storedTitle),
		categories: make(map[int64]title.CategoryInfo),
		genres:     make(map[int64]title.GenreInfo),
	}
}

func (f *fakeTitleRepo) Create(_ context.Context, t *title.Title, categoryID *int64, genreIDs []int64) (int64, error) {
	id := f.nextID
	f.nextID++
	f.titles[id] = &storedTitle{
		name:        t.Name,
		year:        t.Year,
		description: t.Description,
		categoryID:  categoryID,
		genreIDs:    genreIDs,
	}
	return id, nil
}

func (f *fakeTitleRepo) GetByID(_ context.Context, id int64) (*title.Title, error) {
	st, ok := f.titles[id]
	if !ok {
		return nil, title.ErrNotFound
	}

	t := &title.Title{
		ID:          id,
		Name:        st.name,
		Year:        st.year,
		Description: st.description,
	}
	if st.categoryID != nil {
		info := f.categories[*st.categoryID]
		t.Category = &info
	}
	for _, gid := range st.genreIDs {
		t.Genres = append(t.Genres, f.genres[gid])
	}
	return t, nil
}

func (f *fakeTitleRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := f.titles[id]
	return ok, nil
}

func (f *fakeTitleRepo) List(context.Context, title.ListFilter, int, int) ([]title.Title, int64, error) {
	panic("not used")
}

func (f *fakeTitleRepo) Update(_ context.Context, id int64, data title.UpdateData) error {
	st, ok := f.titles[id]
	if !ok {
		return title.ErrNotFound
	}
	st.name = data.Name
	st.year = data.Year
	st.description = data.Description
	st.categoryID = data.CategoryID
	if data.ReplaceGenres {
		st.genreIDs = data.GenreIDs
	}
	return nil
}

func (f *fakeTitleRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.titles[id]; !ok {
		return title.ErrNotFound
	}
	delete(f.titles, id)
	return nil
}

type fakeCategoryRepo struct {
	bySlug map[string]*category.Category
}

func (f *fakeCategoryRepo) Create(context.Context, *category.Category) (*category.Category, error) {
	panic("not used")
}
func (f *fakeCategoryRepo) GetBySlug(_ context.Context, slug string) (*category.Category, error) {
	c, ok := f.bySlug[slug]
	if !ok {
		return nil, category.ErrNotFound
	}
	return c, nil
}
func (f *fakeCategoryRepo) List(context.Context, string, int, int) ([]category.Category, int64, error) {
	panic("not used")
}
func (f *fakeCategoryRepo) DeleteBySlug(context.Context, string) error {
	panic("not used")
}

type fakeGenreRepo struct {
	bySlug map[string]*genre.Genre
}

func (f *fakeGenreRepo) Create(context.Context, *genre.Genre) (*genre.Genre, error) {
	panic("not used")
}
func (f *fakeGenreRepo) GetBySlug(_ context.Context, slug string) (*genre.Genre, error) {
	g, ok := f.bySlug[slug]
	if !ok {
		return nil, genre.ErrNotFound
	}
	return g, nil
}
func (f *fakeGenreRepo) GetBySlugs(_ context.Context, slugs []string) ([]genre.Genre, error) {
	out := make([]genre.Genre, 0, len(slugs))
	for _, slug := range slugs {
		g, ok := f.bySlug[slug]
		if !ok {
			return nil, genre.ErrNotFound
		}
		out = append(out, *g)
	}
	return out, nil
}
func (f *fakeGenreRepo) List(context.Context, string, int, int) ([]genre.Genre, int64, error) {
	panic("not used")
}
func (f *fakeGenreRepo) DeleteBySlug(context.Context, string) error {
	panic("not used")
}

func newTitleService() (title.Service, *fakeTitleRepo) {
	repo := newFakeTitleRepo()
	repo.categories[1] = title.CategoryInfo{Name: "Books", Slug: "books"}
	repo.genres[10] = title.GenreInfo{Name: "Drama", Slug: "drama"}
	repo.genres[11] = title.GenreInfo{Name: "Comedy", Slug: "comedy"}

	cats := &fakeCategoryRepo{bySlug: map[string]*category.Category{
		"books": {ID: 1, Name: "Books", Slug: "books"},
	}}
	genres := &fakeGenreRepo{bySlug: map[string]*genre.Genre{
		"drama":  {ID: 10, Name: "Drama", Slug: "drama"},
		"comedy": {ID: 11, Name: "Comedy", Slug: "comedy"},
	}}

	return NewTitleService(repo, cats, genres), repo
}

// ============================================================
// TESTS
// ============================================================

func TestCreateTitle(t *testing.T) {
	svc, _ := newTitleService()

	resp, err := svc.Create(context.Background(), title.CreateTitleRequest{
		Name:     "The Long Goodbye",
		Year:     1953,
		Category: "books",
		Genre:    []string{"drama", "comedy"},
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Category)
	assert.Equal(t, "books", resp.Category.Slug)
	require.Len(t, resp.Genre, 2)
	assert.Equal(t, "drama", resp.Genre[0].Slug)
	assert.Nil(t, resp.Rating, "a fresh title has no rating")
}

func TestCreateTitleUnknownReferences(t *testing.T) {
	svc, _ := newTitleService()
	ctx := context.Background()

	_, err := svc.Create(ctx, title.CreateTitleRequest{
		Name:     "X",
		Year:     2000,
		Category: "missing",
	})
	assert.ErrorIs(t, err, category.ErrNotFound)

	_, err = svc.Create(ctx, title.CreateTitleRequest{
		Name:     "X",
		Year:     2000,
		Category: "books",
		Genre:    []string{"drama", "missing"},
	})
	assert.ErrorIs(t, err, genre.ErrNotFound)
}

func TestCreateTitleYearValidation(t *testing.T) {
	svc, _ := newTitleService()
	ctx := context.Background()

	_, err := svc.Create(ctx, title.CreateTitleRequest{
		Name:     "From the future",
		Year:     time.Now().Year() + 1,
		Category: "books",
	})
	assert.Error(t, err)

	_, err = svc.Create(ctx, title.CreateTitleRequest{
		Name:     "This year is fine",
		Year:     time.Now().Year(),
		Category: "books",
	})
	assert.NoError(t, err)
}

func TestUpdateTitlePartial(t *testing.T) {
	svc, _ := newTitleService()
	ctx := context.Background()

	created, err := svc.Create(ctx, title.CreateTitleRequest{
		Name:     "Original",
		Year:     1990,
		Category: "books",
		Genre:    []string{"drama"},
	})
	require.NoError(t, err)

	name := "Renamed"
	updated, err := svc.Update(ctx, created.ID, title.UpdateTitleRequest{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, 1990, updated.Year)
	require.NotNil(t, updated.Category, "category carries over")
	assert.Equal(t, "books", updated.Category.Slug)
	require.Len(t, updated.Genre, 1, "nil genre list leaves the set alone")
}

func TestUpdateTitleReplacesGenres(t *testing.T) {
	svc, _ := newTitleService()
	ctx := context.Background()

	created, err := svc.Create(ctx, title.CreateTitleRequest{
		Name:     "Original",
		Year:     1990,
		Category: "books",
		Genre:    []string{"drama"},
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, title.UpdateTitleRequest{
		Genre: []string{"comedy"},
	})
	require.NoError(t, err)
	require.Len(t, updated.Genre, 1)
	assert.Equal(t, "comedy", updated.Genre[0].Slug)

	// An explicit empty list clears the set.
	updated, err = svc.Update(ctx, created.ID, title.UpdateTitleRequest{
		Genre: []string{},
	})
	require.NoError(t, err)
	assert.Empty(t, updated.Genre)
}

func TestUpdateUnknownTitle(t *testing.T) {
	svc, _ := newTitleService()

	name := "x"
	_, err := svc.Update(context.Background(), 99, title.UpdateTitleRequest{Name: &name})
	assert.ErrorIs(t, err, title.ErrNotFound)
}

func TestDeleteTitle(t *testing.T) {
	svc, repo := newTitleService()
	ctx := context.Background()

	created, err := svc.Create(ctx, title.CreateTitleRequest{
		Name:     "Short lived",
		Year:     2001,
		Category: "books",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Empty(t, repo.titles)
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), title.ErrNotFound)
}
