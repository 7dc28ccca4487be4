package title

import "context"

// ListFilter narrows a title listing. Zero values mean "no filter".
type ListFilter struct {
	CategorySlug string
	GenreSlug    string
	Name         string
	Year         int
}

// UpdateData carries resolved column values for a title update. Slugs
// are resolved to ids by the service before reaching the repository.
type UpdateData struct {
	Name        string
	Year        int
	Description *string
	CategoryID  *int64
	// GenreIDs replaces the genre set when ReplaceGenres is true.
	GenreIDs      []int64
	ReplaceGenres bool
}

// ============================================================
// REPOSITORY INTERFACE
// ============================================================

type Repository interface {
	// Create inserts the title and its genre links in one transaction
	// and returns the new id.
	Create(ctx context.Context, t *Title, categoryID *int64, genreIDs []int64) (int64, error)

	// GetByID loads a title with nested category, genres and the
	// freshly computed average rating.
	GetByID(ctx context.Context, id int64) (*Title, error)

	ExistsByID(ctx context.Context, id int64) (bool, error)

	List(ctx context.Context, filter ListFilter, limit, offset int) ([]Title, int64, error)

	Update(ctx context.Context, id int64, data UpdateData) error

	Delete(ctx context.Context, id int64) error
}
