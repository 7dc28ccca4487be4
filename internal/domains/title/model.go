package title

// Title is a reviewable work (a book, film, record). It never stores a
// rating; that is derived from review scores at read time.
type Title struct {
	ID          int64
	Name        string
	Year        int
	Description *string
	Category    *CategoryInfo
	Genres      []GenreInfo
	// Rating is the average review score, nil when unreviewed.
	Rating *float64
}

type CategoryInfo struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type GenreInfo struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}
