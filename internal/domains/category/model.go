package category

// Category classifies a title ("Books", "Films", "Music"). A title
// belongs to at most one category.
type Category struct {
	ID   int64  `json:"-"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
