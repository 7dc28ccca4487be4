package genre

// Genre tags a title; titles carry any number of genres.
type Genre struct {
	ID   int64  `json:"-"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
