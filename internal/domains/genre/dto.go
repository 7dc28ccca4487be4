package genre

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

type CreateGenreRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (r CreateGenreRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 256)),
		validation.Field(&r.Slug, validation.Length(1, 50), validation.Match(slugPattern)),
	)
}

type ListGenresRequest struct {
	Search string `form:"search"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

func (r *ListGenresRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = 10
	}
	if r.Limit > 100 {
		r.Limit = 100
	}
}

func (r *ListGenresRequest) Offset() int {
	return (r.Page - 1) * r.Limit
}

type GenreResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func ToResponse(g *Genre) GenreResponse {
	return GenreResponse{Name: g.Name, Slug: g.Slug}
}

func ToResponseList(genres []Genre) []GenreResponse {
	out := make([]GenreResponse, 0, len(genres))
	for i := range genres {
		out = append(out, ToResponse(&genres[i]))
	}
	return out
}
