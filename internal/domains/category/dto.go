package category

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// ============================================================
// REQUESTS
// ============================================================

type CreateCategoryRequest struct {
	Name string `json:"name"`
	// Slug is optional; generated from the name when omitted.
	Slug string `json:"slug"`
}

func (r CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required,
			validation.Length(1, 256),
		),
		validation.Field(&r.Slug,
			validation.Length(1, 50),
			validation.Match(slugPattern),
		),
	)
}

type ListCategoriesRequest struct {
	Search string `form:"search"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

// Normalize applies pagination defaults and bounds.
func (r *ListCategoriesRequest) Normalize() {
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

func (r *ListCategoriesRequest) Offset() int {
	return (r.Page - 1) * r.Limit
}

// ============================================================
// RESPONSES
// ============================================================

type CategoryResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func ToResponse(c *Category) CategoryResponse {
	return CategoryResponse{Name: c.Name, Slug: c.Slug}
}

func ToResponseList(cats []Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cats))
	for i := range cats {
		out = append(out, ToResponse(&cats[i]))
	}
	return out
}
