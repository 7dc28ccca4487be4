package title

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ============================================================
// REQUESTS
// ============================================================

type CreateTitleRequest struct {
	Name        string   `json:"name"`
	Year        int      `json:"year"`
	Description *string  `json:"description"`
	Category    string   `json:"category"`
	Genre       []string `json:"genre"`
}

func (r CreateTitleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required,
			validation.Length(1, 256),
		),
		validation.Field(&r.Year,
			validation.Required,
			validation.Min(1),
			validation.Max(time.Now().Year()).Error("year cannot be in the future"),
		),
		validation.Field(&r.Category, validation.Required),
		validation.Field(&r.Genre, validation.Each(validation.Required, validation.Length(1, 50))),
	)
}

// UpdateTitleRequest is a partial update. A nil Genre leaves the set
// alone; an empty non-nil slice clears it.
type UpdateTitleRequest struct {
	Name        *string  `json:"name"`
	Year        *int     `json:"year"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Genre       []string `json:"genre"`
}

func (r UpdateTitleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Length(1, 256)),
		validation.Field(&r.Year,
			validation.Min(1),
			validation.Max(time.Now().Year()).Error("year cannot be in the future"),
		),
		validation.Field(&r.Genre, validation.Each(validation.Required, validation.Length(1, 50))),
	)
}

type ListTitlesRequest struct {
	Category string `form:"category"`
	Genre    string `form:"genre"`
	Name     string `form:"name"`
	Year     int    `form:"year"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

func (r *ListTitlesRequest) Normalize() {
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

func (r *ListTitlesRequest) Offset() int {
	return (r.Page - 1) * r.Limit
}

// ============================================================
// RESPONSES
// ============================================================

type TitleResponse struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Year        int           `json:"year"`
	Rating      *float64      `json:"rating"`
	Description string        `json:"description"`
	Genre       []GenreInfo   `json:"genre"`
	Category    *CategoryInfo `json:"category"`
}

func ToResponse(t *Title) TitleResponse {
	desc := ""
	if t.Description != nil {
		desc = *t.Description
	}

	genres := t.Genres
	if genres == nil {
		genres = []GenreInfo{}
	}

	return TitleResponse{
		ID:          t.ID,
		Name:        t.Name,
		Year:        t.Year,
		Rating:      t.Rating,
		Description: desc,
		Genre:       genres,
		Category:    t.Category,
	}
}

func ToResponseList(titles []Title) []TitleResponse {
	out := make([]TitleResponse, 0, len(titles))
	for i := range titles {
		out = append(out, ToResponse(&titles[i]))
	}
	return out
}
