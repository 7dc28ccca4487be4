package review

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ============================================================
// REQUESTS
// ============================================================

type CreateReviewRequest struct {
	Text  string `json:"text"`
	Score int    `json:"score"`
}

func (r CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.Required),
		validation.Field(&r.Score,
			validation.Required,
			validation.Min(1),
			validation.Max(10),
		),
	)
}

type UpdateReviewRequest struct {
	Text  *string `json:"text"`
	Score *int    `json:"score"`
}

func (r UpdateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.Length(1, 0)),
		validation.Field(&r.Score, validation.Min(1), validation.Max(10)),
	)
}

type ListReviewsRequest struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

func (r *ListReviewsRequest) Normalize() {
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

func (r *ListReviewsRequest) Offset() int {
	return (r.Page - 1) * r.Limit
}

// ============================================================
// RESPONSES
// ============================================================

type ReviewResponse struct {
	ID      int64     `json:"id"`
	Text    string    `json:"text"`
	Author  string    `json:"author"`
	Score   int       `json:"score"`
	PubDate time.Time `json:"pub_date"`
}

// Statistics summarizes a title's reviews alongside the listing.
type Statistics struct {
	TotalReviews int64    `json:"total_reviews"`
	AverageScore *float64 `json:"average_score"`
}

type ListReviewsResponse struct {
	Reviews    []ReviewResponse `json:"reviews"`
	Statistics Statistics       `json:"statistics"`
}

func ToResponse(r *Review) ReviewResponse {
	return ReviewResponse{
		ID:      r.ID,
		Text:    r.Text,
		Author:  r.Author,
		Score:   r.Score,
		PubDate: r.PubDate,
	}
}

func ToResponseList(reviews []Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, ToResponse(&reviews[i]))
	}
	return out
}
