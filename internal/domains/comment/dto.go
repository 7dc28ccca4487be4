package comment

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ============================================================
// REQUESTS
// ============================================================

type CreateCommentRequest struct {
	Text string `json:"text"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.Required),
	)
}

type UpdateCommentRequest struct {
	Text *string `json:"text"`
}

func (r UpdateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.Length(1, 0)),
	)
}

type ListCommentsRequest struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

func (r *ListCommentsRequest) Normalize() {
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

func (r *ListCommentsRequest) Offset() int {
	return (r.Page - 1) * r.Limit
}

// ============================================================
// RESPONSES
// ============================================================

type CommentResponse struct {
	ID      int64     `json:"id"`
	Text    string    `json:"text"`
	Author  string    `json:"author"`
	PubDate time.Time `json:"pub_date"`
}

func ToResponse(c *Comment) CommentResponse {
	return CommentResponse{
		ID:      c.ID,
		Text:    c.Text,
		Author:  c.Author,
		PubDate: c.PubDate,
	}
}

func ToResponseList(comments []Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, ToResponse(&comments[i]))
	}
	return out
}
