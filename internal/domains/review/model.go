package review

import "time"

// Review is one user's verdict on a title: free text plus a 1..10 score.
// A user gets exactly one review per title.
type Review struct {
	ID       int64
	TitleID  int64
	AuthorID int64
	// Author is the username, joined in at read time.
	Author  string
	Text    string
	Score   int
	PubDate time.Time
}
