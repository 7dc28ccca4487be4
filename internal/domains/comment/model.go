package comment

import "time"

// Comment is a reply to a review.
type Comment struct {
	ID       int64
	ReviewID int64
	AuthorID int64
	// Author is the username, joined in at read time.
	Author  string
	Text    string
	PubDate time.Time
}
