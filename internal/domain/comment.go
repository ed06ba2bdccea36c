package domain

import (
	"strings"
	"time"
)

// Comment represents a user comment attached to a review
type Comment struct {
	CommentID int64     `json:"comment_id" db:"comment_id"`
	ReviewID  int64     `json:"review_id" db:"review_id"`
	Author    string    `json:"author" db:"author"`
	Body      string    `json:"body" db:"body"`
	Votes     int       `json:"votes" db:"votes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewComment creates a comment ready for insertion. The store assigns CommentID.
func NewComment(reviewID int64, author, body string) *Comment {
	return &Comment{
		ReviewID:  reviewID,
		Author:    strings.TrimSpace(author),
		Body:      body,
		Votes:     0,
		CreatedAt: time.Now().UTC(),
	}
}
