package domain

import "time"

// Review represents a board game review
type Review struct {
	ReviewID     int64     `json:"review_id" db:"review_id"`
	Title        string    `json:"title" db:"title"`
	ReviewBody   string    `json:"review_body" db:"review_body"`
	Designer     string    `json:"designer" db:"designer"`
	ReviewImgURL string    `json:"review_img_url" db:"review_img_url"`
	Votes        int       `json:"votes" db:"votes"`
	Category     string    `json:"category" db:"category"`
	Owner        string    `json:"owner" db:"owner"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`

	// CommentCount is derived from the comments table, never stored
	CommentCount int `json:"comment_count" db:"comment_count"`
}

// ReviewFilter holds the optional list parameters as received from the client.
// Empty fields mean "use the default".
type ReviewFilter struct {
	Category string
	SortBy   string
	Order    string
}
