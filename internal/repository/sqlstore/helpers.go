package sqlstore

import (
	"database/sql/driver"
	"fmt"
	"time"

	"gamereviews/internal/domain"
)

// ============================================================================
// Time Conversion Helpers
// ============================================================================

// timeLayouts are the textual timestamp forms SQLite may hand back, depending
// on whether the value was written by the driver or by CURRENT_TIMESTAMP.
var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999 -0700 MST",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// dbTime scans timestamps from either driver: postgres returns time.Time,
// sqlite may return text when the column type is not visible to the driver.
type dbTime struct {
	time.Time
}

// Scan implements sql.Scanner
func (t *dbTime) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case time.Time:
		t.Time = v.UTC()
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into timestamp", src)
	}
}

// Value implements driver.Valuer
func (t dbTime) Value() (driver.Value, error) {
	return t.Time.UTC(), nil
}

func (t *dbTime) parse(s string) error {
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("unrecognised timestamp %q", s)
}

// ============================================================================
// Row Types
// ============================================================================

// reviewRow is the scan target for ReviewProjection
type reviewRow struct {
	ReviewID     int64  `db:"review_id"`
	Title        string `db:"title"`
	ReviewBody   string `db:"review_body"`
	Designer     string `db:"designer"`
	ReviewImgURL string `db:"review_img_url"`
	Votes        int    `db:"votes"`
	Category     string `db:"category"`
	Owner        string `db:"owner"`
	CreatedAt    dbTime `db:"created_at"`
	CommentCount int    `db:"comment_count"`
}

func (r reviewRow) toDomain() domain.Review {
	return domain.Review{
		ReviewID:     r.ReviewID,
		Title:        r.Title,
		ReviewBody:   r.ReviewBody,
		Designer:     r.Designer,
		ReviewImgURL: r.ReviewImgURL,
		Votes:        r.Votes,
		Category:     r.Category,
		Owner:        r.Owner,
		CreatedAt:    r.CreatedAt.Time,
		CommentCount: r.CommentCount,
	}
}

// commentRow is the scan target for comment reads
type commentRow struct {
	CommentID int64  `db:"comment_id"`
	ReviewID  int64  `db:"review_id"`
	Author    string `db:"author"`
	Body      string `db:"body"`
	Votes     int    `db:"votes"`
	CreatedAt dbTime `db:"created_at"`
}

func (r commentRow) toDomain() domain.Comment {
	return domain.Comment{
		CommentID: r.CommentID,
		ReviewID:  r.ReviewID,
		Author:    r.Author,
		Body:      r.Body,
		Votes:     r.Votes,
		CreatedAt: r.CreatedAt.Time,
	}
}
