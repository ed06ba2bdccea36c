package sqlstore

import (
	"context"
	"fmt"
	"time"

	"gamereviews/internal/domain"
)

// ListComments returns the review's comments, most recent first.
// An existing review with no comments yields an empty slice.
func (s *Store) ListComments(ctx context.Context, reviewID int64) (_ []domain.Comment, err error) {
	defer s.observe("select", "comments", time.Now(), &err)

	exists, err := s.exists(ctx, "SELECT 1 FROM reviews WHERE review_id = ?", reviewID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrReviewNotFound
	}

	var rows []commentRow
	err = s.db.SelectContext(ctx, &rows, s.db.Rebind(`
		SELECT comment_id, review_id, author, body, votes, created_at
		FROM comments
		WHERE review_id = ?
		ORDER BY created_at DESC, comment_id DESC
	`), reviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}

	comments := make([]domain.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, row.toDomain())
	}
	return comments, nil
}

// CreateComment inserts the comment and sets its assigned CommentID
func (s *Store) CreateComment(ctx context.Context, c *domain.Comment) (err error) {
	defer s.observe("insert", "comments", time.Now(), &err)

	err = s.db.QueryRowxContext(ctx, s.db.Rebind(`
		INSERT INTO comments (review_id, author, body, votes, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING comment_id
	`), c.ReviewID, c.Author, c.Body, c.Votes, dbTime{c.CreatedAt}).Scan(&c.CommentID)
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}
	return nil
}

// DeleteComment removes one comment
func (s *Store) DeleteComment(ctx context.Context, id int64) (err error) {
	defer s.observe("delete", "comments", time.Now(), &err)

	res, err := s.db.ExecContext(ctx, s.db.Rebind("DELETE FROM comments WHERE comment_id = ?"), id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}
