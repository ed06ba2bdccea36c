package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gamereviews/internal/domain"
	"gamereviews/internal/query"
)

const reviewByIDQuery = `SELECT ` + query.ReviewProjection + `
	` + query.ReviewFrom + `
	WHERE r.review_id = ?
	GROUP BY r.review_id`

// GetReview returns one review with its comment count
func (s *Store) GetReview(ctx context.Context, id int64) (_ *domain.Review, err error) {
	defer s.observe("select", "reviews", time.Now(), &err)
	return getReview(ctx, s.db, id)
}

func getReview(ctx context.Context, q queryer, id int64) (*domain.Review, error) {
	var row reviewRow
	err := q.GetContext(ctx, &row, q.Rebind(reviewByIDQuery), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query review: %w", err)
	}

	review := row.toDomain()
	return &review, nil
}

// ListReviews runs a statement built by the query package
func (s *Store) ListReviews(ctx context.Context, stmt query.Statement) (_ []domain.Review, err error) {
	defer s.observe("select", "reviews", time.Now(), &err)

	var rows []reviewRow
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(stmt.SQL), stmt.Args...); err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}

	reviews := make([]domain.Review, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, row.toDomain())
	}
	return reviews, nil
}

// ReviewExists reports whether a review with the id is stored
func (s *Store) ReviewExists(ctx context.Context, id int64) (_ bool, err error) {
	defer s.observe("exists", "reviews", time.Now(), &err)
	return s.exists(ctx, "SELECT 1 FROM reviews WHERE review_id = ?", id)
}

// IncrementVotes adds inc to the review's votes and returns the updated
// review. The arithmetic happens in the UPDATE itself, and the re-read runs in
// the same transaction, so the returned votes reflect exactly this call.
func (s *Store) IncrementVotes(ctx context.Context, id int64, inc int) (_ *domain.Review, err error) {
	defer s.observe("update", "reviews", time.Now(), &err)

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		tx.Rebind("UPDATE reviews SET votes = votes + ? WHERE review_id = ?"), inc, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update votes: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return nil, domain.ErrReviewNotFound
	}

	review, err := getReview(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit votes: %w", err)
	}
	return review, nil
}
