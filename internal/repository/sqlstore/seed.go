package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"gamereviews/internal/loader"
)

// Seed replaces the entire contents of the store with the dataset.
// Identifiers restart at 1 and follow the dataset's order.
func (s *Store) Seed(ctx context.Context, ds *loader.Dataset) (err error) {
	defer s.observe("seed", "all", time.Now(), &err)

	if err := ds.Validate(); err != nil {
		return fmt.Errorf("invalid dataset: %w", err)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range resetStatements[s.driver] {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to reset tables: %w", err)
		}
	}

	for _, c := range ds.Categories {
		if _, err := tx.ExecContext(ctx, tx.Rebind(
			"INSERT INTO categories (slug, description) VALUES (?, ?)"),
			c.Slug, c.Description); err != nil {
			return fmt.Errorf("failed to insert category %s: %w", c.Slug, err)
		}
	}

	for _, u := range ds.Users {
		if _, err := tx.ExecContext(ctx, tx.Rebind(
			"INSERT INTO users (username, name, avatar_url) VALUES (?, ?, ?)"),
			u.Username, u.Name, u.AvatarURL); err != nil {
			return fmt.Errorf("failed to insert user %s: %w", u.Username, err)
		}
	}

	reviewIDs, err := seedReviews(ctx, tx, ds.Reviews)
	if err != nil {
		return err
	}

	for _, c := range ds.Comments {
		reviewID, ok := reviewIDs[c.Review]
		if !ok {
			return fmt.Errorf("comment references unknown review %q", c.Review)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(`
			INSERT INTO comments (review_id, author, body, votes, created_at)
			VALUES (?, ?, ?, ?, ?)
		`), reviewID, c.Author, c.Body, c.Votes, seedTime(c.CreatedAt)); err != nil {
			return fmt.Errorf("failed to insert comment on %q: %w", c.Review, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	return nil
}

// seedReviews inserts reviews in order and returns their ids keyed by title
func seedReviews(ctx context.Context, tx *sqlx.Tx, reviews []loader.ReviewYAML) (map[string]int64, error) {
	ids := make(map[string]int64, len(reviews))
	insert := tx.Rebind(`
		INSERT INTO reviews (title, review_body, designer, review_img_url, votes, category, owner, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING review_id
	`)

	for _, r := range reviews {
		imgURL := r.ReviewImgURL
		if imgURL == "" {
			imgURL = defaultReviewImgURL
		}

		var id int64
		err := tx.QueryRowxContext(ctx, insert,
			r.Title, r.ReviewBody, r.Designer, imgURL, r.Votes, r.Category, r.Owner,
			seedTime(r.CreatedAt)).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("failed to insert review %q: %w", r.Title, err)
		}
		ids[r.Title] = id
	}
	return ids, nil
}

// seedTime defaults missing fixture timestamps to now
func seedTime(t time.Time) dbTime {
	if t.IsZero() {
		return dbTime{time.Now().UTC()}
	}
	return dbTime{t.UTC()}
}
