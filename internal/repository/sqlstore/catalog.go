package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gamereviews/internal/domain"
)

// queryer is satisfied by both *sqlx.DB and *sqlx.Tx
type queryer interface {
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	Rebind(query string) string
}

// ListCategories returns every category ordered by slug
func (s *Store) ListCategories(ctx context.Context) (_ []domain.Category, err error) {
	defer s.observe("select", "categories", time.Now(), &err)

	categories := []domain.Category{}
	if err := s.db.SelectContext(ctx, &categories,
		"SELECT slug, description FROM categories ORDER BY slug"); err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	return categories, nil
}

// ListUsers returns every user ordered by username
func (s *Store) ListUsers(ctx context.Context) (_ []domain.User, err error) {
	defer s.observe("select", "users", time.Now(), &err)

	users := []domain.User{}
	if err := s.db.SelectContext(ctx, &users,
		"SELECT username, name, avatar_url FROM users ORDER BY username"); err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	return users, nil
}

// CategoryExists reports whether slug names a stored category
func (s *Store) CategoryExists(ctx context.Context, slug string) (_ bool, err error) {
	defer s.observe("exists", "categories", time.Now(), &err)
	return s.exists(ctx, "SELECT 1 FROM categories WHERE slug = ?", slug)
}

// UserExists reports whether username names a stored user
func (s *Store) UserExists(ctx context.Context, username string) (_ bool, err error) {
	defer s.observe("exists", "users", time.Now(), &err)
	return s.exists(ctx, "SELECT 1 FROM users WHERE username = ?", username)
}

func (s *Store) exists(ctx context.Context, q string, arg any) (bool, error) {
	var one int
	err := s.db.GetContext(ctx, &one, s.db.Rebind(q), arg)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check existence: %w", err)
	}
	return true, nil
}
