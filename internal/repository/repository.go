package repository

import (
	"context"

	"gamereviews/internal/domain"
	"gamereviews/internal/loader"
	"gamereviews/internal/query"
)

// Repository defines the interface for review data access
type Repository interface {
	// Read operations
	GetReview(ctx context.Context, id int64) (*domain.Review, error)
	ListReviews(ctx context.Context, stmt query.Statement) ([]domain.Review, error)
	ListComments(ctx context.Context, reviewID int64) ([]domain.Comment, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListUsers(ctx context.Context) ([]domain.User, error)

	// Existence checks
	CategoryExists(ctx context.Context, slug string) (bool, error)
	UserExists(ctx context.Context, username string) (bool, error)
	ReviewExists(ctx context.Context, id int64) (bool, error)

	// Write operations
	IncrementVotes(ctx context.Context, id int64, inc int) (*domain.Review, error)
	CreateComment(ctx context.Context, comment *domain.Comment) error
	DeleteComment(ctx context.Context, id int64) error

	// Fixtures
	Seed(ctx context.Context, ds *loader.Dataset) error

	// Ping checks the store is reachable
	Ping(ctx context.Context) error

	// Close releases resources
	Close() error
}
