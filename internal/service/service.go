package service

import (
	"context"
	"fmt"

	"gamereviews/internal/domain"
	"gamereviews/internal/query"
	"gamereviews/internal/repository"
	"gamereviews/internal/validation"
)

// ReviewService provides the read and mutation operations of the API.
// Raw client values (path ids, body fields) are validated here, before any
// store call.
type ReviewService struct {
	repo     repository.Repository
	builder  *query.Builder
	eventBus *EventBus
}

// NewReviewService creates a new review service
func NewReviewService(repo repository.Repository, eventBus *EventBus) *ReviewService {
	return &ReviewService{
		repo:     repo,
		builder:  query.NewBuilder(repo),
		eventBus: eventBus,
	}
}

// ListCategories returns every category
func (s *ReviewService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

// ListUsers returns every user
func (s *ReviewService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListUsers(ctx)
}

// ListReviews returns reviews matching the filter
func (s *ReviewService) ListReviews(ctx context.Context, filter domain.ReviewFilter) ([]domain.Review, error) {
	stmt, err := s.builder.BuildReviewQuery(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.repo.ListReviews(ctx, stmt)
}

// GetReview returns one review by its raw path id
func (s *ReviewService) GetReview(ctx context.Context, rawID string) (*domain.Review, error) {
	id, err := domain.ParseID(rawID, domain.ErrBadPath)
	if err != nil {
		return nil, err
	}
	return s.repo.GetReview(ctx, id)
}

// ListComments returns the comments of one review, most recent first
func (s *ReviewService) ListComments(ctx context.Context, rawReviewID string) ([]domain.Comment, error) {
	id, err := domain.ParseID(rawReviewID, domain.ErrBadPath)
	if err != nil {
		return nil, err
	}
	return s.repo.ListComments(ctx, id)
}

// IncrementVotes adds incVotes to the review's votes. incVotes is the decoded
// JSON value and must be an integer.
func (s *ReviewService) IncrementVotes(ctx context.Context, rawReviewID string, incVotes any) (*domain.Review, error) {
	id, err := domain.ParseID(rawReviewID, domain.ErrBadPath)
	if err != nil {
		return nil, err
	}
	inc, err := domain.ParseVoteIncrement(incVotes)
	if err != nil {
		return nil, err
	}

	review, err := s.repo.IncrementVotes(ctx, id, inc)
	if err != nil {
		return nil, err
	}

	s.eventBus.Publish(Event{
		Type: EventReviewVotesUpdated,
		Payload: map[string]any{
			"review_id": review.ReviewID,
			"inc_votes": inc,
			"votes":     review.Votes,
		},
	})

	return review, nil
}

// NewCommentInput is a comment submission as received from the client
type NewCommentInput struct {
	Username string `json:"username" validate:"required,notblank"`
	Body     string `json:"body" validate:"required,notblank"`
}

// CreateComment adds a comment to a review and returns the stored record
func (s *ReviewService) CreateComment(ctx context.Context, rawReviewID string, input NewCommentInput) (*domain.Comment, error) {
	id, err := domain.ParseID(rawReviewID, domain.ErrBadPath)
	if err != nil {
		return nil, err
	}
	if verr := validation.ValidateStruct(input); verr != nil {
		return nil, domain.ErrInvalidInput
	}

	exists, err := s.repo.ReviewExists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check review: %w", err)
	}
	if !exists {
		return nil, domain.ErrReviewNotFound
	}

	comment := domain.NewComment(id, input.Username, input.Body)
	known, err := s.repo.UserExists(ctx, comment.Author)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !known {
		return nil, domain.ErrInvalidUser
	}

	if err := s.repo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	s.eventBus.Publish(Event{
		Type:    EventCommentCreated,
		Payload: comment,
	})

	return comment, nil
}

// DeleteComment removes a comment by its raw path id
func (s *ReviewService) DeleteComment(ctx context.Context, rawCommentID string) error {
	id, err := domain.ParseID(rawCommentID, domain.ErrInvalidCommentID)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteComment(ctx, id); err != nil {
		return err
	}

	s.eventBus.Publish(Event{
		Type:    EventCommentDeleted,
		Payload: map[string]int64{"comment_id": id},
	})

	return nil
}

// Ping checks the store is reachable
func (s *ReviewService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
