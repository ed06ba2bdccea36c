package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"bad path", ErrBadPath, KindBadPath},
		{"invalid sort", ErrInvalidSortColumn, KindInvalidQuery},
		{"invalid order", ErrInvalidOrder, KindInvalidQuery},
		{"invalid category", ErrInvalidCategory, KindInvalidQuery},
		{"invalid input", ErrInvalidInput, KindInvalidInput},
		{"invalid user", ErrInvalidUser, KindInvalidUser},
		{"review not found", ErrReviewNotFound, KindNotFound},
		{"wrapped not found", fmt.Errorf("get review: %w", ErrReviewNotFound), KindNotFound},
		{"plain error", errors.New("boom"), KindUnknown},
		{"nil", nil, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestErrorIsSentinel(t *testing.T) {
	wrapped := fmt.Errorf("delete comment 9: %w", ErrCommentNotFound)
	if !errors.Is(wrapped, ErrCommentNotFound) {
		t.Error("expected wrapped error to match ErrCommentNotFound")
	}
	if errors.Is(wrapped, ErrReviewNotFound) {
		t.Error("comment not found must not match review not found")
	}

	de, ok := AsError(wrapped)
	if !ok {
		t.Fatal("expected AsError to find *Error")
	}
	if de.Msg != "No comment exists with that ID" {
		t.Errorf("unexpected message %q", de.Msg)
	}
}

func TestInvalidQueryFields(t *testing.T) {
	if ErrInvalidSortColumn.Field != "sort_by" {
		t.Errorf("expected sort_by field, got %s", ErrInvalidSortColumn.Field)
	}
	if ErrInvalidOrder.Field != "order" {
		t.Errorf("expected order field, got %s", ErrInvalidOrder.Field)
	}
	if ErrInvalidCategory.Field != "category" {
		t.Errorf("expected category field, got %s", ErrInvalidCategory.Field)
	}
}
