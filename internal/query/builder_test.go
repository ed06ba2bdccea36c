package query

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gamereviews/internal/domain"
)

// fakeCategories is an in-memory CategoryLookup that records every lookup
type fakeCategories struct {
	slugs   map[string]bool
	err     error
	lookups []string
}

func (f *fakeCategories) CategoryExists(_ context.Context, slug string) (bool, error) {
	f.lookups = append(f.lookups, slug)
	if f.err != nil {
		return false, f.err
	}
	return f.slugs[slug], nil
}

func newFakeCategories() *fakeCategories {
	return &fakeCategories{slugs: map[string]bool{
		"euro game":        true,
		"social deduction": true,
		"dexterity":        true,
		"children's games": true,
	}}
}

func TestBuildReviewQueryDefaults(t *testing.T) {
	b := NewBuilder(newFakeCategories())

	stmt, err := b.BuildReviewQuery(context.Background(), domain.ReviewFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(stmt.SQL, "ORDER BY r.created_at DESC, r.review_id ASC") {
		t.Errorf("expected default order by created_at desc, got:\n%s", stmt.SQL)
	}
	if strings.Contains(stmt.SQL, "WHERE") {
		t.Errorf("expected no WHERE clause without category, got:\n%s", stmt.SQL)
	}
	if !strings.Contains(stmt.SQL, "COUNT(c.comment_id) AS comment_count") {
		t.Errorf("expected comment_count aggregate, got:\n%s", stmt.SQL)
	}
	if !strings.Contains(stmt.SQL, "GROUP BY r.review_id") {
		t.Errorf("expected GROUP BY review, got:\n%s", stmt.SQL)
	}
	if len(stmt.Args) != 0 {
		t.Errorf("expected no args, got %v", stmt.Args)
	}
}

func TestBuildReviewQuerySortAndOrder(t *testing.T) {
	b := NewBuilder(newFakeCategories())

	tests := []struct {
		name   string
		filter domain.ReviewFilter
		want   string
	}{
		{"sort by votes defaults desc", domain.ReviewFilter{SortBy: "votes"}, "ORDER BY r.votes DESC"},
		{"order asc", domain.ReviewFilter{Order: "asc"}, "ORDER BY r.created_at ASC"},
		{"order upper case", domain.ReviewFilter{Order: "ASC"}, "ORDER BY r.created_at ASC"},
		{"order mixed case", domain.ReviewFilter{Order: "Desc"}, "ORDER BY r.created_at DESC"},
		{"sort by title asc", domain.ReviewFilter{SortBy: "title", Order: "asc"}, "ORDER BY r.title ASC"},
		{"sort by comment count", domain.ReviewFilter{SortBy: "comment_count"}, "ORDER BY comment_count DESC"},
		{"sort by owner", domain.ReviewFilter{SortBy: "owner"}, "ORDER BY r.owner DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := b.BuildReviewQuery(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(stmt.SQL, tt.want) {
				t.Errorf("expected %q in:\n%s", tt.want, stmt.SQL)
			}
		})
	}
}

func TestBuildReviewQueryCategory(t *testing.T) {
	cats := newFakeCategories()
	b := NewBuilder(cats)

	stmt, err := b.BuildReviewQuery(context.Background(), domain.ReviewFilter{Category: "social deduction"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(stmt.SQL, "WHERE r.category = ?") {
		t.Errorf("expected bound category filter, got:\n%s", stmt.SQL)
	}
	if strings.Contains(stmt.SQL, "social deduction") {
		t.Errorf("category value must not appear in SQL text:\n%s", stmt.SQL)
	}
	if len(stmt.Args) != 1 || stmt.Args[0] != "social deduction" {
		t.Errorf("expected category as only arg, got %v", stmt.Args)
	}
}

func TestBuildReviewQueryRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		filter domain.ReviewFilter
		want   *domain.Error
	}{
		{"unknown sort column", domain.ReviewFilter{SortBy: "bananas"}, domain.ErrInvalidSortColumn},
		{"sort column injection", domain.ReviewFilter{SortBy: "votes; DROP TABLE reviews;"}, domain.ErrInvalidSortColumn},
		{"sort column wrong case", domain.ReviewFilter{SortBy: "VOTES"}, domain.ErrInvalidSortColumn},
		{"unknown order", domain.ReviewFilter{Order: "sideways"}, domain.ErrInvalidOrder},
		{"order injection", domain.ReviewFilter{Order: "asc; DROP TABLE reviews;"}, domain.ErrInvalidOrder},
		{"unknown category", domain.ReviewFilter{Category: "not-a-category"}, domain.ErrInvalidCategory},
		{"category injection", domain.ReviewFilter{Category: "social deduction; DROP TABLE reviews;"}, domain.ErrInvalidCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder(newFakeCategories())
			stmt, err := b.BuildReviewQuery(context.Background(), tt.filter)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if domain.KindOf(err) != domain.KindInvalidQuery {
				t.Errorf("expected invalid query kind, got %s", domain.KindOf(err))
			}
			if stmt.SQL != "" {
				t.Errorf("expected no statement on failure, got:\n%s", stmt.SQL)
			}
		})
	}
}

func TestBuildReviewQueryValidatesSortBeforeLookup(t *testing.T) {
	cats := newFakeCategories()
	b := NewBuilder(cats)

	_, err := b.BuildReviewQuery(context.Background(), domain.ReviewFilter{
		Category: "dexterity",
		SortBy:   "nope",
	})
	if !errors.Is(err, domain.ErrInvalidSortColumn) {
		t.Fatalf("expected ErrInvalidSortColumn, got %v", err)
	}
	if len(cats.lookups) != 0 {
		t.Errorf("expected no store lookups, got %v", cats.lookups)
	}
}

func TestBuildReviewQueryLookupError(t *testing.T) {
	cats := newFakeCategories()
	cats.err = errors.New("connection refused")
	b := NewBuilder(cats)

	_, err := b.BuildReviewQuery(context.Background(), domain.ReviewFilter{Category: "dexterity"})
	if err == nil {
		t.Fatal("expected error")
	}
	if domain.KindOf(err) != domain.KindUnknown {
		t.Errorf("store failure must not be classified, got %s", domain.KindOf(err))
	}
}

func TestLookupSortOrder(t *testing.T) {
	for _, in := range []string{"asc", "ASC", "Asc", "desc", "DESC"} {
		if _, ok := LookupSortOrder(in); !ok {
			t.Errorf("expected %q to be accepted", in)
		}
	}
	for _, in := range []string{"", "ascending", "up", " asc"} {
		if _, ok := LookupSortOrder(in); ok {
			t.Errorf("expected %q to be rejected", in)
		}
	}
}

func TestSortColumnsCoverCatalog(t *testing.T) {
	names := SortColumns()
	if len(names) != len(sortColumns) {
		t.Fatalf("SortColumns() lists %d names, catalog has %d", len(names), len(sortColumns))
	}
	for _, n := range names {
		if _, ok := LookupSortColumn(n); !ok {
			t.Errorf("listed column %q missing from catalog", n)
		}
	}
}
