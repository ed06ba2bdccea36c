package query

import (
	"context"
	"fmt"
	"strings"

	"gamereviews/internal/domain"
)

// CategoryLookup reports whether a category slug exists in the store
type CategoryLookup interface {
	CategoryExists(ctx context.Context, slug string) (bool, error)
}

// Statement is a parameterized SQL statement. Placeholders are written as '?'
// and rebound to the driver's style by the repository.
type Statement struct {
	SQL  string
	Args []any
}

// ReviewProjection is the column list shared by every review read, including
// the derived comment count. Queries using it must join comments as c and
// group by r.review_id.
const ReviewProjection = `r.review_id, r.title, r.review_body, r.designer, r.review_img_url,
	r.votes, r.category, r.owner, r.created_at,
	COUNT(c.comment_id) AS comment_count`

// ReviewFrom is the FROM clause matching ReviewProjection
const ReviewFrom = `FROM reviews r
	LEFT JOIN comments c ON c.review_id = r.review_id`

// Builder constructs review list statements from client parameters
type Builder struct {
	categories CategoryLookup
}

// NewBuilder creates a builder that validates categories against lookup
func NewBuilder(lookup CategoryLookup) *Builder {
	return &Builder{categories: lookup}
}

// BuildReviewQuery validates the filter and returns the list statement.
// Sort column and order are resolved through the catalog whitelist; the
// category is only ever passed as a bound argument. Validation failures are
// returned before the statement exists, so a rejected value never reaches
// the store as SQL.
func (b *Builder) BuildReviewQuery(ctx context.Context, filter domain.ReviewFilter) (Statement, error) {
	sortBy := string(DefaultSortColumn)
	if filter.SortBy != "" {
		sortBy = filter.SortBy
	}
	column, ok := LookupSortColumn(sortBy)
	if !ok {
		return Statement{}, domain.ErrInvalidSortColumn
	}

	order := string(DefaultSortOrder)
	if filter.Order != "" {
		order = filter.Order
	}
	direction, ok := LookupSortOrder(order)
	if !ok {
		return Statement{}, domain.ErrInvalidOrder
	}

	var (
		where string
		args  []any
	)
	if filter.Category != "" {
		exists, err := b.categories.CategoryExists(ctx, filter.Category)
		if err != nil {
			return Statement{}, fmt.Errorf("check category: %w", err)
		}
		if !exists {
			return Statement{}, domain.ErrInvalidCategory
		}
		where = "WHERE r.category = ?"
		args = append(args, filter.Category)
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(ReviewProjection)
	sb.WriteString("\n\t")
	sb.WriteString(ReviewFrom)
	if where != "" {
		sb.WriteString("\n\t")
		sb.WriteString(where)
	}
	sb.WriteString("\n\tGROUP BY r.review_id")
	fmt.Fprintf(&sb, "\n\tORDER BY %s %s, r.review_id ASC", column, direction)

	return Statement{SQL: sb.String(), Args: args}, nil
}
