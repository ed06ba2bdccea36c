package query

import "strings"

// SortColumn is a symbolic column name a client may sort reviews by
type SortColumn string

const (
	SortTitle        SortColumn = "title"
	SortDesigner     SortColumn = "designer"
	SortOwner        SortColumn = "owner"
	SortReviewImgURL SortColumn = "review_img_url"
	SortCategory     SortColumn = "category"
	SortCreatedAt    SortColumn = "created_at"
	SortVotes        SortColumn = "votes"
	SortReviewID     SortColumn = "review_id"
	SortReviewBody   SortColumn = "review_body"
	SortCommentCount SortColumn = "comment_count"
)

// SortOrder is a normalized sort direction
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

const (
	DefaultSortColumn = SortCreatedAt
	DefaultSortOrder  = OrderDesc
)

// sortColumns maps each permitted column to the SQL fragment substituted into
// ORDER BY. Only these fragments ever reach SQL text.
var sortColumns = map[SortColumn]string{
	SortTitle:        "r.title",
	SortDesigner:     "r.designer",
	SortOwner:        "r.owner",
	SortReviewImgURL: "r.review_img_url",
	SortCategory:     "r.category",
	SortCreatedAt:    "r.created_at",
	SortVotes:        "r.votes",
	SortReviewID:     "r.review_id",
	SortReviewBody:   "r.review_body",
	SortCommentCount: "comment_count",
}

var sortOrders = map[SortOrder]string{
	OrderAsc:  "ASC",
	OrderDesc: "DESC",
}

// LookupSortColumn resolves a client token to its SQL fragment.
// Matching is exact: column names are case-sensitive.
func LookupSortColumn(name string) (string, bool) {
	frag, ok := sortColumns[SortColumn(name)]
	return frag, ok
}

// LookupSortOrder resolves asc/desc in any letter case to its SQL keyword
func LookupSortOrder(name string) (string, bool) {
	kw, ok := sortOrders[SortOrder(strings.ToLower(name))]
	return kw, ok
}

// SortColumns lists the permitted sort columns, for the endpoint catalog
func SortColumns() []string {
	names := make([]string, 0, len(sortColumns))
	for _, c := range []SortColumn{
		SortTitle, SortDesigner, SortOwner, SortReviewImgURL, SortCategory,
		SortCreatedAt, SortVotes, SortReviewID, SortReviewBody, SortCommentCount,
	} {
		names = append(names, string(c))
	}
	return names
}
