// Package query builds the parameterized SQL used to list reviews.
//
// The catalog maps the symbolic sort columns and orders a client may send
// to fixed SQL fragments. BuildReviewQuery resolves every client token
// through that map and binds scalar filter values as arguments, so user
// input is never concatenated into SQL text.
package query
