package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the transport layer can pick a status code
type Kind int

const (
	KindUnknown      Kind = iota
	KindBadPath           // malformed path segment
	KindInvalidQuery      // query parameter failed the whitelist
	KindInvalidInput      // malformed request body or identifier
	KindInvalidUser       // username not present in the users table
	KindNotFound          // well-formed identifier with no matching row
)

// String returns the kind name used in logs
func (k Kind) String() string {
	switch k {
	case KindBadPath:
		return "bad_path"
	case KindInvalidQuery:
		return "invalid_query"
	case KindInvalidInput:
		return "invalid_input"
	case KindInvalidUser:
		return "invalid_user"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Error is a classified failure carrying the message shown to clients.
// Field names the offending query parameter for KindInvalidQuery.
type Error struct {
	Kind  Kind
	Field string
	Msg   string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s (%s): %s", e.Kind, e.Field, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

var (
	ErrBadPath = &Error{Kind: KindBadPath, Msg: "Bad path"}

	ErrInvalidSortColumn = &Error{Kind: KindInvalidQuery, Field: "sort_by", Msg: "Invalid sort_by query"}
	ErrInvalidOrder      = &Error{Kind: KindInvalidQuery, Field: "order", Msg: "Invalid order query"}
	ErrInvalidCategory   = &Error{Kind: KindInvalidQuery, Field: "category", Msg: "Invalid category query"}

	ErrInvalidInput     = &Error{Kind: KindInvalidInput, Msg: "Bad request"}
	ErrInvalidCommentID = &Error{Kind: KindInvalidInput, Msg: "Invalid comment ID"}

	ErrInvalidUser = &Error{Kind: KindInvalidUser, Msg: "Invalid user"}

	ErrReviewNotFound  = &Error{Kind: KindNotFound, Msg: "No review exists with that ID"}
	ErrCommentNotFound = &Error{Kind: KindNotFound, Msg: "No comment exists with that ID"}
)

// KindOf returns the Kind of the first *Error in err's chain, or KindUnknown
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

// AsError returns the first *Error in err's chain
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
