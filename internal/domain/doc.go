// Package domain defines the core types of the board game reviews API.
//
// This package contains the records the API serves and the error taxonomy
// shared by every layer above the store.
//
// # Core Types
//
// Review is a board game review with a mutable vote total and a derived
// comment count.
//
// Comment is a user comment attached to a review. Comments are the only
// records the API creates and deletes.
//
// Category and User are reference data seeded outside the API.
//
// # Errors
//
// Every client-visible failure is an *Error with a Kind. The HTTP layer maps
// Kind to a status code and Msg to the response body; nothing else about a
// failure leaves the process.
//
// # Design Principles
//
// - No database or transport dependencies
// - Identifiers and vote increments are validated here, before any store call
package domain
