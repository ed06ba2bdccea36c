// Package service implements business logic for the reviews API.
//
// ReviewService sits between the HTTP handlers and the repository. It turns
// raw client values into validated domain values, runs the review list
// through the query builder, and applies the three mutations:
//
//   - IncrementVotes adds a signed integer to a review's votes
//   - CreateComment attaches a comment by a known user to an existing review
//   - DeleteComment removes a comment by id
//
// Every validation failure is returned as a *domain.Error before the store is
// touched.
//
// # Event System
//
// Successful mutations publish an Event on the EventBus. The hub package
// forwards these to connected clients as Server-Sent Events.
package service
