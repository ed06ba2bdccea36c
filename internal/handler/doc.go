// Package handler implements the HTTP layer of the reviews API.
//
// NewRouter mounts every route on a chi router behind request id, logging,
// panic recovery, CORS and Prometheus middleware.
//
// # Response Format
//
// Success bodies wrap their payload under a resource key: categories,
// reviews, review, comments, postedComment or users. DELETE answers 204 with
// no body.
//
// Every error body is {"msg": "..."}. Client errors carry the message of the
// domain error; anything unclassified is logged with the request id and
// answered 500 "Internal server error".
//
// Unmatched paths answer 400 "Bad path". A known path requested with the
// wrong method answers 405.
//
// # Server-Sent Events
//
// When an event stream is supplied, GET /events streams mutation events as
// they happen.
package handler
