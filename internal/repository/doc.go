// Package repository defines the data access interface for the reviews API.
//
// This package provides the repository abstraction layer for reading and
// writing reviews, comments, categories and users. The implementation is in
// the sqlstore subpackage.
//
// # Repository Interface
//
// Reads return domain records. A well-formed identifier with no matching
// row is reported as a domain NotFound error at this boundary; list reads
// return an empty slice rather than an error when nothing matches.
//
// ListReviews executes a statement produced by the query package. The
// repository never builds review list SQL from client input itself.
//
// # SQL Implementation
//
// The sqlstore implementation runs on SQLite (modernc.org/sqlite, the
// default) or PostgreSQL (lib/pq) through sqlx. It handles:
//
// - Placeholder rebinding per driver
// - Table bootstrap on startup
// - Single-statement atomic vote increments
// - Transactional fixture seeding
//
// # Testing
//
// The sqlstore package is tested against in-memory SQLite databases seeded
// from the embedded test fixture, one fresh database per test.
package repository
