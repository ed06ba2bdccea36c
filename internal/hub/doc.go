// Package hub fans mutation events out to Server-Sent Events clients.
//
// The Hub owns the set of connected streams. Relay bridges the service
// EventBus to the hub; ServeHTTP is mounted at GET /events.
package hub
