// Package metrics exposes the Prometheus collectors for the reviews API.
//
// Collectors are registered on the default registry at package init and are
// served by the /metrics route. The store records query timings through
// RecordDBQuery; the HTTP middleware records request counts and latency.
package metrics
