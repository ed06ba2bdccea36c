// Package watcher reruns a callback when a single file changes on disk.
//
// The server uses it to reseed the store from a dataset file during
// development.
package watcher
