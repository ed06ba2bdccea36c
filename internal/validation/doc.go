// Package validation wraps go-playground/validator for request payloads.
//
// A single validator instance is shared by the process. Field errors are
// reported under their JSON names so callers can relate them to the request
// body.
package validation
