// Package logging provides the process-wide zerolog logger.
//
// Call Init once at startup with the configured level and format. Request
// handlers log through Ctx so entries carry the request id assigned by the
// HTTP middleware.
package logging
