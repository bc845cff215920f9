// Package logtail reads the tail of vidly's log file for the in-app log view.
//
// Read keeps a ring buffer of maxLines entries so memory stays bounded no
// matter how large the file grows. Parse understands the console encoding
// written by package logging:
//
//	2026-01-02 15:04:05 WARN catalog fetch failed {"attempt": 2, "error": "..."}
//
// and Filter drops lines below a minimum level. Missing files are treated as
// empty so the log view works before anything has been logged.
package logtail
