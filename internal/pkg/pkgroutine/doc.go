// Package pkgroutine contains helpers for running goroutines safely.
//
// The Manager type limits concurrency and collects returned errors. A panic in
// a task is recovered and reported as an error from Wait, so callers that
// must not proceed after a failed task (for example startup seeding) see it.
package pkgroutine
