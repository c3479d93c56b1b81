// Package pkguid provides helpers for generating unique identifiers.
//
// The router uses a StringID to stamp requests that arrive without a
// correlation ID header.
package pkguid
