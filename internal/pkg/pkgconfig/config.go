package pkgconfig

import "io"

// Config is the read-only view of the application configuration.
type Config interface {
	GetBool(key string) bool
	GetString(key string) string
	GetArray(key string) []string
	io.Closer
}
