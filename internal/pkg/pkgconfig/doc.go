// Package pkgconfig provides a small abstraction for reading configuration values.
//
// The application expects config values to come from a concrete implementation
// (for example Viper). Business code should depend on the Config interface so it
// stays easy to test and does not care where values come from (file, env, etc).
//
// Environment variables can be bound to individual keys so deployments that
// only inject env (for example REGION or MENU_TABLE_NAME) still override the
// file.
package pkgconfig
