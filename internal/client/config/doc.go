// Package config loads runtime settings for the roster client.
//
// Sources are applied in order of increasing precedence: built-in defaults,
// then an optional JSON file (-c/-config), then command-line flags. Each
// stage only sees the flags it owns, so stages compose without interfering.
package config
