//go:build !debug
// +build !debug

// Package debug gates development only checks behind the debug build tag.
package debug

const Debug = false

// Assert does nothing if debug flag is not provided
func Assert(condition bool, message ...string) {
}
