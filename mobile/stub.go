//go:build !mobile

// Package mobile holds the ebitenmobile binding; the real code only builds
// with -tags mobile.
package mobile

// Dummy is an exported no-op so the package builds on desktop too.
func Dummy() {}
