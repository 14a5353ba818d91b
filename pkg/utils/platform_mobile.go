//go:build mobile

package utils

// IsMobile reports whether the mobile build is running.
func IsMobile() bool {
	return true
}
