//go:build !mobile

package utils

import "os"

// IsMobile reports whether the mobile build is running.
// GALAGA_MOBILE_EMULATE=1 forces mobile behaviour on desktop for local testing.
func IsMobile() bool {
	return os.Getenv("GALAGA_MOBILE_EMULATE") == "1"
}
