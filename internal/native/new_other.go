//go:build !windows

package native

import "AcrylicWindow/internal/logger"

// New returns the fallback; only Windows has a native integration.
func New(host Host, ds DisplayServer, owner Owner) Window {
	logger.Debug("native window integration unavailable on this platform")
	return NewFallback(host)
}

// Shutdown is a no-op on non-Windows platforms.
func Shutdown() error {
	return nil
}
