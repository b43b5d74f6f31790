//go:build windows

package native

import (
	"sync"

	"AcrylicWindow/internal/logger"

	"golang.org/x/sys/windows"
)

var (
	defaultOnce sync.Once
	defaultSvc  *Service
)

// DefaultService returns the process-wide service bound to user32 and
// dwmapi.
func DefaultService() *Service {
	defaultOnce.Do(func() {
		defaultSvc = NewService(winSystem{}, func(fn func(hwnd, msg, wParam, lParam uintptr) uintptr) uintptr {
			return windows.NewCallback(fn)
		})
	})
	return defaultSvc
}

// New returns the native integration for host, or the fallback when its
// handle cannot be resolved.
func New(host Host, ds DisplayServer, owner Owner) Window {
	h, err := Resolve(ds, host)
	if err != nil {
		logger.Error("failed to get native handle, native features disabled", "err", err)
		return NewFallback(host)
	}
	logger.Debug("native handle resolved", "hwnd", uintptr(h))
	return newNativeWindow(DefaultService(), h, host, owner)
}

// Shutdown restores any window still subclassed.
func Shutdown() error {
	if defaultSvc == nil {
		return nil
	}
	return defaultSvc.Close()
}
