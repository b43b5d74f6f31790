package native

import (
	"errors"
	"fmt"
)

// InvalidWindowID marks a window the engine has not realized yet.
const InvalidWindowID = -1

var (
	ErrNilWindow       = errors.New("window is nil")
	ErrInvalidWindowID = errors.New("invalid window id")
	ErrNoDisplayServer = errors.New("display server unavailable")
	ErrNoHandle        = errors.New("native handle not found")
)

// Surface is an engine window that may have been given an id.
type Surface interface {
	WindowID() int
}

// DisplayServer maps engine window ids to OS handles.
type DisplayServer interface {
	NativeHandle(windowID int) (uintptr, error)
}

// Resolve returns the OS handle of s.
func Resolve(ds DisplayServer, s Surface) (Handle, error) {
	if s == nil {
		return 0, ErrNilWindow
	}
	id := s.WindowID()
	if id == InvalidWindowID {
		return 0, ErrInvalidWindowID
	}
	if ds == nil {
		return 0, ErrNoDisplayServer
	}
	raw, err := ds.NativeHandle(id)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNoDisplayServer, err)
	}
	if raw == 0 {
		return 0, ErrNoHandle
	}
	return Handle(raw), nil
}
