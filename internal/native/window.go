package native

import "AcrylicWindow/internal/style"

// Mode is the engine-level window mode.
type Mode int

const (
	ModeWindowed Mode = iota
	ModeMinimized
	ModeMaximized
	ModeFullscreen
)

// Host is the engine window the integration is attached to.
type Host interface {
	Surface
	Mode() Mode
	SetMode(m Mode)
	// Quit asks the engine to end the application.
	Quit()
	SetContentScale(scale float64)
	SetAlwaysOnTop(on bool)
	SetTransparentBackground(on bool)
	SetClearColor(c style.Color)
	QueueRedraw()
}

// Window is the per-window integration. The native variant talks to the OS
// window manager; the fallback only drives the engine.
type Window interface {
	Valid() bool

	// OnReady runs once the native handle is valid.
	OnReady()
	// OnExit runs before the native handle becomes invalid.
	OnExit()

	Minimize() error
	Maximize(toggle bool) error
	Close() error

	SetTextScale(scale float64) error
	SetAlwaysOnTop(on bool) error
	SetFrame(f style.Frame) error
	SetBackdrop(b style.Backdrop) error
	SetCorner(c style.Corner) error
	SetBorderColor(c style.Color) error
	SetTitleBarColor(c style.Color) error
	SetTextColor(c style.Color) error
	SetClearColor(c style.Color) error
}
