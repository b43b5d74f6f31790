package native

import (
	"errors"

	"AcrylicWindow/internal/style"
)

var errNoHost = errors.New("no host window")

// Fallback is the Window used when no native integration is available. It
// forwards what the engine can do by itself and accepts everything else.
type Fallback struct {
	host Host
}

// NewFallback returns a fallback bound to host.
func NewFallback(host Host) *Fallback {
	return &Fallback{host: host}
}

func (f *Fallback) Valid() bool { return f.host != nil }

func (f *Fallback) OnReady() {}
func (f *Fallback) OnExit()  {}

func (f *Fallback) Minimize() error {
	if f.host == nil {
		return errNoHost
	}
	f.host.SetMode(ModeMinimized)
	return nil
}

func (f *Fallback) Maximize(toggle bool) error {
	if f.host == nil {
		return errNoHost
	}
	if toggle && f.host.Mode() == ModeMaximized {
		f.host.SetMode(ModeWindowed)
		return nil
	}
	f.host.SetMode(ModeMaximized)
	return nil
}

func (f *Fallback) Close() error {
	if f.host == nil {
		return errNoHost
	}
	f.host.Quit()
	return nil
}

func (f *Fallback) SetTextScale(scale float64) error {
	if f.host == nil {
		return errNoHost
	}
	f.host.SetContentScale(scale)
	return nil
}

func (f *Fallback) SetAlwaysOnTop(on bool) error {
	if f.host == nil {
		return errNoHost
	}
	f.host.SetAlwaysOnTop(on)
	return nil
}

func (f *Fallback) SetFrame(style.Frame) error { return nil }

// SetBackdrop makes the engine clear to a transparent background for every
// backdrop but solid, and redraws.
func (f *Fallback) SetBackdrop(b style.Backdrop) error {
	if f.host == nil {
		return errNoHost
	}
	f.host.SetTransparentBackground(b != style.BackdropSolid)
	f.host.QueueRedraw()
	return nil
}

func (f *Fallback) SetCorner(style.Corner) error       { return nil }
func (f *Fallback) SetBorderColor(style.Color) error   { return nil }
func (f *Fallback) SetTitleBarColor(style.Color) error { return nil }
func (f *Fallback) SetTextColor(style.Color) error     { return nil }

func (f *Fallback) SetClearColor(c style.Color) error {
	if f.host == nil {
		return errNoHost
	}
	f.host.SetClearColor(c)
	return nil
}
