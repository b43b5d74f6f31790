package native

import (
	"fmt"

	"AcrylicWindow/internal/logger"
	"AcrylicWindow/internal/style"
)

// Styles pushes single style attributes onto a native handle. It keeps no
// state of its own.
type Styles struct {
	sys System
}

// NewStyles returns a style applier over sys.
func NewStyles(sys System) Styles {
	return Styles{sys: sys}
}

func backdropType(b style.Backdrop) uint32 {
	switch b {
	case style.BackdropTransparent:
		return dwmsbtNone
	case style.BackdropAcrylic:
		return dwmsbtTransientWindow
	case style.BackdropMica:
		return dwmsbtMainWindow
	case style.BackdropTabbed:
		return dwmsbtTabbedWindow
	default:
		return dwmsbtAuto
	}
}

func cornerPreference(c style.Corner) uint32 {
	switch c {
	case style.CornerSquare:
		return dwmwcpDoNotRound
	case style.CornerRound:
		return dwmwcpRound
	case style.CornerRoundSmall:
		return dwmwcpRoundSmall
	default:
		return dwmwcpDefault
	}
}

// setColor writes a color attribute. DWM rejects values carrying alpha, so
// only the 0x00BBGGRR part is sent.
func (s Styles) setColor(h Handle, attr uint32, c style.Color) error {
	if err := s.sys.SetDwmAttribute(h, attr, c.ColorRef()); err != nil {
		return fmt.Errorf("set color attribute %d: %w", attr, err)
	}
	return nil
}

func (s Styles) SetBorderColor(h Handle, c style.Color) error {
	return s.setColor(h, dwmwaBorderColor, c)
}

func (s Styles) SetTitleBarColor(h Handle, c style.Color) error {
	return s.setColor(h, dwmwaCaptionColor, c)
}

func (s Styles) SetTextColor(h Handle, c style.Color) error {
	return s.setColor(h, dwmwaTextColor, c)
}

// SetBackdrop writes the system backdrop type unless the window already has
// it. Rewriting the same backdrop makes the window flicker.
func (s Styles) SetBackdrop(h Handle, b style.Backdrop) error {
	want := backdropType(b)
	cur, err := s.sys.DwmAttribute(h, dwmwaSystemBackdropType)
	if err != nil {
		logger.Error("failed to read system backdrop type", "hwnd", uintptr(h), "err", err)
	} else if cur == want {
		logger.Debug("backdrop unchanged", "hwnd", uintptr(h), "backdrop", b)
		return nil
	}
	logger.Debug("setting backdrop", "hwnd", uintptr(h), "new", want, "old", cur)
	if err := s.sys.SetDwmAttribute(h, dwmwaSystemBackdropType, want); err != nil {
		return fmt.Errorf("set system backdrop type: %w", err)
	}
	return nil
}

func (s Styles) SetCorner(h Handle, c style.Corner) error {
	if err := s.sys.SetDwmAttribute(h, dwmwaWindowCornerPreference, cornerPreference(c)); err != nil {
		return fmt.Errorf("set corner preference: %w", err)
	}
	return nil
}

// SetFrame makes the OS recompute the non-client area. The frame itself is
// shaped by the interceptor on WM_NCCALCSIZE; style bits are left alone
// because toggling WS_CAPTION breaks the minimize and maximize animations.
func (s Styles) SetFrame(h Handle, f style.Frame) error {
	logger.Debug("new frame", "hwnd", uintptr(h), "frame", f)
	if err := s.sys.SetWindowPos(h, 0, 0, 0, 0, 0, swpFrameChanged|swpNoMove|swpNoSize|swpNoZOrder|swpNoActivate); err != nil {
		return fmt.Errorf("notify frame changed: %w", err)
	}
	return nil
}

func (s Styles) SetAlwaysOnTop(h Handle, on bool) error {
	after := hwndNoTopMost
	if on {
		after = hwndTopMost
	}
	if err := s.sys.SetWindowPos(h, after, 0, 0, 0, 0, swpNoMove|swpNoSize); err != nil {
		return fmt.Errorf("set topmost: %w", err)
	}
	return nil
}
