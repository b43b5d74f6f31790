// Package style holds the closed set of window style values shared by the
// facade and the native integration.
package style

import (
	"fmt"
	"strings"
)

// Frame selects how the window chrome is drawn.
type Frame int

const (
	FrameNone Frame = iota
	FrameDefault
	FrameBorderless
	FrameCustom
)

// Backdrop selects the compositor effect behind the client area.
type Backdrop int

const (
	BackdropSolid Backdrop = iota
	BackdropTransparent
	BackdropAcrylic
	BackdropMica
	BackdropTabbed
)

// Corner selects the rounding of the window corners.
type Corner int

const (
	CornerDefault Corner = iota
	CornerSquare
	CornerRound
	CornerRoundSmall
)

// Autohide is the title bar autohide policy.
type Autohide int

const (
	AutohideNever Autohide = iota
	AutohideAlways
	AutohideMaximized
)

// Accent is the title bar accent policy.
type Accent int

const (
	AccentNever Accent = iota
	AccentAlways
	AccentMouseOver
)

var (
	frameNames    = []string{"none", "default", "borderless", "custom"}
	backdropNames = []string{"solid", "transparent", "acrylic", "mica", "tabbed"}
	cornerNames   = []string{"default", "square", "round", "round-small"}
	autohideNames = []string{"never", "always", "maximized"}
	accentNames   = []string{"never", "always", "mouse-over"}
)

func enumName(names []string, v int) string {
	if v < 0 || v >= len(names) {
		return fmt.Sprintf("%d", v)
	}
	return names[v]
}

func parseEnum(kind string, names []string, text []byte) (int, error) {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q (want one of %s)", kind, s, strings.Join(names, ", "))
}

func (f Frame) String() string    { return enumName(frameNames, int(f)) }
func (b Backdrop) String() string { return enumName(backdropNames, int(b)) }
func (c Corner) String() string   { return enumName(cornerNames, int(c)) }
func (a Autohide) String() string { return enumName(autohideNames, int(a)) }
func (a Accent) String() string   { return enumName(accentNames, int(a)) }

// Chromeless reports whether the frame replaces the OS title bar.
func (f Frame) Chromeless() bool {
	return f == FrameBorderless || f == FrameCustom
}

func (f Frame) MarshalText() ([]byte, error)    { return []byte(f.String()), nil }
func (b Backdrop) MarshalText() ([]byte, error) { return []byte(b.String()), nil }
func (c Corner) MarshalText() ([]byte, error)   { return []byte(c.String()), nil }
func (a Autohide) MarshalText() ([]byte, error) { return []byte(a.String()), nil }
func (a Accent) MarshalText() ([]byte, error)   { return []byte(a.String()), nil }

func (f *Frame) UnmarshalText(text []byte) error {
	v, err := parseEnum("frame", frameNames, text)
	if err != nil {
		return err
	}
	*f = Frame(v)
	return nil
}

func (b *Backdrop) UnmarshalText(text []byte) error {
	v, err := parseEnum("backdrop", backdropNames, text)
	if err != nil {
		return err
	}
	*b = Backdrop(v)
	return nil
}

func (c *Corner) UnmarshalText(text []byte) error {
	v, err := parseEnum("corner", cornerNames, text)
	if err != nil {
		return err
	}
	*c = Corner(v)
	return nil
}

func (a *Autohide) UnmarshalText(text []byte) error {
	v, err := parseEnum("autohide", autohideNames, text)
	if err != nil {
		return err
	}
	*a = Autohide(v)
	return nil
}

func (a *Accent) UnmarshalText(text []byte) error {
	v, err := parseEnum("accent", accentNames, text)
	if err != nil {
		return err
	}
	*a = Accent(v)
	return nil
}
