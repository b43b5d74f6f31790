// Package chrome lays out the demo window's own title bar, buttons and popup
// as a scene tree. Everything here is in content coordinates (device
// independent pixels) and scaled by the window's text size.
package chrome

import (
	"image"
	"math"

	"AcrylicWindow/internal/scene"
)

// Logical sizes before content scale.
const (
	TitleBarHeight = 32
	ButtonWidth    = 46
	FontSize       = 13
	popupWidth     = 220
	popupHeight    = 96
)

// LineHeight is the line spacing as a multiple of the font size.
const LineHeight = 1.4

type Action int

const (
	ActionNone Action = iota
	ActionMinimize
	ActionMaximize
	ActionClose
)

// Button is a title bar button and the scene node standing for it.
type Button struct {
	Box    *scene.Box
	Label  string
	Action Action
}

// Chrome is the laid out content tree for one frame. It is rebuilt on every
// layout and never mutated afterwards, so the window procedure can read it
// from another thread.
type Chrome struct {
	Root     *scene.Box
	TitleBar *scene.Box
	Popup    *scene.Box
	Buttons  []Button
}

// Layout builds the tree for a w by h content area.
func Layout(w, h int, scale float64, titleVisible, popupOpen bool) *Chrome {
	bar := int(TitleBarHeight * scale)
	bw := int(ButtonWidth * scale)

	c := &Chrome{
		Root: &scene.Box{Name: "root", Bounds: image.Rect(0, 0, w, h), Filter: scene.MouseIgnore},
	}
	c.TitleBar = &scene.Box{
		Name:     "title_bar",
		NodeKind: scene.KindControl,
		Hidden:   !titleVisible,
		Bounds:   image.Rect(0, 0, w, bar),
		Filter:   scene.MousePass,
	}
	specs := []struct {
		name   string
		label  string
		action Action
	}{
		{"close", "x", ActionClose},
		{"maximize", "[]", ActionMaximize},
		{"minimize", "_", ActionMinimize},
	}
	for i, s := range specs {
		right := w - i*bw
		b := &scene.Box{
			Name:     s.name,
			NodeKind: scene.KindControl,
			Bounds:   image.Rect(right-bw, 0, right, bar),
			Filter:   scene.MouseStop,
		}
		c.TitleBar.Add(b)
		c.Buttons = append(c.Buttons, Button{Box: b, Label: s.label, Action: s.action})
	}

	pw, ph := int(popupWidth*scale), int(popupHeight*scale)
	c.Popup = &scene.Box{
		Name:     "popup",
		NodeKind: scene.KindPopup,
		Hidden:   !popupOpen,
		Bounds:   image.Rect((w-pw)/2, (h-ph)/2, (w+pw)/2, (h+ph)/2),
		Filter:   scene.MouseStop,
	}
	c.Root.Add(c.TitleBar, c.Popup)
	return c
}

// Hit returns the action of the visible title bar button under p.
func (c *Chrome) Hit(p image.Point) Action {
	if c.TitleBar.Hidden {
		return ActionNone
	}
	for _, b := range c.Buttons {
		if p.In(b.Box.Bounds) {
			return b.Action
		}
	}
	return ActionNone
}

// TextSize is the font size in content pixels at scale.
func TextSize(scale float64) float64 {
	if scale <= 0 {
		scale = 1
	}
	return FontSize * scale
}

// FromDevice converts a client point in physical pixels, as the window
// procedure sees it, to content coordinates.
func FromDevice(p image.Point, deviceScale float64) image.Point {
	if deviceScale <= 0 || deviceScale == 1 {
		return p
	}
	return image.Pt(
		int(math.Floor(float64(p.X)/deviceScale)),
		int(math.Floor(float64(p.Y)/deviceScale)),
	)
}
