// Package display lists the connected monitors so the window can be placed on
// one of them.
package display

import (
	"errors"
	"fmt"
	"image"

	"github.com/kbinani/screenshot"
)

var ErrNoDisplay = errors.New("no active display")

// Display represents a physical monitor (from OS).
type Display struct {
	Index   int
	ID      string
	Bounds  image.Rectangle
	Primary bool
}

// List returns currently connected displays. ID is "display-0", "display-1", ...
func List() ([]Display, error) {
	n := screenshot.NumActiveDisplays()
	if n <= 0 {
		return nil, ErrNoDisplay
	}
	out := make([]Display, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Display{
			Index:   i,
			ID:      fmt.Sprintf("display-%d", i),
			Bounds:  screenshot.GetDisplayBounds(i),
			Primary: i == 0,
		})
	}
	return out, nil
}

// Center returns the top-left position that centers a w by h window on the
// display at index. An out-of-range index falls back to the primary display.
func Center(displays []Display, index, w, h int) (image.Point, error) {
	if len(displays) == 0 {
		return image.Point{}, ErrNoDisplay
	}
	if index < 0 || index >= len(displays) {
		index = 0
	}
	return centerIn(displays[index].Bounds, w, h), nil
}

func centerIn(b image.Rectangle, w, h int) image.Point {
	x := b.Min.X + (b.Dx()-w)/2
	y := b.Min.Y + (b.Dy()-h)/2
	if x < b.Min.X {
		x = b.Min.X
	}
	if y < b.Min.Y {
		y = b.Min.Y
	}
	return image.Pt(x, y)
}
