package chrome

import (
	"image"
	"testing"

	"AcrylicWindow/internal/scene"
	"AcrylicWindow/internal/style"
)

func TestLayoutButtons(t *testing.T) {
	tests := []struct {
		name  string
		scale float64
		p     image.Point
		want  Action
	}{
		{"close", 1, image.Pt(780, 10), ActionClose},
		{"maximize", 1, image.Pt(730, 10), ActionMaximize},
		{"minimize", 1, image.Pt(690, 10), ActionMinimize},
		{"left of buttons", 1, image.Pt(600, 10), ActionNone},
		{"below title bar", 1, image.Pt(780, 40), ActionNone},
		{"scaled close", 2, image.Pt(720, 50), ActionClose},
		{"scaled maximize", 2, image.Pt(650, 10), ActionMaximize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Layout(800, 600, tt.scale, true, false)
			if got := c.Hit(tt.p); got != tt.want {
				t.Errorf("Hit(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestHiddenTitleBar(t *testing.T) {
	c := Layout(800, 600, 1, false, false)
	if got := c.Hit(image.Pt(780, 10)); got != ActionNone {
		t.Errorf("Hit on hidden title bar = %v, want none", got)
	}
	if n := scene.FindMouseBlockingControl(c.Root, image.Pt(780, 10), -1); n != nil {
		t.Errorf("hidden button blocks mouse: %v", n)
	}
}

func TestLayoutTree(t *testing.T) {
	c := Layout(800, 600, 1, true, false)

	tests := []struct {
		name   string
		p      image.Point
		blocks bool
	}{
		{"button", image.Pt(780, 10), true},
		{"title bar passes", image.Pt(100, 10), false},
		{"content", image.Pt(100, 300), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scene.FindMouseBlockingControl(c.Root, tt.p, -1) != nil
			if got != tt.blocks {
				t.Errorf("blocks at %v = %v, want %v", tt.p, got, tt.blocks)
			}
		})
	}

	if scene.HasOpenPopup(c.Root) {
		t.Error("closed popup reported open")
	}
	open := Layout(800, 600, 1, true, true)
	if !scene.HasOpenPopup(open.Root) {
		t.Error("open popup not reported")
	}
	if got := open.Popup.Bounds; got != image.Rect(290, 252, 510, 348) {
		t.Errorf("popup bounds = %v", got)
	}
}

func TestFromDevice(t *testing.T) {
	tests := []struct {
		name  string
		p     image.Point
		scale float64
		want  image.Point
	}{
		{"unscaled", image.Pt(1150, 10), 1, image.Pt(1150, 10)},
		{"unknown scale", image.Pt(1150, 10), 0, image.Pt(1150, 10)},
		{"150%", image.Pt(1150, 10), 1.5, image.Pt(766, 6)},
		{"200%", image.Pt(1599, 63), 2, image.Pt(799, 31)},
		{"above client", image.Pt(10, -3), 1.5, image.Pt(6, -2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromDevice(tt.p, tt.scale); got != tt.want {
				t.Errorf("FromDevice(%v, %v) = %v, want %v", tt.p, tt.scale, got, tt.want)
			}
		})
	}
}

func TestHighDPIButtonBlocksMouse(t *testing.T) {
	c := Layout(800, 600, 1, true, false)
	physical := image.Pt(1150, 10)

	if n := scene.FindMouseBlockingControl(c.Root, FromDevice(physical, 1.5), -1); n == nil {
		t.Fatal("close button not found at 150% scale")
	} else if b := n.(*scene.Box); b.Name != "close" {
		t.Errorf("blocking control = %q, want close", b.Name)
	}
	if n := scene.FindMouseBlockingControl(c.Root, physical, -1); n != nil {
		t.Errorf("unconverted point hit %v", n)
	}
}

func TestTextSize(t *testing.T) {
	tests := []struct {
		scale float64
		want  float64
	}{
		{1, FontSize},
		{2, 2 * FontSize},
		{1.25, 1.25 * FontSize},
		{0, FontSize},
	}
	for _, tt := range tests {
		if got := TextSize(tt.scale); got != tt.want {
			t.Errorf("TextSize(%v) = %v, want %v", tt.scale, got, tt.want)
		}
	}
}

func TestCycles(t *testing.T) {
	if got := NextBackdrop(style.BackdropTabbed); got != style.BackdropSolid {
		t.Errorf("NextBackdrop(tabbed) = %v, want solid", got)
	}
	if got := NextBackdrop(style.BackdropAcrylic); got != style.BackdropMica {
		t.Errorf("NextBackdrop(acrylic) = %v, want mica", got)
	}
	if got := NextFrame(style.FrameCustom); got != style.FrameNone {
		t.Errorf("NextFrame(custom) = %v, want none", got)
	}
	if got := NextCorner(style.CornerRoundSmall); got != style.CornerDefault {
		t.Errorf("NextCorner(round small) = %v, want default", got)
	}

	c := RandomBase(0.5)
	if c.A != 0.5 {
		t.Errorf("RandomBase alpha = %v, want 0.5", c.A)
	}
	for _, v := range []float64{c.R, c.G, c.B} {
		if v < 0 || v >= 1 {
			t.Errorf("RandomBase channel %v out of range", v)
		}
	}
}
