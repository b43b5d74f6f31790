package display

import (
	"errors"
	"image"
	"testing"
)

func TestCenter(t *testing.T) {
	displays := []Display{
		{Index: 0, Bounds: image.Rect(0, 0, 1920, 1080), Primary: true},
		{Index: 1, Bounds: image.Rect(1920, -200, 3200, 824)},
	}
	tests := []struct {
		name  string
		index int
		w, h  int
		want  image.Point
	}{
		{"primary", 0, 640, 400, image.Pt(640, 340)},
		{"secondary", 1, 640, 400, image.Pt(2240, 112)},
		{"out of range", 5, 640, 400, image.Pt(640, 340)},
		{"larger than display", 1, 2000, 2000, image.Pt(1920, -200)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Center(displays, tt.index, tt.w, tt.h)
			if err != nil {
				t.Fatalf("Center: %v", err)
			}
			if got != tt.want {
				t.Errorf("Center = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := Center(nil, 0, 1, 1); !errors.Is(err, ErrNoDisplay) {
		t.Errorf("Center without displays: %v", err)
	}
}
