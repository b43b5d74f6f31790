package scene

import (
	"image"
	"testing"
)

func control(r image.Rectangle, f MouseFilter, children ...Node) *Box {
	return (&Box{NodeKind: KindControl, Bounds: r, Filter: f}).Add(children...)
}

func TestHasOpenPopup(t *testing.T) {
	tests := []struct {
		name string
		root Node
		want bool
	}{
		{"nil root", nil, false},
		{"empty", &Box{}, false},
		{"visible popup", (&Box{}).Add(&Box{NodeKind: KindPopup}), true},
		{"hidden popup", (&Box{}).Add(&Box{NodeKind: KindPopup, Hidden: true}), false},
		{"nested popup", (&Box{}).Add(control(image.Rect(0, 0, 1, 1), MouseStop, &Box{NodeKind: KindPopup})), true},
		{"popup under hidden control", (&Box{}).Add(&Box{NodeKind: KindControl, Hidden: true, Nodes: []Node{&Box{NodeKind: KindPopup}}}), false},
		{"popup under other node", (&Box{}).Add((&Box{}).Add(&Box{NodeKind: KindPopup})), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasOpenPopup(tt.root); got != tt.want {
				t.Errorf("HasOpenPopup = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindMouseBlockingControl(t *testing.T) {
	button := control(image.Rect(10, 10, 50, 30), MouseStop)
	ignored := control(image.Rect(60, 10, 90, 30), MouseIgnore)
	panel := control(image.Rect(0, 0, 200, 100), MousePass, button, ignored)
	hidden := &Box{NodeKind: KindControl, Hidden: true, Bounds: image.Rect(0, 100, 200, 200)}
	root := (&Box{Bounds: image.Rect(0, 0, 200, 200)}).Add(panel, hidden)

	tests := []struct {
		name  string
		p     image.Point
		depth int
		want  Node
	}{
		{"button", image.Pt(20, 20), -1, button},
		{"ignored control", image.Pt(70, 20), -1, nil},
		{"passing panel", image.Pt(150, 50), -1, nil},
		{"hidden control", image.Pt(50, 150), -1, nil},
		{"depth zero", image.Pt(20, 20), 0, nil},
		{"depth one", image.Pt(20, 20), 1, button},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindMouseBlockingControl(root, tt.p, tt.depth); got != tt.want {
				t.Errorf("FindMouseBlockingControl = %v, want %v", got, tt.want)
			}
		})
	}

	if FindMouseBlockingControl(nil, image.Pt(0, 0), -1) != nil {
		t.Error("nil root returned a control")
	}
	stopRoot := &Box{Bounds: image.Rect(0, 0, 10, 10), Filter: MouseStop}
	if FindMouseBlockingControl(stopRoot, image.Pt(1, 1), -1) != nil {
		t.Error("root itself returned")
	}
}
