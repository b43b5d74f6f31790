// Package scene answers the two questions the native layer asks about the
// engine's content tree: is a popup open, and does a control under the cursor
// consume mouse input.
package scene

import "image"

// Kind is the closed set of node kinds the queries distinguish.
type Kind int

const (
	KindOther Kind = iota
	KindControl
	KindPopup
)

// MouseFilter mirrors how a control treats mouse events.
type MouseFilter int

const (
	MouseStop MouseFilter = iota
	MousePass
	MouseIgnore
)

// Node is one element of the engine's content tree.
type Node interface {
	Kind() Kind
	Visible() bool
	// Rect is the node's global rectangle in client coordinates.
	Rect() image.Rectangle
	MouseFilter() MouseFilter
	Children() []Node
}

// HasOpenPopup reports whether any visible popup hangs under root. Hidden
// controls hide their subtrees.
func HasOpenPopup(root Node) bool {
	if root == nil {
		return false
	}
	for _, child := range root.Children() {
		switch child.Kind() {
		case KindPopup:
			if child.Visible() {
				return true
			}
		case KindControl:
			if child.Visible() && HasOpenPopup(child) {
				return true
			}
		}
	}
	return false
}

// FindMouseBlockingControl returns the first control under p whose mouse
// filter stops input. The root itself is never returned. depth < 0 searches
// the whole tree; otherwise depth 0 means direct children only.
func FindMouseBlockingControl(root Node, p image.Point, depth int) Node {
	if root == nil {
		return nil
	}
	for _, child := range root.Children() {
		if child.Kind() != KindControl {
			continue
		}
		if n := findBlocking(child, p, depth); n != nil {
			return n
		}
	}
	return nil
}

func findBlocking(n Node, p image.Point, depth int) Node {
	if !n.Visible() {
		return nil
	}
	if p.In(n.Rect()) && n.MouseFilter() == MouseStop {
		return n
	}
	if depth == 0 {
		return nil
	}
	next := -1
	if depth > 0 {
		next = depth - 1
	}
	for _, child := range n.Children() {
		if child.Kind() != KindControl {
			continue
		}
		if b := findBlocking(child, p, next); b != nil {
			return b
		}
	}
	return nil
}
