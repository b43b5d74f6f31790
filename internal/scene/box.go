package scene

import "image"

// Box is a plain Node for hosts that keep their own widget state.
type Box struct {
	Name     string
	NodeKind Kind
	Hidden   bool
	Bounds   image.Rectangle
	Filter   MouseFilter
	Nodes    []Node
}

func (b *Box) Kind() Kind               { return b.NodeKind }
func (b *Box) Visible() bool            { return !b.Hidden }
func (b *Box) Rect() image.Rectangle    { return b.Bounds }
func (b *Box) MouseFilter() MouseFilter { return b.Filter }
func (b *Box) Children() []Node         { return b.Nodes }

// Add appends children and returns b.
func (b *Box) Add(children ...Node) *Box {
	b.Nodes = append(b.Nodes, children...)
	return b
}
