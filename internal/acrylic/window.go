// Package acrylic is the logical window: it keeps the style properties of
// one engine window and pushes them to the native integration once the
// window is realized.
package acrylic

import (
	"errors"
	"image"
	"sync"

	"AcrylicWindow/internal/logger"
	"AcrylicWindow/internal/native"
	"AcrylicWindow/internal/scene"
)

const (
	dimInDuration  = 0.4
	dimOutDuration = 0.2
	// Strengths at or below this do not dim.
	minDimStrength = 0.0001
)

var errNotRealized = errors.New("window is not realized")

// NativeFactory builds the native integration for a window. native.New is
// the default.
type NativeFactory func(host native.Host, ds native.DisplayServer, owner native.Owner) native.Window

// Options wires a Window to its engine.
type Options struct {
	Host    native.Host
	Display native.DisplayServer
	// Root returns the content tree used for popup and mouse-blocking
	// queries. May be nil.
	Root func() scene.Node
	// MaxDepth limits the mouse-blocking search to that many levels below
	// the root. Zero searches the whole tree.
	MaxDepth int
	// ContentPoint maps a client point from the window procedure into the
	// content tree's coordinates. Nil keeps the point as is.
	ContentPoint func(image.Point) image.Point
	Native       NativeFactory
}

// Window is the logical window facade.
type Window struct {
	opts Options

	mu    sync.RWMutex
	p     Properties
	nat   native.Window
	ready bool
	dim   tween
}

// New returns a window with the given initial properties. Native effects are
// deferred until Ready.
func New(opts Options, props Properties) *Window {
	if opts.Native == nil {
		opts.Native = native.New
	}
	if props.AutoColors {
		props.deriveColors()
	}
	return &Window{opts: opts, p: props}
}

// Properties returns a snapshot of the current properties.
func (w *Window) Properties() Properties {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.p
}

// Ready is called when the engine window has a valid native handle.
func (w *Window) Ready() {
	if w.Realized() {
		return
	}
	nat := w.opts.Native(w.opts.Host, w.opts.Display, w)
	if nat == nil || !nat.Valid() {
		logger.Error("failed to init native window")
		return
	}
	// The subclass has to be in place before styles are applied: the frame
	// change is answered by the interceptor.
	nat.OnReady()

	w.mu.Lock()
	w.nat = nat
	w.ready = true
	w.mu.Unlock()

	w.applyStyle()
}

// Exit is called before the engine window goes away.
func (w *Window) Exit() {
	w.mu.Lock()
	nat := w.nat
	w.nat = nil
	w.ready = false
	w.mu.Unlock()

	if nat != nil {
		nat.OnExit()
	}
}

// Realized reports whether native effects are live.
func (w *Window) Realized() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.ready
}

func (w *Window) current() (native.Window, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.nat, w.ready
}

func (w *Window) applyStyle() {
	nat, ok := w.current()
	if !ok {
		return
	}
	p := w.Properties()
	report := func(what string, err error) {
		if err != nil {
			logger.Error("failed to apply style", "property", what, "err", err)
		}
	}
	report("text_size", nat.SetTextScale(p.TextSize))
	report("always_on_top", nat.SetAlwaysOnTop(p.AlwaysOnTop))
	report("backdrop", nat.SetBackdrop(p.Backdrop))
	report("corner", nat.SetCorner(p.Corner))
	report("border_color", nat.SetBorderColor(p.BorderColor))
	report("title_bar_color", nat.SetTitleBarColor(p.TitleBarColor))
	report("text_color", nat.SetTextColor(p.TextColor))
	report("clear_color", nat.SetClearColor(p.ClearColor))
	report("frame", nat.SetFrame(p.Frame))
}

// set stores v in *field. Once realized the value is pushed first and only
// committed when the push succeeds.
func set[T comparable](w *Window, name string, field *T, v T, push func(native.Window, T) error) {
	w.mu.Lock()
	if *field == v {
		w.mu.Unlock()
		return
	}
	if !w.ready {
		*field = v
		w.mu.Unlock()
		return
	}
	nat := w.nat
	w.mu.Unlock()

	if err := push(nat, v); err != nil {
		logger.Error("failed to set property", "property", name, "value", v, "err", err)
		return
	}

	w.mu.Lock()
	*field = v
	w.mu.Unlock()
}

// store sets a property that has no native side.
func store[T comparable](w *Window, field *T, v T) {
	w.mu.Lock()
	*field = v
	w.mu.Unlock()
}

// Commands

func (w *Window) Minimize() error {
	nat, ok := w.current()
	if !ok {
		return errNotRealized
	}
	return nat.Minimize()
}

// Maximize maximizes the window, or restores it when toggle is set and it is
// already maximized.
func (w *Window) Maximize(toggle bool) error {
	nat, ok := w.current()
	if !ok {
		return errNotRealized
	}
	return nat.Maximize(toggle)
}

func (w *Window) Close() error {
	nat, ok := w.current()
	if !ok {
		return errNotRealized
	}
	return nat.Close()
}

// Dim fades the dim overlay in or out and darkens the border to match. A
// window pinned on top never dims.
func (w *Window) Dim(on bool) {
	w.mu.Lock()
	shouldDim := on && w.p.DimStrength > minDimStrength && !w.p.AlwaysOnTop
	border := w.p.BorderColor
	if shouldDim {
		w.dim.start(w.p.DimStrength, dimInDuration)
		border = border.Darkened(w.p.DimStrength)
	} else {
		w.dim.start(0, dimOutDuration)
	}
	nat, ready := w.nat, w.ready
	w.mu.Unlock()

	if !ready {
		return
	}
	if err := nat.SetBorderColor(border); err != nil {
		logger.Error("failed to set dim border color", "err", err)
	}
}

// Update advances the dim animation by dt seconds.
func (w *Window) Update(dt float64) {
	w.mu.Lock()
	w.dim.advance(dt)
	w.mu.Unlock()
}

// DimAlpha is the current opacity of the dim overlay.
func (w *Window) DimAlpha() float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.dim.value()
}

// Content queries

func (w *Window) root() scene.Node {
	if w.opts.Root == nil {
		return nil
	}
	return w.opts.Root()
}

func (w *Window) HasOpenPopup() bool {
	return scene.HasOpenPopup(w.root())
}

func (w *Window) BlocksMouse(p image.Point) bool {
	if w.opts.ContentPoint != nil {
		p = w.opts.ContentPoint(p)
	}
	depth := -1
	if w.opts.MaxDepth > 0 {
		depth = w.opts.MaxDepth - 1
	}
	return scene.FindMouseBlockingControl(w.root(), p, depth) != nil
}

var _ native.Owner = (*Window)(nil)
