package acrylic

import (
	"AcrylicWindow/internal/logger"
	"AcrylicWindow/internal/native"
	"AcrylicWindow/internal/style"
)

func (w *Window) TextSize() float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.p.TextSize
}

func (w *Window) AlwaysOnTop() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.p.AlwaysOnTop
}

func (w *Window) DragByContent() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.p.DragByContent
}

func (w *Window) DragByRightClick() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.p.DragByRightClick
}

func (w *Window) DimStrength() float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.p.DimStrength
}

func (w *Window) DimOnDeactivate() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.p.DimOnDeactivate
}

func (w *Window) Frame() style.Frame {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.p.Frame
}

func (w *Window) Backdrop() style.Backdrop {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.p.Backdrop
}

func (w *Window) Corner() style.Corner {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.p.Corner
}

func (w *Window) AutohideTitleBar() style.Autohide {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.p.AutohideTitleBar
}

func (w *Window) AccentTitleBar() style.Accent {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.p.AccentTitleBar
}

func (w *Window) AutoColors() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.p.AutoColors
}

func (w *Window) BaseColor() style.Color {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.p.BaseColor
}

func (w *Window) BorderColor() style.Color {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.p.BorderColor
}

func (w *Window) TitleBarColor() style.Color {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.p.TitleBarColor
}

func (w *Window) TextColor() style.Color {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.p.TextColor
}

func (w *Window) ClearColor() style.Color {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.p.ClearColor
}

func (w *Window) SetTextSize(v float64) {
	set(w, "text_size", &w.p.TextSize, v, native.Window.SetTextScale)
}

func (w *Window) SetAlwaysOnTop(v bool) {
	set(w, "always_on_top", &w.p.AlwaysOnTop, v, native.Window.SetAlwaysOnTop)
}

func (w *Window) SetDragByContent(v bool)    { store(w, &w.p.DragByContent, v) }
func (w *Window) SetDragByRightClick(v bool) { store(w, &w.p.DragByRightClick, v) }
func (w *Window) SetDimStrength(v float64)   { store(w, &w.p.DimStrength, v) }
func (w *Window) SetDimOnDeactivate(v bool)  { store(w, &w.p.DimOnDeactivate, v) }

func (w *Window) SetAutohideTitleBar(v style.Autohide) { store(w, &w.p.AutohideTitleBar, v) }
func (w *Window) SetAccentTitleBar(v style.Accent)     { store(w, &w.p.AccentTitleBar, v) }

// SetFrame commits the frame before asking the OS to recompute the non-client
// area: the interceptor reads it while answering that request. The previous
// frame comes back if the request fails.
func (w *Window) SetFrame(v style.Frame) {
	w.mu.Lock()
	prev := w.p.Frame
	if prev == v {
		w.mu.Unlock()
		return
	}
	w.p.Frame = v
	nat, ready := w.nat, w.ready
	w.mu.Unlock()

	if !ready {
		return
	}
	if err := nat.SetFrame(v); err != nil {
		logger.Error("failed to set property", "property", "frame", "value", v, "err", err)
		w.mu.Lock()
		w.p.Frame = prev
		w.mu.Unlock()
	}
}

func (w *Window) SetBackdrop(v style.Backdrop) {
	set(w, "backdrop", &w.p.Backdrop, v, native.Window.SetBackdrop)
}

func (w *Window) SetCorner(v style.Corner) {
	set(w, "corner", &w.p.Corner, v, native.Window.SetCorner)
}

// The four derived colors ignore direct assignment while auto colors are on.

func (w *Window) SetBorderColor(v style.Color) {
	if w.AutoColors() {
		return
	}
	set(w, "border_color", &w.p.BorderColor, v, native.Window.SetBorderColor)
}

func (w *Window) SetTitleBarColor(v style.Color) {
	if w.AutoColors() {
		return
	}
	set(w, "title_bar_color", &w.p.TitleBarColor, v, native.Window.SetTitleBarColor)
}

func (w *Window) SetTextColor(v style.Color) {
	if w.AutoColors() {
		return
	}
	set(w, "text_color", &w.p.TextColor, v, native.Window.SetTextColor)
}

func (w *Window) SetClearColor(v style.Color) {
	if w.AutoColors() {
		return
	}
	set(w, "clear_color", &w.p.ClearColor, v, native.Window.SetClearColor)
}

func (w *Window) SetAutoColors(v bool) {
	w.mu.Lock()
	if w.p.AutoColors == v {
		w.mu.Unlock()
		return
	}
	w.p.AutoColors = v
	if v {
		w.p.deriveColors()
	}
	w.mu.Unlock()

	if v {
		w.pushColors()
	}
}

// SetBaseColor redraws the background and, with auto colors, re-derives and
// pushes the other colors.
func (w *Window) SetBaseColor(v style.Color) {
	w.mu.Lock()
	if w.p.BaseColor == v {
		w.mu.Unlock()
		return
	}
	w.p.BaseColor = v
	auto := w.p.AutoColors
	if auto {
		w.p.deriveColors()
	}
	w.mu.Unlock()

	if w.opts.Host != nil {
		w.opts.Host.QueueRedraw()
	}
	if auto {
		w.pushColors()
	}
}

func (w *Window) pushColors() {
	nat, ok := w.current()
	if !ok {
		return
	}
	p := w.Properties()
	report := func(what string, err error) {
		if err != nil {
			logger.Error("failed to set property", "property", what, "err", err)
		}
	}
	report("border_color", nat.SetBorderColor(p.BorderColor))
	report("title_bar_color", nat.SetTitleBarColor(p.TitleBarColor))
	report("text_color", nat.SetTextColor(p.TextColor))
	report("clear_color", nat.SetClearColor(p.ClearColor))
}
