package native

import "AcrylicWindow/internal/style"

type fakeHost struct {
	id          int
	mode        Mode
	modes       []Mode
	quit        bool
	scale       float64
	onTop       bool
	transparent bool
	clear       style.Color
	redraws     int
}

func (h *fakeHost) WindowID() int                    { return h.id }
func (h *fakeHost) Mode() Mode                       { return h.mode }
func (h *fakeHost) Quit()                            { h.quit = true }
func (h *fakeHost) SetContentScale(scale float64)    { h.scale = scale }
func (h *fakeHost) SetAlwaysOnTop(on bool)           { h.onTop = on }
func (h *fakeHost) SetTransparentBackground(on bool) { h.transparent = on }
func (h *fakeHost) SetClearColor(c style.Color)      { h.clear = c }
func (h *fakeHost) QueueRedraw()                     { h.redraws++ }

func (h *fakeHost) SetMode(m Mode) {
	h.mode = m
	h.modes = append(h.modes, m)
}

type fakeDisplay struct {
	handle uintptr
	err    error
}

func (d fakeDisplay) NativeHandle(int) (uintptr, error) { return d.handle, d.err }
