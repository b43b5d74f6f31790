// Package host adapts the Ebiten window to the engine side of the native
// integration: window modes, content scale, clear color and handle lookup.
package host

import (
	"fmt"
	"sync"

	"AcrylicWindow/internal/logger"
	"AcrylicWindow/internal/native"
	"AcrylicWindow/internal/style"

	"github.com/hajimehoshi/ebiten/v2"
)

// windowID is the id of the single Ebiten window once it runs.
const windowID = 1

// Frames to keep retrying the macOS Spaces setup.
const maxSpacesRetryFrames = 120

// Host is the Ebiten window. Ebiten has one window per process, so there is
// no per-window state besides what is cached here.
type Host struct {
	title string

	mu          sync.Mutex
	running     bool
	quit        bool
	scale       float64
	deviceScale float64
	transparent bool
	clear       style.Color
	redraw      bool
	pinned      bool
	spacesLeft  int
}

// New returns the host for a window titled title.
func New(title string) *Host {
	return &Host{title: title, scale: 1, deviceScale: 1, clear: style.Black, redraw: true}
}

// Title is the window title, also used to find the OS handle.
func (h *Host) Title() string { return h.title }

// Start marks the window as realized. Call it from the first Update.
func (h *Host) Start() {
	h.mu.Lock()
	h.running = true
	h.mu.Unlock()
}

// Tick runs deferred window work once per frame.
func (h *Host) Tick() {
	dsf := 1.0
	if m := ebiten.Monitor(); m != nil {
		dsf = m.DeviceScaleFactor()
	}

	h.mu.Lock()
	h.deviceScale = dsf
	retry := h.spacesLeft > 0
	if retry {
		h.spacesLeft--
	}
	pinned := h.pinned
	h.mu.Unlock()

	if retry && setAllSpaces(pinned) {
		logger.Debug("spaces behavior applied", "pinned", pinned)
		h.mu.Lock()
		h.spacesLeft = 0
		h.mu.Unlock()
	}
}

func (h *Host) WindowID() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.running {
		return native.InvalidWindowID
	}
	return windowID
}

// NativeHandle implements native.DisplayServer for the Ebiten window.
func (h *Host) NativeHandle(id int) (uintptr, error) {
	if id != windowID {
		return 0, fmt.Errorf("unknown window id %d", id)
	}
	return findWindow(h.title)
}

func (h *Host) Mode() native.Mode {
	switch {
	case ebiten.IsFullscreen():
		return native.ModeFullscreen
	case ebiten.IsWindowMinimized():
		return native.ModeMinimized
	case ebiten.IsWindowMaximized():
		return native.ModeMaximized
	default:
		return native.ModeWindowed
	}
}

func (h *Host) SetMode(m native.Mode) {
	logger.Debug("set window mode", "mode", m)
	switch m {
	case native.ModeFullscreen:
		ebiten.SetFullscreen(true)
	case native.ModeMinimized:
		ebiten.MinimizeWindow()
	case native.ModeMaximized:
		ebiten.SetFullscreen(false)
		ebiten.MaximizeWindow()
	default:
		ebiten.SetFullscreen(false)
		ebiten.RestoreWindow()
	}
}

// Quit makes the next Update end the game loop.
func (h *Host) Quit() {
	h.mu.Lock()
	h.quit = true
	h.mu.Unlock()
}

// Quitting reports whether Quit was called.
func (h *Host) Quitting() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.quit
}

func (h *Host) SetContentScale(scale float64) {
	h.mu.Lock()
	h.scale = scale
	h.redraw = true
	h.mu.Unlock()
}

// ContentScale is the factor the content is drawn at.
func (h *Host) ContentScale() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.scale
}

// DeviceScale is the monitor's physical pixels per layout pixel as of the
// last Tick. It is safe to call from the window procedure.
func (h *Host) DeviceScale() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.deviceScale
}

// SetAlwaysOnTop floats the window. On macOS a pinned window also joins
// every Space.
func (h *Host) SetAlwaysOnTop(on bool) {
	ebiten.SetWindowFloating(on)
	h.mu.Lock()
	h.pinned = on
	h.spacesLeft = maxSpacesRetryFrames
	h.mu.Unlock()
}

// SetTransparentBackground selects whether the clear color keeps its alpha.
// The framebuffer itself is created transparent.
func (h *Host) SetTransparentBackground(on bool) {
	h.mu.Lock()
	h.transparent = on
	h.redraw = true
	h.mu.Unlock()
}

func (h *Host) SetClearColor(c style.Color) {
	h.mu.Lock()
	h.clear = c
	h.redraw = true
	h.mu.Unlock()
}

// Background is the color the frame is cleared to.
func (h *Host) Background() style.Color {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.transparent {
		return h.clear.Opaque()
	}
	return h.clear
}

func (h *Host) QueueRedraw() {
	h.mu.Lock()
	h.redraw = true
	h.mu.Unlock()
}

// TakeRedraw reports and clears a pending redraw request.
func (h *Host) TakeRedraw() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	r := h.redraw
	h.redraw = false
	return r
}

var (
	_ native.Host          = (*Host)(nil)
	_ native.DisplayServer = (*Host)(nil)
)
