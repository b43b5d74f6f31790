package native

import (
	"errors"
	"image"
	"sync"

	"AcrylicWindow/internal/logger"
	"AcrylicWindow/internal/style"
)

const (
	// dragThreshold is the distance, per axis, a right-button press has to
	// travel before it moves the window.
	dragThreshold = 10
	// borderlessTopInset hides the thin resize border at the top.
	borderlessTopInset = 2
	// frameTopDivisor scales the top of the computed frame down: the OS
	// reports about -10 while -2 is enough to hide the thick top border.
	frameTopDivisor = 5
)

// defaultBorder is used whenever the frame cannot be computed.
var defaultBorder = Rect{Left: 5, Top: 5, Right: 5, Bottom: 5}

// rightClickDrag tracks the single window being moved with the right mouse
// button.
type rightClickDrag struct {
	active   bool
	handle   Handle
	anchor   Point
	moved    Point
	dragging bool
}

// Interceptor is the procedure installed on subclassed windows.
type Interceptor struct {
	sys System
	reg *Registry

	mu   sync.Mutex
	drag rightClickDrag
}

func newInterceptor(sys System, reg *Registry) *Interceptor {
	return &Interceptor{sys: sys, reg: reg}
}

// wndproc has the shape windows.NewCallback expects.
func (in *Interceptor) wndproc(hwnd, msg, wParam, lParam uintptr) uintptr {
	return in.Dispatch(Handle(hwnd), uint32(msg), wParam, lParam)
}

// Dispatch handles one message for h. Messages it does not consume are
// forwarded to the procedure captured at subclass time.
func (in *Interceptor) Dispatch(h Handle, msg uint32, wParam, lParam uintptr) uintptr {
	e, ok := in.reg.Lookup(h)
	if !ok {
		logger.Warn("message for unknown native handle", "hwnd", uintptr(h), "msg", msg)
		return in.sys.DefWindowProc(h, msg, wParam, lParam)
	}

	switch msg {
	case wmNCActivate:
		if in.onNCActivate(e, wParam) {
			return 1
		}

	case wmNCCalcSize:
		if in.onNCCalcSize(e, wParam, lParam) {
			return 0
		}

	case wmNCHitTest:
		if res := in.onNCHitTest(e, msg, wParam, lParam); res != htClient {
			return res
		}

	case wmKeyUp:
		if in.onKeyUp(e, wParam) {
			return 0
		}

	case wmSysKeyUp:
		if in.onSysKeyUp(e, wParam, lParam) {
			return 0
		}

	case wmRButtonDown:
		in.onRightButtonDown(e, lParam, false)

	case wmNCRButtonDown:
		in.onRightButtonDown(e, lParam, true)

	case wmRButtonUp, wmNCRButtonUp:
		in.onRightButtonUp(h)

	case wmNCDestroy:
		in.onRightButtonUp(h)
		if err := in.reg.Uninstall(h); err != nil && !errors.Is(err, ErrNotFound) {
			logger.Error("release subclass on destroy", "hwnd", uintptr(h), "err", err, "leak", true)
		} else if err == nil {
			logger.Warn("window destroyed before exit notification, subclass released", "hwnd", uintptr(h))
		}
	}

	return in.sys.CallWindowProc(e.Prev, h, msg, wParam, lParam)
}

func (in *Interceptor) onNCActivate(e Entry, wParam uintptr) bool {
	if !e.Owner.Frame().Chromeless() || !e.Owner.DimOnDeactivate() {
		return false
	}
	e.Owner.Dim(wParam == 0)
	return true
}

// frameBorder computes the non-client inset of the window without its
// caption. When maximized the full top is kept: the OS pushes the thick frame
// off screen and it has to be trimmed entirely.
func (in *Interceptor) frameBorder(h Handle) (Rect, bool) {
	show, err := in.sys.ShowState(h)
	if err != nil {
		logger.Debug("window placement unavailable", "hwnd", uintptr(h), "err", err)
		return Rect{}, false
	}
	ws, err := in.sys.Style(h)
	if err != nil || ws == 0 {
		logger.Debug("window style unavailable", "hwnd", uintptr(h), "err", err)
		return Rect{}, false
	}
	r, err := in.sys.AdjustWindowRect(ws &^ wsCaption)
	if err != nil {
		logger.Debug("adjust window rect failed", "hwnd", uintptr(h), "err", err)
		return Rect{}, false
	}
	top := r.Top / frameTopDivisor
	if show == swShowMaximized {
		top = r.Top
	}
	return Rect{Left: r.Left, Top: top, Right: r.Right, Bottom: r.Bottom}, true
}

func (in *Interceptor) onNCCalcSize(e Entry, wParam, lParam uintptr) bool {
	if wParam == 0 {
		return false
	}
	switch e.Owner.Frame() {
	case style.FrameBorderless:
		rc := in.sys.CalcSizeRect(lParam)
		if rc == nil {
			return false
		}
		rc.Top -= borderlessTopInset
		return true

	case style.FrameCustom:
		rc := in.sys.CalcSizeRect(lParam)
		if rc == nil {
			return false
		}
		border, ok := in.frameBorder(e.Handle)
		if !ok {
			logger.Debug("using default border for WM_NCCALCSIZE", "hwnd", uintptr(e.Handle))
			border = defaultBorder
		}
		rc.Top -= border.Top
		rc.Left -= border.Left
		rc.Right -= border.Right
		rc.Bottom -= border.Bottom
		return true
	}
	return false
}

func (in *Interceptor) onNCHitTest(e Entry, msg uint32, wParam, lParam uintptr) uintptr {
	h := e.Handle
	res := in.sys.DefWindowProc(h, msg, wParam, lParam)
	if res != htClient {
		return res
	}

	border, ok := in.frameBorder(h)
	if !ok {
		logger.Debug("using default border for WM_NCHITTEST", "hwnd", uintptr(h))
		border = defaultBorder
	}

	screen := pointFromLParam(lParam)
	client, err := in.sys.ScreenToClient(h, screen)
	if err != nil {
		logger.Debug("screen to client failed", "hwnd", uintptr(h), "err", err)
		return htClient
	}

	if client.Y < -border.Top {
		return htTop
	}

	owner := e.Owner
	if owner.DragByRightClick() && in.dragStep(h, screen) {
		return htCaption
	}

	canDrag := owner.DragByContent()
	if !canDrag {
		canDrag = in.inCaptionBand(h, client)
	}
	if canDrag {
		// A click that would start a drag has to reach the popup to close it.
		if owner.HasOpenPopup() {
			return htClient
		}
		if !owner.BlocksMouse(image.Pt(int(client.X), int(client.Y))) {
			return htCaption
		}
	}
	return htClient
}

// inCaptionBand reports whether a client point lies where the OS caption
// would be if the window had one.
func (in *Interceptor) inCaptionBand(h Handle, client Point) bool {
	ws, err := in.sys.Style(h)
	if err != nil {
		logger.Debug("window style unavailable", "hwnd", uintptr(h), "err", err)
		return false
	}
	caption, err := in.sys.AdjustWindowRect(ws | wsCaption)
	if err != nil {
		logger.Debug("adjust window rect failed", "hwnd", uintptr(h), "err", err)
		return false
	}
	return client.Y < -caption.Top
}

// dragStep advances the right-click drag for h and moves the window once the
// press has travelled past the threshold. It reports whether the window is
// being dragged.
func (in *Interceptor) dragStep(h Handle, screen Point) bool {
	held := in.sys.RightButtonDown()

	in.mu.Lock()
	d := &in.drag
	if !d.active || d.handle != h {
		in.mu.Unlock()
		return false
	}
	if !held {
		*d = rightClickDrag{}
		in.mu.Unlock()
		return false
	}
	delta := Point{X: screen.X - d.anchor.X, Y: screen.Y - d.anchor.Y}
	if !d.dragging {
		d.moved.X += abs32(delta.X)
		d.moved.Y += abs32(delta.Y)
		d.dragging = d.moved.X >= dragThreshold || d.moved.Y >= dragThreshold
	}
	d.anchor = screen
	dragging := d.dragging
	in.mu.Unlock()

	if !dragging {
		return false
	}
	r, err := in.sys.WindowRect(h)
	if err != nil {
		logger.Debug("window rect unavailable", "hwnd", uintptr(h), "err", err)
		return false
	}
	if err := in.sys.SetWindowPos(h, 0, r.Left+delta.X, r.Top+delta.Y, 0, 0, swpNoSize|swpNoZOrder); err != nil {
		logger.Debug("move window failed", "hwnd", uintptr(h), "err", err)
	}
	return true
}

func (in *Interceptor) onRightButtonDown(e Entry, lParam uintptr, screenSpace bool) {
	if !e.Owner.DragByRightClick() {
		return
	}
	p := pointFromLParam(lParam)
	if !screenSpace {
		var err error
		p, err = in.sys.ClientToScreen(e.Handle, p)
		if err != nil {
			logger.Error("client to screen failed", "hwnd", uintptr(e.Handle), "err", err)
			return
		}
	}
	in.mu.Lock()
	in.drag = rightClickDrag{active: true, handle: e.Handle, anchor: p}
	in.mu.Unlock()
}

func (in *Interceptor) onRightButtonUp(h Handle) {
	in.mu.Lock()
	if in.drag.handle == h {
		in.drag = rightClickDrag{}
	}
	in.mu.Unlock()
}

func (in *Interceptor) onKeyUp(e Entry, wParam uintptr) bool {
	if wParam != vkF11 {
		return false
	}
	in.toggleMaximize(e)
	return true
}

func (in *Interceptor) onSysKeyUp(e Entry, wParam, lParam uintptr) bool {
	if wParam != vkReturn {
		return false
	}
	if lParam&keyExtendedBit == 0 && lParam&keyAltContextBit == 0 {
		return false
	}
	in.toggleMaximize(e)
	return true
}

func (in *Interceptor) toggleMaximize(e Entry) {
	if err := e.Owner.Maximize(true); err != nil {
		logger.Error("maximize from keyboard", "hwnd", uintptr(e.Handle), "err", err)
	}
}

// dragging reports the drag state for tests and diagnostics.
func (in *Interceptor) dragging() rightClickDrag {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.drag
}
