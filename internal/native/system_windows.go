//go:build windows

package native

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                 = windows.NewLazySystemDLL("user32.dll")
	procSetWindowLongPtrW  = user32.NewProc("SetWindowLongPtrW")
	procGetWindowLongPtrW  = user32.NewProc("GetWindowLongPtrW")
	procCallWindowProcW    = user32.NewProc("CallWindowProcW")
	procDefWindowProcW     = user32.NewProc("DefWindowProcW")
	procGetWindowPlacement = user32.NewProc("GetWindowPlacement")
	procAdjustWindowRectEx = user32.NewProc("AdjustWindowRectEx")
	procScreenToClient     = user32.NewProc("ScreenToClient")
	procClientToScreen     = user32.NewProc("ClientToScreen")
	procGetWindowRect      = user32.NewProc("GetWindowRect")
	procSetWindowPos       = user32.NewProc("SetWindowPos")
	procShowWindow         = user32.NewProc("ShowWindow")
	procPostMessageW       = user32.NewProc("PostMessageW")
	procGetAsyncKeyState   = user32.NewProc("GetAsyncKeyState")

	kernel32         = windows.NewLazySystemDLL("kernel32.dll")
	procSetLastError = kernel32.NewProc("SetLastError")

	dwmapi                    = windows.NewLazySystemDLL("dwmapi.dll")
	procDwmSetWindowAttribute = dwmapi.NewProc("DwmSetWindowAttribute")
	procDwmGetWindowAttribute = dwmapi.NewProc("DwmGetWindowAttribute")
)

const (
	gwlpWndProc = ^uintptr(3)  // -4
	gwlStyle    = ^uintptr(15) // -16
)

type windowPlacement struct {
	Length         uint32
	Flags          uint32
	ShowCmd        uint32
	MinPosition    Point
	MaxPosition    Point
	NormalPosition Rect
}

// winSystem calls user32 and dwmapi directly.
type winSystem struct{}

// clearLastError resets the thread error so a zero return from a
// Get/SetWindowLongPtr call can be told apart from a zero value.
func clearLastError() {
	procSetLastError.Call(0)
}

// lastError turns the error of a BOOL-returning call into a usable value.
func lastError(name string, err error) error {
	if errno, ok := err.(syscall.Errno); ok && errno != 0 {
		return fmt.Errorf("%s: %w", name, errno)
	}
	return fmt.Errorf("%s failed", name)
}

func hresultError(name string, hr uintptr) error {
	return fmt.Errorf("%s: HRESULT %#x", name, uint32(hr))
}

func (winSystem) SetWindowProc(h Handle, proc uintptr) (uintptr, error) {
	clearLastError()
	prev, _, err := procSetWindowLongPtrW.Call(uintptr(h), gwlpWndProc, proc)
	if prev == 0 {
		return 0, lastError("SetWindowLongPtr(GWLP_WNDPROC)", err)
	}
	return prev, nil
}

func (winSystem) CallWindowProc(prev uintptr, h Handle, msg uint32, wParam, lParam uintptr) uintptr {
	ret, _, _ := procCallWindowProcW.Call(prev, uintptr(h), uintptr(msg), wParam, lParam)
	return ret
}

func (winSystem) DefWindowProc(h Handle, msg uint32, wParam, lParam uintptr) uintptr {
	ret, _, _ := procDefWindowProcW.Call(uintptr(h), uintptr(msg), wParam, lParam)
	return ret
}

func (winSystem) ShowState(h Handle) (uint32, error) {
	var wp windowPlacement
	wp.Length = uint32(unsafe.Sizeof(wp))
	ok, _, err := procGetWindowPlacement.Call(uintptr(h), uintptr(unsafe.Pointer(&wp)))
	if ok == 0 {
		return 0, lastError("GetWindowPlacement", err)
	}
	return wp.ShowCmd, nil
}

func (winSystem) Style(h Handle) (uint32, error) {
	clearLastError()
	ws, _, err := procGetWindowLongPtrW.Call(uintptr(h), gwlStyle)
	if ws == 0 {
		return 0, lastError("GetWindowLongPtr(GWL_STYLE)", err)
	}
	return uint32(ws), nil
}

func (winSystem) AdjustWindowRect(ws uint32) (Rect, error) {
	var r Rect
	ok, _, err := procAdjustWindowRectEx.Call(uintptr(unsafe.Pointer(&r)), uintptr(ws), 0, 0)
	if ok == 0 {
		return Rect{}, lastError("AdjustWindowRectEx", err)
	}
	return r, nil
}

func (winSystem) ScreenToClient(h Handle, p Point) (Point, error) {
	ok, _, err := procScreenToClient.Call(uintptr(h), uintptr(unsafe.Pointer(&p)))
	if ok == 0 {
		return Point{}, lastError("ScreenToClient", err)
	}
	return p, nil
}

func (winSystem) ClientToScreen(h Handle, p Point) (Point, error) {
	ok, _, err := procClientToScreen.Call(uintptr(h), uintptr(unsafe.Pointer(&p)))
	if ok == 0 {
		return Point{}, lastError("ClientToScreen", err)
	}
	return p, nil
}

func (winSystem) WindowRect(h Handle) (Rect, error) {
	var r Rect
	ok, _, err := procGetWindowRect.Call(uintptr(h), uintptr(unsafe.Pointer(&r)))
	if ok == 0 {
		return Rect{}, lastError("GetWindowRect", err)
	}
	return r, nil
}

func (winSystem) RightButtonDown() bool {
	state, _, _ := procGetAsyncKeyState.Call(vkRButton)
	return state&0x8000 != 0
}

// CalcSizeRect returns rgrc[0] of the NCCALCSIZE_PARAMS behind lParam.
func (winSystem) CalcSizeRect(lParam uintptr) *Rect {
	if lParam == 0 {
		return nil
	}
	// lParam points to OS-owned NCCALCSIZE_PARAMS memory, valid for the
	// duration of the message; rgrc[0] is its first field.
	return (*Rect)(unsafe.Pointer(lParam))
}

func (winSystem) SetWindowPos(h Handle, after uintptr, x, y, cx, cy int32, flags uint32) error {
	ok, _, err := procSetWindowPos.Call(
		uintptr(h),
		after,
		uintptr(x), uintptr(y),
		uintptr(cx), uintptr(cy),
		uintptr(flags),
	)
	if ok == 0 {
		return lastError("SetWindowPos", err)
	}
	return nil
}

// ShowWindow returns the previous visibility, not a status, so it cannot
// fail from the caller's point of view.
func (winSystem) ShowWindow(h Handle, cmd int32) error {
	procShowWindow.Call(uintptr(h), uintptr(cmd))
	return nil
}

func (winSystem) PostMessage(h Handle, msg uint32, wParam, lParam uintptr) error {
	ok, _, err := procPostMessageW.Call(uintptr(h), uintptr(msg), wParam, lParam)
	if ok == 0 {
		return lastError("PostMessage", err)
	}
	return nil
}

func (winSystem) DwmAttribute(h Handle, attr uint32) (uint32, error) {
	var v uint32
	hr, _, _ := procDwmGetWindowAttribute.Call(uintptr(h), uintptr(attr), uintptr(unsafe.Pointer(&v)), unsafe.Sizeof(v))
	if int32(hr) < 0 {
		return 0, hresultError("DwmGetWindowAttribute", hr)
	}
	return v, nil
}

func (winSystem) SetDwmAttribute(h Handle, attr uint32, value uint32) error {
	hr, _, _ := procDwmSetWindowAttribute.Call(uintptr(h), uintptr(attr), uintptr(unsafe.Pointer(&value)), unsafe.Sizeof(value))
	if int32(hr) < 0 {
		return hresultError("DwmSetWindowAttribute", hr)
	}
	return nil
}
