package native

// System is the slice of the OS window-manager API the integration uses.
// The Windows implementation lives in system_windows.go; tests supply fakes.
type System interface {
	// SetWindowProc swaps the window procedure of h and returns the one it
	// replaced.
	SetWindowProc(h Handle, proc uintptr) (prev uintptr, err error)
	CallWindowProc(prev uintptr, h Handle, msg uint32, wParam, lParam uintptr) uintptr
	DefWindowProc(h Handle, msg uint32, wParam, lParam uintptr) uintptr

	// ShowState returns the showCmd of the window placement.
	ShowState(h Handle) (uint32, error)
	Style(h Handle) (uint32, error)
	// AdjustWindowRect returns the frame a window of the given style adds
	// around an empty client rectangle.
	AdjustWindowRect(style uint32) (Rect, error)
	ScreenToClient(h Handle, p Point) (Point, error)
	ClientToScreen(h Handle, p Point) (Point, error)
	WindowRect(h Handle) (Rect, error)
	// RightButtonDown reports the asynchronous state of the right mouse
	// button.
	RightButtonDown() bool
	// CalcSizeRect returns the proposed client rectangle carried by a
	// WM_NCCALCSIZE message.
	CalcSizeRect(lParam uintptr) *Rect

	SetWindowPos(h Handle, after uintptr, x, y, cx, cy int32, flags uint32) error
	ShowWindow(h Handle, cmd int32) error
	PostMessage(h Handle, msg uint32, wParam, lParam uintptr) error
	DwmAttribute(h Handle, attr uint32) (uint32, error)
	SetDwmAttribute(h Handle, attr uint32, value uint32) error
}
