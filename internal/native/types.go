package native

// Handle is an opaque OS window handle (HWND on Windows).
type Handle uintptr

// Point is a POINT-compatible pair.
type Point struct {
	X, Y int32
}

// Rect is laid out like the Win32 RECT so it can alias OS memory.
type Rect struct {
	Left, Top, Right, Bottom int32
}

// Window messages the interceptor looks at.
const (
	wmClose          = 0x0010
	wmNCDestroy      = 0x0082
	wmNCCalcSize     = 0x0083
	wmNCHitTest      = 0x0084
	wmNCActivate     = 0x0086
	wmNCRButtonDown  = 0x00A4
	wmNCRButtonUp    = 0x00A5
	wmKeyUp          = 0x0101
	wmSysKeyUp       = 0x0105
	wmRButtonDown    = 0x0204
	wmRButtonUp      = 0x0205
	wsCaption        = 0x00C00000
	vkRButton        = 0x02
	vkReturn         = 0x0D
	vkF11            = 0x7A
	keyExtendedBit   = 1 << 24
	keyAltContextBit = 1 << 29
)

// Hit-test codes.
const (
	htClient  = 1
	htCaption = 2
	htTop     = 12
)

// Show commands and placement states.
const (
	swShowMaximized = 3
	swMaximize      = 3
	swMinimize      = 6
	swRestore       = 9
)

// SetWindowPos flags and z-order sentinels.
const (
	swpNoSize       = 0x0001
	swpNoMove       = 0x0002
	swpNoZOrder     = 0x0004
	swpNoActivate   = 0x0010
	swpFrameChanged = 0x0020

	hwndTopMost   = ^uintptr(0) // -1
	hwndNoTopMost = ^uintptr(1) // -2
)

// DWM window attributes and values (Windows 11 22H2+).
const (
	dwmwaWindowCornerPreference = 33
	dwmwaBorderColor            = 34
	dwmwaCaptionColor           = 35
	dwmwaTextColor              = 36
	dwmwaSystemBackdropType     = 38

	dwmsbtAuto            = 0
	dwmsbtNone            = 1
	dwmsbtMainWindow      = 2
	dwmsbtTransientWindow = 3
	dwmsbtTabbedWindow    = 4

	dwmwcpDefault    = 0
	dwmwcpDoNotRound = 1
	dwmwcpRound      = 2
	dwmwcpRoundSmall = 3
)

// pointFromLParam unpacks signed 16-bit coordinates, like GET_X_LPARAM and
// GET_Y_LPARAM.
func pointFromLParam(lParam uintptr) Point {
	return Point{
		X: int32(int16(lParam & 0xffff)),
		Y: int32(int16((lParam >> 16) & 0xffff)),
	}
}

// MakeLParam packs coordinates the way the OS does for mouse messages.
func MakeLParam(x, y int32) uintptr {
	return uintptr(uint16(int16(x))) | uintptr(uint16(int16(y)))<<16
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
