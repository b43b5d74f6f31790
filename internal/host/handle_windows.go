//go:build windows

package host

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32          = windows.NewLazySystemDLL("user32.dll")
	procFindWindowW = user32.NewProc("FindWindowW")
)

// findWindow looks the Ebiten window up by title and checks that it belongs
// to this process.
func findWindow(title string) (uintptr, error) {
	t, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, err
	}
	hwnd, _, _ := procFindWindowW.Call(0, uintptr(unsafe.Pointer(t)))
	if hwnd == 0 {
		return 0, fmt.Errorf("window %q not found", title)
	}
	var pid uint32
	if _, err := windows.GetWindowThreadProcessId(windows.HWND(hwnd), &pid); err != nil {
		return 0, fmt.Errorf("window %q owner: %w", title, err)
	}
	if pid != windows.GetCurrentProcessId() {
		return 0, fmt.Errorf("window %q belongs to process %d", title, pid)
	}
	return hwnd, nil
}
