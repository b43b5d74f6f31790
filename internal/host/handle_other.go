//go:build !windows

package host

import "errors"

var errNoNativeHandle = errors.New("native handles are only available on windows")

func findWindow(string) (uintptr, error) {
	return 0, errNoNativeHandle
}
