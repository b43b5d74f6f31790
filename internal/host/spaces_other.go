//go:build !darwin

package host

// setAllSpaces is a no-op on non-macOS; only darwin uses Spaces.
func setAllSpaces(bool) bool {
	return true
}
