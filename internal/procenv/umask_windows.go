//go:build windows
// +build windows

package procenv

// Windows has no umask; symbolic specifications see no suppressed
// bits.
func processUmask() uint32 {
	return 0
}
