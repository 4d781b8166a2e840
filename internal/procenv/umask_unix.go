//go:build !windows
// +build !windows

package procenv

import "golang.org/x/sys/unix"

// processUmask reads the process umask. The only portable way is to
// set it and put it back, which is not atomic; callers run this before
// spawning anything that touches the umask concurrently.
func processUmask() uint32 {
	mask := unix.Umask(0)
	unix.Umask(mask)
	return uint32(mask)
}
