//go:build unix && !linux
// +build unix,!linux

package chmod

import "golang.org/x/sys/unix"

// Without O_PATH the walk descends via ordinary read opens, so on
// these platforms the fallback needs read permission along the way.
var flagPolicy = openFlags{
	traverse: unix.O_RDONLY | unix.O_DIRECTORY | unix.O_CLOEXEC,
	leaf:     unix.O_RDONLY | unix.O_CLOEXEC,
}

func fchmodFD(fd int, mode uint32) error {
	return unix.Fchmod(fd, mode)
}
