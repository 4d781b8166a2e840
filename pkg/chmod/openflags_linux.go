package chmod

import (
	"strconv"

	"golang.org/x/sys/unix"
)

// O_PATH yields a reference-only descriptor: the open succeeds without
// read permission on the entry, which matters when chmod'ing something
// the caller cannot open for reading.
var flagPolicy = openFlags{
	traverse: unix.O_PATH | unix.O_DIRECTORY | unix.O_CLOEXEC,
	leaf:     unix.O_PATH | unix.O_CLOEXEC,
}

// fchmodFD applies mode through an open descriptor. The raw fchmod
// syscall rejects O_PATH descriptors with EBADF, so fall back to the
// magic /proc link the way glibc does.
func fchmodFD(fd int, mode uint32) error {
	err := unix.Fchmod(fd, mode)
	if err == unix.EBADF {
		return unix.Chmod("/proc/self/fd/"+strconv.Itoa(fd), mode)
	}
	return err
}
