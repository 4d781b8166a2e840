//go:build !windows
// +build !windows

package chmod

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// openFlags is the per-platform open flag policy: one flag set for
// descending through directories, one for taking a reference to the
// final entry. The concrete values live in openflags_linux.go and
// openflags_other.go.
type openFlags struct {
	traverse int
	leaf     int
}

// chmodLongPath resolves path one segment at a time and applies mode
// through the final descriptor. Each openat consumes a single name,
// so no individual call can hit the whole-path length limit. Opening
// relative to an already-held parent descriptor also means a renamed
// ancestor cannot redirect the part of the walk that already passed
// it.
//
// At most one descriptor is live at any point: every replacement
// closes its predecessor, and the survivor is closed on the way out
// whatever the outcome.
func (s *Setter) chmodLongPath(path string, mode uint32) error {
	cur := -1
	defer func() {
		if cur >= 0 {
			unix.Close(cur)
		}
	}()

	split := splitComponents(path)

	// An embedded NUL invalidates the whole path; reject it before
	// issuing any syscall, not at the segment that carries it.
	for _, c := range split {
		if c.kind == componentName && strings.IndexByte(c.name, 0) >= 0 {
			return fmt.Errorf("%w: %q", ErrNullBytePathSegment, c.name)
		}
	}

	comps := newLookahead(split)
	resolved := false

	if c, ok := comps.peek(); ok && c.kind == componentRoot {
		fd, err := unix.Open("/", flagPolicy.traverse, 0)
		if err != nil {
			return &os.PathError{Op: "open", Path: "/", Err: err}
		}
		cur = fd
		for {
			c, ok := comps.peek()
			if !ok || c.kind != componentRoot {
				break
			}
			comps.next()
		}
	}

	for {
		c, ok := comps.next()
		if !ok {
			break
		}
		switch c.kind {
		case componentRoot, componentCurDir:
			// nothing to resolve
		case componentPrefix:
			// A drive-style prefix cannot be decomposed into
			// parent-relative segments.
			return fmt.Errorf("%w: %q", ErrUnsupportedPathPrefix, c.name)
		case componentParentDir:
			if err := openNext(&cur, "..", flagPolicy.traverse); err != nil {
				return err
			}
			resolved = true
		case componentName:
			flags := flagPolicy.traverse
			if _, more := comps.peek(); !more {
				flags = flagPolicy.leaf
			}
			if err := openNext(&cur, c.name, flags); err != nil {
				return err
			}
			resolved = true
		}
	}

	// Root and current-directory markers alone never name a concrete
	// entry to modify.
	if !resolved {
		return fmt.Errorf("%w: %q", ErrNoTargetEntry, path)
	}

	if err := fchmodFD(cur, mode); err != nil {
		return &os.PathError{Op: "fchmod", Path: path, Err: err}
	}
	return nil
}

// openNext opens name relative to *fd (or to the working directory
// when no descriptor is held yet) and replaces *fd with the result.
func openNext(fd *int, name string, flags int) error {
	base := unix.AT_FDCWD
	if *fd >= 0 {
		base = *fd
	}
	next, err := unix.Openat(base, name, flags, 0)
	if err != nil {
		return &os.PathError{Op: "openat", Path: name, Err: err}
	}
	if *fd >= 0 {
		unix.Close(*fd)
	}
	*fd = next
	return nil
}
