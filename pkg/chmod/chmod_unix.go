//go:build !windows
// +build !windows

package chmod

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Chmod changes the permission bits of the entry named by path.
//
// The direct chmod syscall takes the whole path string and rejects it
// with ENAMETOOLONG once it exceeds the system's path length limit.
// That is the only failure worth retrying: the walk in walker_unix.go
// resolves the same entry one segment at a time and applies the mode
// through the resulting descriptor. Every other errno is terminal.
func (s *Setter) Chmod(path string, mode uint32) error {
	err := unix.Chmod(path, mode)
	if err == nil {
		return nil
	}

	if errors.Is(err, unix.ENAMETOOLONG) {
		if walkErr := s.chmodLongPath(path, mode); walkErr != nil {
			s.logger.Error("❌ failed to change permissions",
				"path", path,
				"mode", fmt.Sprintf("0%o", mode),
				"error", walkErr)
			return walkErr
		}
		s.logger.Debug("✅ applied permissions via descriptor walk",
			"path", path,
			"mode", fmt.Sprintf("0%o", mode))
		return nil
	}

	s.logger.Error("❌ failed to change permissions",
		"path", path,
		"mode", fmt.Sprintf("0%o", mode),
		"error", err)
	return err
}
