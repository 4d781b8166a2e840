//go:build windows
// +build windows

package chmod

// Chmod is a no-op on Windows. The platform does not honor POSIX
// permission bits on directories, so emulating them (for example via
// the read-only attribute) would misrepresent what was applied. This
// divergence is deliberate.
func (s *Setter) Chmod(path string, mode uint32) error {
	s.logger.Debug("skipping chmod, POSIX permission bits are not supported",
		"path", path)
	return nil
}
