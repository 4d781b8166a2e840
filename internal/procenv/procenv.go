// Package procenv reads the process-level environment state the mode
// parser depends on.
package procenv

import (
	"fmt"
	"os"

	"github.com/provide-io/fsmode/pkg/permissions"
)

// ParseUmask parses an octal umask string.
func ParseUmask(s string) (uint32, error) {
	val, err := permissions.ParseOctalString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid umask %q: %w", s, err)
	}
	if val > 0o777 {
		return 0, fmt.Errorf("umask %q out of range (must be 0-0777)", s)
	}
	return val, nil
}

// Umask returns the umask to apply to symbolic mode specifications:
// the FSMODE_UMASK override when set and valid, otherwise the process
// umask.
func Umask() uint32 {
	if s := os.Getenv("FSMODE_UMASK"); s != "" {
		if mask, err := ParseUmask(s); err == nil {
			return mask
		}
	}
	return processUmask()
}
