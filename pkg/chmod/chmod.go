// Package chmod applies permission bits to filesystem entries,
// falling back to descriptor-relative resolution when the path is too
// long for the chmod syscall to accept whole.
package chmod

import (
	"github.com/hashicorp/go-hclog"
)

// Setter applies permission bits to filesystem entries. Failures are
// reported through its logger with the path and the underlying OS
// error before being returned.
type Setter struct {
	logger hclog.Logger
}

// NewSetter creates a Setter that reports nothing.
func NewSetter() *Setter {
	return NewSetterWithLogger(hclog.NewNullLogger())
}

// NewSetterWithLogger creates a Setter that reports failures through
// the given logger.
func NewSetterWithLogger(logger hclog.Logger) *Setter {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Setter{logger: logger}
}
