// Package logging builds the hclog loggers used across fsmode.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// ResolveLevel determines the effective log level and output format.
// Precedence: explicit CLI value, then FSMODE_LOG_LEVEL, then the
// default. A "json" or "json:LEVEL" value selects JSON output.
func ResolveLevel(cliLevel string) (level string, jsonFormat bool) {
	level = cliLevel
	if level == "" {
		level = os.Getenv("FSMODE_LOG_LEVEL")
	}
	if level == "" {
		level = "warn" // Default to warn for production safety
	}

	if strings.HasPrefix(level, "json") {
		jsonFormat = true
		if parts := strings.SplitN(level, ":", 2); len(parts) == 2 && parts[1] != "" {
			level = parts[1]
		} else {
			level = "info"
		}
	}
	return level, jsonFormat
}

// NewLogger creates a new hclog logger with standard settings. Output
// goes to stderr unless FSMODE_LOG_PATH names a file; human-readable
// output carries a line prefix so interleaved tool output stays
// attributable.
func NewLogger(name string, level string, jsonFormat bool) hclog.Logger {
	var output io.Writer = os.Stderr

	if logPath := os.Getenv("FSMODE_LOG_PATH"); logPath != "" {
		if file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			output = file
		}
	}

	if os.Getenv("FSMODE_JSON_LOG") == "1" {
		jsonFormat = true
	}
	if !jsonFormat {
		output = NewPrefixWriter("🔐 ", output)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}
