package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/provide-io/fsmode/internal/procenv"
	"github.com/provide-io/fsmode/pkg/chmod"
	"github.com/provide-io/fsmode/pkg/logging"
	"github.com/provide-io/fsmode/pkg/permissions"
)

const version = "0.1.0"

var (
	logLevel    string
	recursive   bool
	versionFlag bool
	rootCmd     *cobra.Command
)

func getBuildTimestamp() string {
	// Try to get vcs.time from build info
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func init() {
	rootCmd = &cobra.Command{
		Use:   "fsmode MODE FILE...",
		Short: "Change file permission bits",
		Long: `Change file permission bits.

MODE is octal ("755") or symbolic ("u+x,go-w"). Paths longer than the
chmod syscall accepts are resolved segment by segment, so deeply
nested entries still get exactly the requested bits.`,
		Args: cobra.MinimumNArgs(2),
		Run:  runChmod,
	}

	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error; json or json:LEVEL for JSON output)")
	rootCmd.Flags().BoolVarP(&recursive, "recursive", "R", false, "Change files and directories recursively")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("fsmode %s\n", version)
		fmt.Printf("Built: %s\n", getBuildTimestamp())
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runChmod(cmd *cobra.Command, args []string) {
	level, jsonFormat := logging.ResolveLevel(logLevel)
	logger := logging.NewLogger("fsmode", level, jsonFormat)

	setter := chmod.NewSetterWithLogger(logger)
	umask := procenv.Umask()
	spec := args[0]

	exitCode := 0
	for _, target := range args[1:] {
		if !applyMode(setter, logger, spec, target, umask) {
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

// applyMode changes the mode of one command-line target, descending
// into directories when -R was given. One failed entry does not stop
// the rest of the batch.
func applyMode(setter *chmod.Setter, logger hclog.Logger, spec, target string, umask uint32) bool {
	info, err := os.Stat(target)
	if err != nil {
		logger.Error("❌ cannot stat target", "path", target, "error", err)
		return false
	}

	if recursive && info.IsDir() {
		ok := true
		filepath.WalkDir(target, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				logger.Error("❌ cannot descend into entry", "path", path, "error", err)
				ok = false
				return nil
			}
			if !chmodOne(setter, logger, spec, path, d.IsDir(), umask) {
				ok = false
			}
			return nil
		})
		return ok
	}

	return chmodOne(setter, logger, spec, target, info.IsDir(), umask)
}

func chmodOne(setter *chmod.Setter, logger hclog.Logger, spec, path string, isDir bool, umask uint32) bool {
	mode, err := permissions.Parse(spec, isDir, umask)
	if err != nil {
		logger.Error("❌ invalid mode specification", "mode", spec, "error", err)
		return false
	}

	// Setter reports its own failures in detail
	if err := setter.Chmod(path, mode); err != nil {
		return false
	}

	logger.Debug("✅ changed mode", "path", path, "mode", permissions.FormatOctal(mode))
	return true
}
