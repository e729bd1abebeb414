// SPDX-License-Identifier: GPL-2.0-or-later

// Package options implements the openocd command-line option grammar and
// the startup dispatch feeding the script search directories and the
// deferred configuration command queue.
//
// Parsing is a single left-to-right scan. The relative order of directory
// insertions and command queueing exactly matches the order options appear
// on the command line; the built-in default directories are appended only
// after the scan, so explicitly supplied directories always win.
package options

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/emresurucu/OpenOCD-Nuvoton/internal/exepath"
	"github.com/emresurucu/OpenOCD-Nuvoton/internal/layout"
	"github.com/emresurucu/OpenOCD-Nuvoton/internal/searchdir"
)

// Runner executes a configuration command line immediately against the
// command interpreter. The interpreter lives outside this package;
// implementations carry whatever execution context they need.
type Runner interface {
	RunLine(line string) error
}

// ExitError signals an intentional early process exit from option handling
// without forcing os.Exit in library code. --help carries a non-zero code,
// --version carries zero; neither is a failure.
type ExitError struct {
	Code int
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Startup collects everything option parsing produces: the ordered script
// search directories, the deferred configuration command queue, and the
// help/version flags acted on once the scan completes. It is constructed
// at process entry and handed off read-only to later subsystems.
type Startup struct {
	// SearchDirs is the priority-ordered script search directory list.
	SearchDirs *searchdir.List

	// Stderr receives the usage text; nil means os.Stderr.
	Stderr io.Writer

	deferred    []string
	helpFlag    bool
	versionFlag bool
}

// NewStartup returns a Startup with an empty search directory list and
// command queue.
func NewStartup() *Startup {
	return &Startup{SearchDirs: searchdir.NewList()}
}

// DeferredCommands returns the queued configuration commands in the order
// they appeared on the command line. The command interpreter executes them
// after startup completes.
func (s *Startup) DeferredCommands() []string { return s.deferred }

// queueCommand appends line to the deferred configuration command queue.
func (s *Startup) queueCommand(line string) {
	s.deferred = append(s.deferred, line)
}

// Parse consumes args (the argument vector without the program name) left
// to right. Immediate options run against runner as they are seen, -f and
// -c queue deferred commands, and -s extends the search directories.
//
// After the scan: --help prints usage and returns a non-zero ExitError
// without touching the search directories, --version returns ExitError
// zero, and otherwise the built-in default directories are appended and
// Parse returns nil.
func (s *Startup) Parse(args []string, runner Runner) error {
	sc := newScanner(args)
	for {
		opt, ok := sc.next()
		if !ok {
			break
		}
		s.dispatch(opt, runner)
	}

	if s.helpFlag {
		fmt.Fprint(s.stderr(), Usage())
		return &ExitError{Code: 1}
	}

	if s.versionFlag {
		// Version text is printed by the startup banner; requesting it
		// is not an error.
		return &ExitError{Code: 0}
	}

	// Paths given on the command line take precedence over the built-ins.
	s.SearchDirs.AddDefaultDirs(layout.Prefix(exepath.Dir()))

	return nil
}

func (s *Startup) dispatch(opt option, runner Runner) {
	switch opt.code {
	case 'h':
		s.helpFlag = true
	case 'v':
		s.versionFlag = true
	case 'f':
		if opt.arg != "" {
			s.queueCommand(fmt.Sprintf("script {%s}", opt.arg))
		}
	case 's':
		if opt.arg != "" {
			s.SearchDirs.Add(opt.arg)
		}
	case 'd':
		level := opt.arg
		if level == "" {
			level = "3"
		}
		s.runLine(runner, "debug_level "+level)
	case 'l':
		if opt.arg != "" {
			s.runLine(runner, "log_output "+opt.arg)
		}
	case 'c':
		if opt.arg != "" {
			s.queueCommand(opt.arg)
		}
	case 'p':
		// Synchronous on purpose: queueing would let a gdb client flood
		// stdin before the deprecation warning is visible.
		s.runLine(runner, "gdb_port pipe; log_output openocd.log")
		log.Warn(`deprecated option: -p/--pipe. Use '-c "gdb_port pipe; log_output openocd.log"' instead.`)
	}
}

// runLine executes line immediately. Failures are logged and swallowed;
// a broken immediate command degrades startup, it does not abort it.
func (s *Startup) runLine(runner Runner, line string) {
	if runner == nil {
		return
	}
	if err := runner.RunLine(line); err != nil {
		log.Error("command failed", "command", line, "err", err)
	}
}

func (s *Startup) stderr() io.Writer {
	if s.Stderr != nil {
		return s.Stderr
	}
	return os.Stderr
}
