// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// consoleRunner handles the immediate-mode option commands that target the
// logging layer. Anything else belongs to the configuration command
// interpreter, which runs after startup completes.
type consoleRunner struct{}

func (consoleRunner) RunLine(line string) error {
	switch {
	case strings.HasPrefix(line, "debug_level "):
		return setDebugLevel(strings.TrimPrefix(line, "debug_level "))
	case strings.HasPrefix(line, "log_output "):
		return redirectLogOutput(strings.TrimPrefix(line, "log_output "))
	}

	log.Debug("command handed off to interpreter", "command", line)
	return nil
}

// setDebugLevel maps the 0-4 debug scale onto the logger's levels.
func setDebugLevel(arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("invalid debug level %q: %w", arg, err)
	}

	switch {
	case n <= 0:
		log.SetLevel(log.ErrorLevel)
	case n == 1:
		log.SetLevel(log.WarnLevel)
	case n == 2:
		log.SetLevel(log.InfoLevel)
	default:
		log.SetLevel(log.DebugLevel)
	}
	return nil
}

// redirectLogOutput points the logger at the named file, creating it when
// missing and appending otherwise.
func redirectLogOutput(name string) error {
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("cannot redirect log output: %w", err)
	}
	log.SetOutput(f)
	return nil
}
