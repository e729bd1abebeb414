// SPDX-License-Identifier: GPL-2.0-or-later

// Command openocd resolves the startup configuration of the debugger:
// the canonical executable location, the install prefix it implies, the
// priority-ordered script search directories, and the queued configuration
// commands handed to the command interpreter.
package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"

	"github.com/emresurucu/OpenOCD-Nuvoton/internal/options"
)

// Version is the release identifier (set via -ldflags).
var Version = "0.10.0-dev"

func main() {
	log.SetReportTimestamp(false)

	log.Info("Open On-Chip Debugger", "version", Version)

	startup := options.NewStartup()
	if err := startup.Parse(os.Args[1:], consoleRunner{}); err != nil {
		var exitErr *options.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		log.Error("startup failed", "err", err)
		os.Exit(1)
	}

	for _, dir := range startup.SearchDirs.Dirs() {
		log.Debug("script search dir", "dir", dir)
	}
	for _, line := range startup.DeferredCommands() {
		log.Debug("deferred config command", "command", line)
	}
}
