// SPDX-License-Identifier: GPL-2.0-or-later

// Package exepath resolves the canonical directory containing the running
// executable: absolute, symlink-resolved where the platform calls for it,
// and with / as the path separator on every platform.
//
// The platform technique is selected at build time (see the per-GOOS
// files); callers only ever see the single Dir contract.
package exepath

import (
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/emresurucu/OpenOCD-Nuvoton/internal/layout"
)

// resolveExecutable is swappable so tests can exercise the fallback path.
var resolveExecutable = platformExecutable

// Dir returns the canonical directory containing the running executable,
// with the trailing file name stripped. It never fails: when every
// platform technique comes up empty it falls back to the configured
// install bin directory, canonicalized on a best-effort basis.
func Dir() string {
	exe, err := resolveExecutable()
	if err == nil && exe != "" {
		return filepath.ToSlash(filepath.Dir(exe))
	}

	log.Warn("could not determine executable path, using configured bindir")
	log.Debug("install layout", "bindir", layout.BinDir)

	resolved, err := canonicalize(layout.BinDir)
	if err != nil {
		return layout.BinDir
	}
	return resolved
}

// canonicalize resolves symlinks and normalizes p to an absolute path
// with / separators.
func canonicalize(p string) (string, error) {
	resolved, err := filepath.EvalSymlinks(p)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(abs), nil
}
