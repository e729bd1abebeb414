// SPDX-License-Identifier: GPL-2.0-or-later

// Package searchdir maintains the ordered list of directories searched for
// configuration scripts.
//
// Insertion order is priority order: index 0 is consulted first. The
// option parser appends directories given on the command line while it
// scans, and AddDefaultDirs appends the built-in locations only after
// parsing completes, so explicit directories always outrank the built-ins.
package searchdir

import (
	"os"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/emresurucu/OpenOCD-Nuvoton/internal/layout"
)

// List is an append-only, order-significant sequence of script search
// directories. Duplicates are kept; deduplicating would change lookup
// precedence for later entries. A List is written only during startup and
// read-only afterward, so no locking is needed.
type List struct {
	dirs []string
}

// NewList returns an empty search directory list.
func NewList() *List { return &List{} }

// Add appends dir with lower priority than every directory added before it.
func (l *List) Add(dir string) {
	log.Debug("adding script search dir", "dir", dir)
	l.dirs = append(l.dirs, dir)
}

// Dirs returns the directories in priority order, highest first. The
// returned slice is the list's backing storage; callers must not mutate it.
func (l *List) Dirs() []string { return l.dirs }

// AddDefaultDirs appends the built-in search directories for the given
// install prefix. Each addition is conditional on its environment lookup
// and skipped silently when the lookup comes up empty.
//
// The bundled site and scripts trees go last so a user can shadow any
// bundled script by placing a same-named file in an earlier directory.
func (l *List) AddDefaultDirs(prefix string) {
	log.Debug("install layout",
		"bindir", layout.BinDir,
		"pkgdatadir", layout.PkgDataDir,
		"run_prefix", prefix)

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		l.Add(home + "/.openocd")
	}

	if dir := os.Getenv("OPENOCD_SCRIPTS"); dir != "" {
		l.Add(dir)
	}

	if runtime.GOOS == "windows" {
		if appdata := os.Getenv("APPDATA"); appdata != "" {
			l.Add(appdata + "/OpenOCD")
		}
	}

	root := layout.DataRoot(prefix)
	l.Add(root + "/site")
	l.Add(root + "/scripts")
}
