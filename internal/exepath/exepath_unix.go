// SPDX-License-Identifier: GPL-2.0-or-later

//go:build !windows && !darwin

package exepath

import (
	"os"
	"path/filepath"
)

// procSelfEntries are the live "current executable" pseudo-paths, tried in
// order of likelihood: Linux/Cygwin, Solaris, FreeBSD.
var procSelfEntries = []string{
	"/proc/self/exe",
	"/proc/self/path/a.out",
	"/proc/curproc/file",
}

// platformExecutable resolves a proc entry through full symlink
// resolution. Systems without a proc filesystem fall through to the
// runtime's own query (a KERN_PROC_PATHNAME sysctl on the BSDs), again
// with symlinks resolved.
func platformExecutable() (string, error) {
	var firstErr error
	for _, entry := range procSelfEntries {
		resolved, err := filepath.EvalSymlinks(entry)
		if err == nil {
			return resolved, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}

	exe, err := os.Executable()
	if err != nil {
		return "", firstErr
	}
	return filepath.EvalSymlinks(exe)
}
