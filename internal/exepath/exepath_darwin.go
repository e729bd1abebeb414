// SPDX-License-Identifier: GPL-2.0-or-later

//go:build darwin

package exepath

import "os"

// platformExecutable queries the pid-indexed path API (proc_pidpath, via
// the runtime). No symlink resolution is applied on this platform.
func platformExecutable() (string, error) {
	return os.Executable()
}
