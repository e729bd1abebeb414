// SPDX-License-Identifier: GPL-2.0-or-later

//go:build windows

package exepath

import "golang.org/x/sys/windows"

// platformExecutable queries the module path of the process executable.
// Separator normalization happens in Dir; no symlink resolution is applied
// on this platform.
func platformExecutable() (string, error) {
	var buf [windows.MAX_PATH]uint16
	n, err := windows.GetModuleFileName(0, &buf[0], uint32(len(buf)))
	if err != nil {
		return "", err
	}
	return windows.UTF16ToString(buf[:n]), nil
}
