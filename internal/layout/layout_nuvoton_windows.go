// SPDX-License-Identifier: GPL-2.0-or-later

//go:build windows && nuvoton

package layout

// Customized Windows builds ship the binary in a plain "bin" directory
// with the site and scripts trees directly under the prefix.

func binSuffix() string { return "bin" }

// DataRoot returns the directory under which the bundled site and scripts
// trees live for a given install prefix.
func DataRoot(prefix string) string { return prefix }
