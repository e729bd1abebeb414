// SPDX-License-Identifier: GPL-2.0-or-later

//go:build !(windows && nuvoton)

package layout

func binSuffix() string { return BinDir }

// DataRoot returns the directory under which the bundled site and scripts
// trees live for a given install prefix.
func DataRoot(prefix string) string { return prefix + PkgDataDir }
