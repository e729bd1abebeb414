// SPDX-License-Identifier: GPL-2.0-or-later

// Package layout describes the compile-time install layout of the openocd
// binary and derives the runtime install prefix from the resolved
// executable directory.
//
// BinDir and PkgDataDir mirror the autotools BINDIR and PKGDATADIR values
// and are meant to be overridden at build time:
//
//	go build -ldflags "\
//	  -X github.com/emresurucu/OpenOCD-Nuvoton/internal/layout.BinDir=/opt/openocd/bin \
//	  -X github.com/emresurucu/OpenOCD-Nuvoton/internal/layout.PkgDataDir=/opt/openocd/share/openocd"
package layout

var (
	// BinDir is the configured installation directory of the binary.
	BinDir = "/usr/local/bin"

	// PkgDataDir is the configured package data directory holding the
	// bundled site and scripts trees.
	PkgDataDir = "/usr/local/share/openocd"
)

// StripSuffix returns text with suffix removed when suffix is an exact
// trailing substring, and text unchanged otherwise. A mismatch is not an
// error: an executable relocated outside the expected layout simply keeps
// its full directory as the prefix.
func StripSuffix(text, suffix string) string {
	if suffix == "" {
		return text
	}
	if len(suffix) > len(text) || text[len(text)-len(suffix):] != suffix {
		return text
	}
	return text[:len(text)-len(suffix)]
}

// Prefix derives the install prefix from the directory containing the
// executable by stripping the build variant's bin directory suffix.
func Prefix(exeDir string) string {
	return StripSuffix(exeDir, binSuffix())
}
