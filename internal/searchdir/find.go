// SPDX-License-Identifier: GPL-2.0-or-later

package searchdir

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindFile returns the path at which name can be opened, trying the search
// directories in priority order until a match is found. A name that is
// absolute, or reachable from the working directory, short-circuits the
// search. Only existence is checked; nothing is opened or parsed here.
func (l *List) FindFile(name string) (string, error) {
	if fileExists(name) {
		return name, nil
	}

	if !filepath.IsAbs(name) {
		for _, dir := range l.dirs {
			full := dir + "/" + name
			if fileExists(full) {
				return full, nil
			}
		}
	}

	return "", fmt.Errorf("can't find %s in any search dir", name)
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
