// SPDX-License-Identifier: GPL-2.0-or-later

package searchdir

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte("# test script\n"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestFindFileHonorsListOrder(t *testing.T) {
	high := t.TempDir()
	low := t.TempDir()
	writeFile(t, filepath.Join(high, "board.cfg"))
	writeFile(t, filepath.Join(low, "board.cfg"))

	l := NewList()
	l.Add(high)
	l.Add(low)

	got, err := l.FindFile("board.cfg")
	if err != nil {
		t.Fatalf("FindFile() error: %v", err)
	}
	if want := high + "/board.cfg"; got != want {
		t.Errorf("FindFile() = %q, want %q", got, want)
	}
}

func TestFindFileAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "target.cfg")
	writeFile(t, path)

	l := NewList()
	got, err := l.FindFile(path)
	if err != nil {
		t.Fatalf("FindFile() error: %v", err)
	}
	if got != path {
		t.Errorf("FindFile() = %q, want %q", got, path)
	}
}

func TestFindFileMissing(t *testing.T) {
	l := NewList()
	l.Add(t.TempDir())

	if _, err := l.FindFile("no-such-file.cfg"); err == nil {
		t.Error("FindFile() expected an error for a missing file")
	}
}

func TestFindFileSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "board.cfg"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	l := NewList()
	l.Add(dir)

	if _, err := l.FindFile("board.cfg"); err == nil {
		t.Error("FindFile() matched a directory, want files only")
	}
}
