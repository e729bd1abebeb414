// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func resetLogger(t *testing.T) {
	t.Helper()
	origLevel := log.GetLevel()
	t.Cleanup(func() {
		log.SetLevel(origLevel)
		log.SetOutput(os.Stderr)
	})
}

func TestSetDebugLevel(t *testing.T) {
	tests := []struct {
		arg  string
		want log.Level
	}{
		{"0", log.ErrorLevel},
		{"1", log.WarnLevel},
		{"2", log.InfoLevel},
		{"3", log.DebugLevel},
		{"4", log.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			resetLogger(t)

			if err := setDebugLevel(tt.arg); err != nil {
				t.Fatalf("setDebugLevel(%q) error: %v", tt.arg, err)
			}
			if got := log.GetLevel(); got != tt.want {
				t.Errorf("log level = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetDebugLevelRejectsGarbage(t *testing.T) {
	resetLogger(t)

	if err := setDebugLevel("loud"); err == nil {
		t.Error("setDebugLevel(loud) expected an error")
	}
}

func TestRunLineDebugLevel(t *testing.T) {
	resetLogger(t)

	if err := (consoleRunner{}).RunLine("debug_level 1"); err != nil {
		t.Fatalf("RunLine error: %v", err)
	}
	if got := log.GetLevel(); got != log.WarnLevel {
		t.Errorf("log level = %v, want %v", got, log.WarnLevel)
	}
}

func TestRunLineLogOutput(t *testing.T) {
	resetLogger(t)

	name := filepath.Join(t.TempDir(), "openocd.log")
	if err := (consoleRunner{}).RunLine("log_output " + name); err != nil {
		t.Fatalf("RunLine error: %v", err)
	}

	log.Error("redirected")
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if len(data) == 0 {
		t.Error("log output was not redirected to the file")
	}
}

func TestRunLineHandsOffUnknownCommands(t *testing.T) {
	resetLogger(t)

	if err := (consoleRunner{}).RunLine("gdb_port pipe; log_output openocd.log"); err != nil {
		t.Errorf("RunLine error: %v, interpreter commands must not fail here", err)
	}
}
