// SPDX-License-Identifier: GPL-2.0-or-later

package options

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// titleStyle is for the usage banner.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	// optionStyle is for the option forms themselves.
	optionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3B82F6"))

	// mutedStyle is for license and hint lines.
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// usageLine pairs the option forms with their help text.
type usageLine struct {
	forms string
	help  string
}

var usageLines = []usageLine{
	{"--help       | -h", "display this help"},
	{"--version    | -v", "display OpenOCD version"},
	{"--file       | -f", "use configuration file <name>"},
	{"--search     | -s", "dir to search for config files and scripts"},
	{"--debug      | -d", "set debug level <0-4>"},
	{"--log_output | -l", "redirect log output to file <name>"},
	{"--command    | -c", "run <command>"},
}

// Usage returns the help text printed when --help is given.
func Usage() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Open On-Chip Debugger"))
	sb.WriteString("\n")
	sb.WriteString(mutedStyle.Render("Licensed under GNU GPL v2"))
	sb.WriteString("\n")

	for _, line := range usageLines {
		sb.WriteString(optionStyle.Render(line.forms))
		sb.WriteString("\t")
		sb.WriteString(line.help)
		sb.WriteString("\n")
	}

	return sb.String()
}
