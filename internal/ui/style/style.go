// Package style holds the colors and glyphs shared by the terminal output of vis.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Accent = lipgloss.Color("#F97316")
	Muted  = lipgloss.Color("#6B7280")
	Good   = lipgloss.Color("#16A34A")
	Bad    = lipgloss.Color("#DC2626")
	Notice = lipgloss.Color("#EAB308")
)

// Glyphs.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Reload  = "↻"
)
