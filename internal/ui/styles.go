package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
// - Default (white/black): Primary text
// - Accent (soft purple #A78BFA): Seeds, highlights
// - Muted (gray): Secondary info, depth markers
// - No colored success/error - unicode symbols only

const defaultAccent = "#A78BFA"

var (
	// Accent style for seeds, file paths, highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))

	// Muted style for secondary info and hints
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)

	// AccentBold combines accent color with bold
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent)).Bold(true)

	accentColor string
)

// ConfigureTheme applies the configured accent color to the palette.
// Values of "none", "off" or "default" keep the built-in accent.
func ConfigureTheme(accent string) {
	color, ok := normalizeAccentColor(accent)
	if !ok {
		accentColor = ""
		Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))
		AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent)).Bold(true)
		return
	}
	accentColor = color
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}

// DisableStyles strips all styling, for piped or captured output.
func DisableStyles() {
	accentColor = ""
	Accent = lipgloss.NewStyle()
	Muted = lipgloss.NewStyle()
	Bold = lipgloss.NewStyle()
	AccentBold = lipgloss.NewStyle()
}

// AccentColor returns the configured accent color, if any.
func AccentColor() (string, bool) {
	return accentColor, accentColor != ""
}

// normalizeAccentColor validates an accent value: an ANSI color code
// (0-255) or a hex color (#RGB or #RRGGBB).
func normalizeAccentColor(value string) (string, bool) {
	value = strings.TrimSpace(value)
	switch value {
	case "", "none", "off", "default":
		return "", false
	}

	if strings.HasPrefix(value, "#") {
		hex := value[1:]
		if len(hex) != 3 && len(hex) != 6 {
			return "", false
		}
		for _, r := range hex {
			if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
				return "", false
			}
		}
		if len(hex) == 3 {
			var b strings.Builder
			b.WriteByte('#')
			for _, r := range hex {
				b.WriteRune(r)
				b.WriteRune(r)
			}
			return strings.ToLower(b.String()), true
		}
		return strings.ToLower(value), true
	}

	n, err := strconv.Atoi(value)
	if err != nil || n < 0 || n > 255 {
		return "", false
	}
	return fmt.Sprintf("%d", n), true
}
