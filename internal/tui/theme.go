package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Theme holds the color palette. Every value is an ANSI code or hex string
// accepted by lipgloss.
type Theme struct {
	Accent  string `yaml:"accent"`
	Border  string `yaml:"border"`
	Muted   string `yaml:"muted"`
	Error   string `yaml:"error"`
	Success string `yaml:"success"`
	BarFg   string `yaml:"bar-fg"`
	BarBg   string `yaml:"bar-bg"`
}

// DefaultTheme returns the built-in palette.
func DefaultTheme() Theme {
	return Theme{
		Accent:  "#00D0A1",
		Border:  "8",
		Muted:   "8",
		Error:   "#FF5F5F",
		Success: "#49E209",
		BarFg:   "15",
		BarBg:   "#1A2B4A",
	}
}

// LoadTheme reads a YAML skin file and overlays it on the default palette.
// Missing keys keep their defaults. A missing file is not an error; a
// malformed one is.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()
	if path == "" {
		return theme, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return theme, nil
		}
		return theme, fmt.Errorf("reading skin %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return DefaultTheme(), fmt.Errorf("parsing skin %s: %w", path, err)
	}
	return theme, nil
}

// Styles is the rendered style set derived from a Theme.
type Styles struct {
	Hero      lipgloss.Style
	Subtitle  lipgloss.Style
	Bar       lipgloss.Style
	BarItem   lipgloss.Style
	BarActive lipgloss.Style

	Card       lipgloss.Style
	CardActive lipgloss.Style
	CardTitle  lipgloss.Style
	CardDesc   lipgloss.Style

	FormBox    lipgloss.Style
	FieldLabel lipgloss.Style
	Result     lipgloss.Style
	Error      lipgloss.Style
	Busy       lipgloss.Style

	Status lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(t Theme) Styles {
	accent := lipgloss.Color(t.Accent)
	border := lipgloss.Color(t.Border)
	muted := lipgloss.Color(t.Muted)

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)

	return Styles{
		Hero:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		Subtitle: lipgloss.NewStyle().Foreground(muted),

		Bar:       lipgloss.NewStyle().Background(lipgloss.Color(t.BarBg)).Foreground(lipgloss.Color(t.BarFg)),
		BarItem:   lipgloss.NewStyle().Background(lipgloss.Color(t.BarBg)).Foreground(lipgloss.Color(t.BarFg)).Padding(0, 1),
		BarActive: lipgloss.NewStyle().Background(lipgloss.Color(t.BarBg)).Foreground(accent).Bold(true).Padding(0, 1),

		Card:       card,
		CardActive: card.BorderForeground(accent),
		CardTitle:  lipgloss.NewStyle().Bold(true),
		CardDesc:   lipgloss.NewStyle().Foreground(muted),

		FormBox:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(1, 2),
		FieldLabel: lipgloss.NewStyle().Bold(true),
		Result:     lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Error)),
		Busy:       lipgloss.NewStyle().Foreground(muted).Italic(true),

		Status: lipgloss.NewStyle().Foreground(muted),
	}
}
