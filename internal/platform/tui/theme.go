package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Theme contains the visual styles for the viewer and the level picker.
type Theme struct {
	// Palette maps screen colour slots to terminal styles.
	Palette map[core.Color]lipgloss.Style

	// Level picker styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Palette: map[core.Color]lipgloss.Style{
			core.ColorDefault: lipgloss.NewStyle(),
			core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ECD078")),
			core.ColorBrick:   lipgloss.NewStyle().Foreground(lipgloss.Color("#D95B43")),
			core.ColorPink:    lipgloss.NewStyle().Foreground(lipgloss.Color("#C02942")),
			core.ColorPurple:  lipgloss.NewStyle().Foreground(lipgloss.Color("#542437")),
			core.ColorGrey:    lipgloss.NewStyle().Foreground(lipgloss.Color("#333333")),
			core.ColorSlate:   lipgloss.NewStyle().Foreground(lipgloss.Color("#53777A")),
			core.ColorGold:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
			core.ColorGoldDim: lipgloss.NewStyle().Foreground(lipgloss.Color("#8A7500")),
			core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		},

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("#ECD078")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// MonochromeTheme returns a grayscale theme for terminals with poor colour.
func MonochromeTheme() Theme {
	t := DefaultTheme()
	gray := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	t.Palette = map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
		core.ColorYellow:  gray("255").Bold(true),
		core.ColorBrick:   gray("250"),
		core.ColorPink:    gray("247"),
		core.ColorPurple:  gray("244"),
		core.ColorGrey:    gray("240"),
		core.ColorSlate:   gray("252"),
		core.ColorGold:    gray("255").Bold(true),
		core.ColorGoldDim: gray("243"),
		core.ColorWhite:   gray("255"),
		core.ColorCyan:    gray("248"),
	}
	t.MenuTitle = gray("255").Bold(true)
	t.MenuItemActive = gray("255").Bold(true)
	return t
}

// ThemeByName looks up a theme by its flag name.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "", "default":
		return DefaultTheme(), true
	case "mono", "monochrome":
		return MonochromeTheme(), true
	}
	return Theme{}, false
}

// Global theme variable (can be changed at startup)
var theme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(t Theme) {
	theme = t
}

// CurrentTheme returns the current global theme.
func CurrentTheme() Theme {
	return theme
}

// style returns the palette entry for c, falling back to the default slot.
func (t Theme) style(c core.Color) lipgloss.Style {
	if s, ok := t.Palette[c]; ok {
		return s
	}
	return t.Palette[core.ColorDefault]
}
