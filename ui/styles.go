package ui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	muted     = lipgloss.AdaptiveColor{Light: "#969B86", Dark: "#696969"}
	text      = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}

	// Tile colours of the board behind the drawer.
	tilePalette = []lipgloss.AdaptiveColor{
		{Light: "#F25D94", Dark: "#F25D94"},
		{Light: "#43BF6D", Dark: "#73F59F"},
		{Light: "#FDB35E", Dark: "#FDB35E"},
		{Light: "#4FA3F7", Dark: "#6CB4F9"},
		{Light: "#874BFD", Dark: "#7D56F4"},
		{Light: "#E86F4A", Dark: "#FF8A65"},
	}

	overlayColor = colorful.Color{R: 0, G: 0, B: 0}
)

var (
	drawerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			Padding(0, 1)

	grabberStyle = lipgloss.NewStyle().
			Foreground(muted).
			Align(lipgloss.Center)

	grabberActiveStyle = grabberStyle.
				Foreground(highlight).
				Bold(true)

	searchStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(subtle)

	tileStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Margin(0, 1, 1, 0).
			Bold(true)
)

// dim blends c toward black by fraction, the way a translucent dark overlay
// would darken whatever sits below it.
func dim(c lipgloss.AdaptiveColor, fraction float64) lipgloss.AdaptiveColor {
	if fraction <= 0 {
		return c
	}
	return lipgloss.AdaptiveColor{
		Light: blendHex(c.Light, fraction),
		Dark:  blendHex(c.Dark, fraction),
	}
}

func blendHex(hex string, fraction float64) string {
	if hex == "" {
		return hex
	}
	col, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	return col.BlendRgb(overlayColor, fraction).Clamped().Hex()
}
