// Package ui renders analyzer and advisor results for the terminal. Core
// packages return structs only; everything colored or boxed lives here.
package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"
)

// Color palette for the application (single source of truth)
var (
	// Primary colors
	ColorPrimary   = lipgloss.Color("#EF5350") // Pokéball red
	ColorSecondary = lipgloss.Color("#42A5F5") // Water blue
	ColorSuccess   = lipgloss.Color("#66BB6A") // Grass green
	ColorWarning   = lipgloss.Color("#FFCA28") // Electric amber
	ColorError     = lipgloss.Color("#E53935") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorHighlight = lipgloss.Color("#AB47BC") // Psychic purple

	// Text colors
	ColorText     = lipgloss.Color("#F9FAFB") // White
	ColorTextDim  = lipgloss.Color("#9CA3AF") // Light gray
	ColorTextMute = lipgloss.Color("#6B7280") // Muted gray
)

// styleWrapper wraps a lipgloss style
type styleWrapper struct {
	style lipgloss.Style
}

// Render renders the string with the style
func (s styleWrapper) Render(str string) string {
	return s.style.Render(str)
}

// Bold returns a new style with bold enabled
func (s styleWrapper) Bold(v bool) styleWrapper {
	return styleWrapper{s.style.Bold(v)}
}

// Text styles using lipgloss
var (
	// Bold text
	Bold = styleWrapper{lipgloss.NewStyle().Bold(true)}

	// Dimmed text for secondary information
	Dim = styleWrapper{lipgloss.NewStyle().Foreground(ColorTextDim)}

	// Muted text for hints
	Muted = styleWrapper{lipgloss.NewStyle().Foreground(ColorTextMute)}

	// Success text (green)
	Success = styleWrapper{lipgloss.NewStyle().Foreground(ColorSuccess)}

	// Warning text (amber)
	Warning = styleWrapper{lipgloss.NewStyle().Foreground(ColorWarning)}

	// Error text (red)
	Error = styleWrapper{lipgloss.NewStyle().Foreground(ColorError)}

	// Primary accent text (red)
	Primary = styleWrapper{lipgloss.NewStyle().Foreground(ColorPrimary)}

	// Secondary accent text (blue)
	Secondary = styleWrapper{lipgloss.NewStyle().Foreground(ColorSecondary)}

	// Highlight text
	Highlight = styleWrapper{lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)}
)

// Status indicators (functions to ensure fresh rendering)

// GetCheckMark returns a styled check mark
func GetCheckMark() string { return Success.Render("✓") }

// GetCrossMark returns a styled cross mark
func GetCrossMark() string { return Error.Render("✗") }

// GetWarnMark returns a styled warning mark
func GetWarnMark() string { return Warning.Render("⚠") }

// GetBullet returns a styled bullet point
func GetBullet() string { return Muted.Render("•") }

// Box styles for panels and containers
type boxWrapper struct {
	style lipgloss.Style
}

func (b boxWrapper) Render(str string) string {
	return b.style.Render(str)
}

var (
	// Standard box with border
	Box = boxWrapper{lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted).
		Padding(0, 1)}

	// Highlighted box
	HighlightBox = boxWrapper{lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)}

	// Error box
	ErrorBox = boxWrapper{lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorError).
			Padding(0, 1)}
)

// Header styles
var (
	// Main title style
	Title = styleWrapper{lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)}

	// Section header
	SectionHeader = styleWrapper{lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)}
)

// FormatKeyValue formats a key-value pair with styling
func FormatKeyValue(key, value string) string {
	return Dim.Render(key+": ") + value
}

// FangColorScheme returns a Fang color scheme based on the application's color palette
func FangColorScheme(c lipgloss.LightDarkFunc) fang.ColorScheme {
	return fang.ColorScheme{
		Base:           ColorText,
		Title:          ColorPrimary,
		Description:    ColorTextDim,
		Codeblock:      c(lipgloss.Color("#1F2937"), lipgloss.Color("#2F2E36")),
		Program:        ColorSecondary,
		DimmedArgument: ColorMuted,
		Comment:        ColorMuted,
		Flag:           ColorSuccess,
		FlagDefault:    ColorTextDim,
		Command:        ColorHighlight,
		QuotedString:   ColorSecondary,
		Argument:       ColorText,
		Help:           ColorTextDim,
		Dash:           ColorMuted,
		ErrorHeader:    [2]color.Color{ColorText, ColorError},
		ErrorDetails:   ColorError,
	}
}

// BannerASCII is the ASCII art banner for the application
const BannerASCII = `
░█▀█░█▀█░█░█░█▀▀░█▀█░█▀▄░█░█░▀█▀░█▀▀░█▀█░█▀▄
░█▀▀░█░█░█▀▄░█▀▀░█▀█░█░█░▀▄▀░░█░░▀▀█░█░█░█▀▄
░▀░░░▀▀▀░▀░▀░▀▀▀░▀░▀░▀▀░░░▀░░▀▀▀░▀▀▀░▀▀▀░▀░▀
`

// RenderBanner renders the startup banner in the primary color.
func RenderBanner(banner string) string {
	return Primary.Render(banner)
}
