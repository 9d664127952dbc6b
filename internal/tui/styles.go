package tui

import "github.com/charmbracelet/lipgloss"

// Palette is the color set picked by the active theme.
type Palette struct {
	Primary  lipgloss.Color
	Muted    lipgloss.Color
	Success  lipgloss.Color
	Warning  lipgloss.Color
	Error    lipgloss.Color
	Selected lipgloss.Color
}

// darkPalette is the default palette.
var darkPalette = Palette{
	Primary:  lipgloss.Color("#6C5CE7"), // Purple
	Muted:    lipgloss.Color("#636E72"), // Gray
	Success:  lipgloss.Color("#00B894"), // Green
	Warning:  lipgloss.Color("#FDCB6E"), // Yellow
	Error:    lipgloss.Color("#D63031"), // Red
	Selected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
}

// lightPalette adjusts the colors for light terminals.
var lightPalette = Palette{
	Primary:  lipgloss.Color("#5F3DC4"),
	Muted:    lipgloss.Color("#868E96"),
	Success:  lipgloss.Color("#2B8A3E"),
	Warning:  lipgloss.Color("#E67700"),
	Error:    lipgloss.Color("#C92A2A"),
	Selected: lipgloss.Color("#E67700"),
}

// PaletteFor returns the palette for a theme name.
func PaletteFor(theme string) Palette {
	if theme == "light" {
		return lightPalette
	}
	return darkPalette
}

// Styles contains all the lipgloss styles for the dashboard.
type Styles struct {
	App         lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Header      lipgloss.Style
	Selected    lipgloss.Style
	Normal      lipgloss.Style
	Muted       lipgloss.Style
	Success     lipgloss.Style
	Warning     lipgloss.Style
	Error       lipgloss.Style
	Bar         lipgloss.Style
	BarEmpty    lipgloss.Style
	TimerDigits lipgloss.Style
	HeatLevels  []lipgloss.Style
}

// NewStyles builds the style set for a palette.
func NewStyles(p Palette) Styles {
	return Styles{
		App:         lipgloss.NewStyle().Padding(1, 2),
		TabActive:   lipgloss.NewStyle().Bold(true).Foreground(p.Primary).Underline(true),
		TabInactive: lipgloss.NewStyle().Foreground(p.Muted),
		Header:      lipgloss.NewStyle().Bold(true),
		Selected:    lipgloss.NewStyle().Foreground(p.Selected).Bold(true),
		Normal:      lipgloss.NewStyle(),
		Muted:       lipgloss.NewStyle().Foreground(p.Muted),
		Success:     lipgloss.NewStyle().Foreground(p.Success),
		Warning:     lipgloss.NewStyle().Foreground(p.Warning),
		Error:       lipgloss.NewStyle().Foreground(p.Error),
		Bar:         lipgloss.NewStyle().Foreground(p.Primary),
		BarEmpty:    lipgloss.NewStyle().Foreground(p.Muted),
		TimerDigits: lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		HeatLevels: []lipgloss.Style{
			lipgloss.NewStyle().Foreground(p.Muted),
			lipgloss.NewStyle().Foreground(lipgloss.Color("#22543D")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("#276749")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("#2F855A")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("#48BB78")),
		},
	}
}
