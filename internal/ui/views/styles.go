package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title      lipgloss.Style
	Question   lipgloss.Style
	Hint       lipgloss.Style
	Dim        lipgloss.Style
	Status     lipgloss.Style
	StatusWarn lipgloss.Style
	Help       lipgloss.Style
	Main       lipgloss.Style
	Card       lipgloss.Style
	CardFading lipgloss.Style
	Block      lipgloss.Style
	BlockTitle lipgloss.Style
	Teaser     lipgloss.Style
	Counter    lipgloss.Style
	NavButton  lipgloss.Style

	// answer text
	Body     lipgloss.Style
	Bold     lipgloss.Style
	Italic   lipgloss.Style
	LinkText lipgloss.Style
	LinkURL  lipgloss.Style

	// sidebar rows
	Sidebar       lipgloss.Style
	ItemCompleted lipgloss.Style
	ItemCurrent   lipgloss.Style
	ItemUpcoming  lipgloss.Style
	CursorBg      lipgloss.Style

	Lightbox      lipgloss.Style
	LightboxTitle lipgloss.Style
	Backdrop      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Question:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")),
		Hint:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Dim:        lipgloss.NewStyle().Faint(true),
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusWarn: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:       lipgloss.NewStyle().Faint(true),
		Main:       lipgloss.NewStyle().Padding(1, 2),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(1, 2),
		CardFading: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("235")).
			Padding(1, 2).
			Faint(true),
		Block: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		BlockTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Teaser:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Counter:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		NavButton:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),

		Body:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Bold:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Italic:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Italic(true),
		LinkText: lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Underline(true),
		LinkURL:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color("238")).
			PaddingRight(1),
		ItemCompleted: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		ItemCurrent:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		ItemUpcoming:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		CursorBg:      lipgloss.NewStyle().Background(lipgloss.Color("238")),

		Lightbox: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 3),
		LightboxTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Backdrop:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
