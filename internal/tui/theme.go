package tui

import "github.com/charmbracelet/lipgloss"

// theme bundles the lipgloss styles for one color scheme.
type theme struct {
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Faint      lipgloss.Style
	Total      lipgloss.Style
	ChipOn     lipgloss.Style
	ChipOff    lipgloss.Style
	Card       lipgloss.Style
	DayEmpty   lipgloss.Style
	DayToday   lipgloss.Style
	ModalFrame lipgloss.Style
	FocusLabel lipgloss.Style
}

func themeFor(dark bool) theme {
	fg := lipgloss.Color("236")
	muted := lipgloss.Color("245")
	accentFg := lipgloss.Color("255")
	accentBg := lipgloss.Color("235")
	if dark {
		fg = lipgloss.Color("255")
		muted = lipgloss.Color("243")
		accentFg = lipgloss.Color("235")
		accentBg = lipgloss.Color("255")
	}
	return theme{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(fg),
		Subtitle:   lipgloss.NewStyle().Foreground(muted),
		Faint:      lipgloss.NewStyle().Faint(true),
		Total:      lipgloss.NewStyle().Bold(true).Foreground(fg),
		ChipOn:     lipgloss.NewStyle().Bold(true).Foreground(accentFg).Background(accentBg).Padding(0, 1),
		ChipOff:    lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		Card:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Padding(0, 1),
		DayEmpty:   lipgloss.NewStyle().Foreground(muted),
		DayToday:   lipgloss.NewStyle().Bold(true).Foreground(accentFg).Background(accentBg),
		ModalFrame: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
		FocusLabel: lipgloss.NewStyle().Bold(true).Underline(true),
	}
}

// cardStyle colors a card chip with the subscription's brand color.
func (t theme) cardStyle(hex string) lipgloss.Style {
	if hex == "" {
		return t.Card
	}
	return t.Card.Background(lipgloss.Color(hex))
}
