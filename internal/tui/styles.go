package tui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Header   lipgloss.Style
	Control  lipgloss.Style
	Active   lipgloss.Style
	Card     lipgloss.Style
	Selected lipgloss.Style
	Name     lipgloss.Style
	Price    lipgloss.Style
	Muted    lipgloss.Style
	Modal    lipgloss.Style
	Toast    lipgloss.Style
	Help     lipgloss.Style
}

func DefaultStyles() Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Width(cardWidth)

	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Control:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Active:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Card:     card,
		Selected: card.BorderForeground(lipgloss.Color("39")),
		Name:     lipgloss.NewStyle().Bold(true),
		Price:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(1, 2).
			Width(modalWidth),
		Toast: lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("236")).Padding(0, 1),
		Help:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
