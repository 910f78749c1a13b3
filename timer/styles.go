package timer

import "github.com/charmbracelet/lipgloss"

const (
	padding  = 2
	maxWidth = 80
)

// styles groups the lipgloss styles of every view.
type styles struct {
	Base       lipgloss.Style
	Main       lipgloss.Style
	Secondary  lipgloss.Style
	Hint       lipgloss.Style
	Exercising lipgloss.Style
	Resting    lipgloss.Style
	Warning    lipgloss.Style
}

func newStyles(dark bool) styles {
	main := lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#FAFAFA"}
	hint := lipgloss.AdaptiveColor{Light: "#767676", Dark: "#9B9B9B"}

	if !dark {
		main.Dark = main.Light
		hint.Dark = hint.Light
	}

	return styles{
		Base:       lipgloss.NewStyle().Padding(1, padding),
		Main:       lipgloss.NewStyle().Bold(true).Foreground(main),
		Secondary:  lipgloss.NewStyle().Foreground(main),
		Hint:       lipgloss.NewStyle().Foreground(hint),
		Exercising: label("#B0DB43"),
		Resting:    label("#12EAEA"),
		Warning:    label("#F25F5C"),
	}
}

func label(bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		MarginRight(1).
		Foreground(lipgloss.Color("#1A1A1A")).
		Background(lipgloss.Color(bg))
}
