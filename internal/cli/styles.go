package cli

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/earthinspires/internal/model"
)

type colors struct {
	title    lipgloss.Color
	subtle   lipgloss.Color
	ocean    lipgloss.Color
	land     lipgloss.Color
	accent   lipgloss.Color
	divider  lipgloss.Color
	border   lipgloss.Color
	flashFg  lipgloss.Color
	flashBg  lipgloss.Color
	selected lipgloss.Color
}

var (
	darkColors = colors{
		title:    lipgloss.Color("#94a3b8"),
		subtle:   lipgloss.Color("#64748b"),
		ocean:    lipgloss.Color("#1e3a8a"),
		land:     lipgloss.Color("#4ade80"),
		accent:   lipgloss.Color("#60a5fa"),
		divider:  lipgloss.Color("#334155"),
		border:   lipgloss.Color("#475569"),
		flashFg:  lipgloss.Color("#0f172a"),
		flashBg:  lipgloss.Color("#f8fafc"),
		selected: lipgloss.Color("#93c5fd"),
	}

	lightColors = colors{
		title:    lipgloss.Color("#334155"),
		subtle:   lipgloss.Color("#64748b"),
		ocean:    lipgloss.Color("#3b82f6"),
		land:     lipgloss.Color("#15803d"),
		accent:   lipgloss.Color("#2563eb"),
		divider:  lipgloss.Color("#cbd5e1"),
		border:   lipgloss.Color("#94a3b8"),
		flashFg:  lipgloss.Color("#f8fafc"),
		flashBg:  lipgloss.Color("#0f172a"),
		selected: lipgloss.Color("#1d4ed8"),
	}

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#ef4444")).
			Bold(true).
			Padding(0, 1)
)

// palette holds the styles for the active theme.
type palette struct {
	theme model.Theme

	app      lipgloss.Style
	title    lipgloss.Style
	subtitle lipgloss.Style
	ocean    lipgloss.Style
	land     lipgloss.Style
	flash    lipgloss.Style
	control  lipgloss.Style
	key      lipgloss.Style
	divider  lipgloss.Style
	modal    lipgloss.Style
	empty    lipgloss.Style
	delegate list.DefaultDelegate
}

func newPalette(theme model.Theme) *palette {
	p := &palette{}
	p.apply(theme)

	return p
}

// apply swaps every style to theme.
func (p *palette) apply(theme model.Theme) {
	c := darkColors
	if theme.IsLight() {
		c = lightColors
	}

	p.theme = theme
	p.app = lipgloss.NewStyle().Margin(1, 2)
	p.title = lipgloss.NewStyle().Bold(true).Foreground(c.title)
	p.subtitle = lipgloss.NewStyle().Foreground(c.subtle)
	p.ocean = lipgloss.NewStyle().Foreground(c.ocean)
	p.land = lipgloss.NewStyle().Foreground(c.land)
	p.flash = lipgloss.NewStyle().Foreground(c.flashFg).Background(c.flashBg).Bold(true)
	p.control = lipgloss.NewStyle().
		Foreground(c.accent).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.border).
		Padding(0, 2)
	p.key = lipgloss.NewStyle().Foreground(c.accent).Bold(true)
	p.divider = lipgloss.NewStyle().Foreground(c.divider)
	p.modal = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.border).
		Padding(1, 2)
	p.empty = lipgloss.NewStyle().Foreground(c.subtle).Italic(true)

	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.Foreground(c.selected).BorderForeground(c.selected)
	d.Styles.SelectedDesc = d.Styles.SelectedDesc.Foreground(c.subtle).BorderForeground(c.selected)
	p.delegate = d
}
