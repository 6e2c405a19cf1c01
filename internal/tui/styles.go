package tui

import (
	"github.com/charmbracelet/lipgloss"

	"calendar-pro/internal/model"
	"calendar-pro/internal/notify"
)

// palette is one color scheme. Colors are ANSI 256 codes.
type palette struct {
	fg, muted, accent, today, highlight, selected, border string
	success, failure, info                                 string
	category                                               map[model.Category]string
}

var (
	lightPalette = palette{
		fg: "235", muted: "245", accent: "63", today: "33", highlight: "220", selected: "189", border: "250",
		success: "28", failure: "160", info: "25",
		category: map[model.Category]string{
			model.CategoryWork:     "25",
			model.CategoryPersonal: "91",
			model.CategoryHealth:   "28",
			model.CategorySocial:   "166",
			model.CategoryOther:    "240",
		},
	}
	darkPalette = palette{
		fg: "252", muted: "243", accent: "141", today: "39", highlight: "178", selected: "60", border: "238",
		success: "82", failure: "196", info: "117",
		category: map[model.Category]string{
			model.CategoryWork:     "75",
			model.CategoryPersonal: "177",
			model.CategoryHealth:   "114",
			model.CategorySocial:   "215",
			model.CategoryOther:    "248",
		},
	}
)

type styles struct {
	p palette

	header    lipgloss.Style
	title     lipgloss.Style
	weekday   lipgloss.Style
	day       lipgloss.Style
	otherDay  lipgloss.Style
	today     lipgloss.Style
	selected  lipgloss.Style
	highlight lipgloss.Style
	panel     lipgloss.Style
	focused   lipgloss.Style
	muted     lipgloss.Style
	key       lipgloss.Style
	action    lipgloss.Style
	errText   lipgloss.Style
	prompt    lipgloss.Style
}

func newStyles(theme model.Theme) styles {
	p := lightPalette
	if theme == model.ThemeDark {
		p = darkPalette
	}

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.border)).
		Padding(0, 1)

	return styles{
		p:         p,
		header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.accent)),
		title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.fg)),
		weekday:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.muted)),
		day:       lipgloss.NewStyle().Foreground(lipgloss.Color(p.fg)),
		otherDay:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted)),
		today:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.today)).Underline(true),
		selected:  lipgloss.NewStyle().Background(lipgloss.Color(p.selected)),
		highlight: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.highlight)),
		panel:     panel,
		focused:   panel.BorderForeground(lipgloss.Color(p.accent)),
		muted:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted)),
		key:       lipgloss.NewStyle().Foreground(lipgloss.Color(p.accent)),
		action:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.fg)),
		errText:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.failure)),
		prompt:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.accent)),
	}
}

func (s styles) category(c model.Category) lipgloss.Style {
	color, ok := s.p.category[c]
	if !ok {
		color = s.p.category[model.CategoryOther]
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

func (s styles) priority(p model.Priority) lipgloss.Style {
	switch p {
	case model.PriorityHigh:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(s.p.failure)).Bold(true)
	case model.PriorityLow:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(s.p.success))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(s.p.highlight))
	}
}

func (s styles) notification(kind notify.Kind) lipgloss.Style {
	switch kind {
	case notify.KindSuccess:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(s.p.success))
	case notify.KindError:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(s.p.failure))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(s.p.info))
	}
}
