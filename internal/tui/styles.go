package tui

import "github.com/charmbracelet/lipgloss"

const (
	cellWidth = 7
	cellGap   = 1
)

type keyState uint8

const (
	keyIdle keyState = iota
	keyHover
	keyActive
)

type styles struct {
	app       lipgloss.Style
	title     lipgloss.Style
	display   lipgloss.Style
	displayEr lipgloss.Style
	status    lipgloss.Style
	statusErr lipgloss.Style
	help      lipgloss.Style
	keys      map[keyRole]lipgloss.Style

	base    lipgloss.Color
	focus   lipgloss.Color
	onFocus lipgloss.Color
}

func newStyles(t Theme) styles {
	keyBase := lipgloss.NewStyle().
		Padding(1, 0).
		Align(lipgloss.Center).
		Bold(true)
	return styles{
		app:   lipgloss.NewStyle().Background(t.Base).Foreground(t.Text),
		title: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		display: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Background(t.Surface).
			Foreground(t.Text).
			Bold(true).
			Padding(0, 1).
			Align(lipgloss.Right),
		displayEr: lipgloss.NewStyle().Foreground(t.Error).Background(t.Surface).Bold(true),
		status:    lipgloss.NewStyle().Foreground(t.Success),
		statusErr: lipgloss.NewStyle().Foreground(t.Error),
		help:      lipgloss.NewStyle().Foreground(t.Muted),
		keys: map[keyRole]lipgloss.Style{
			rolePlain:    keyBase.Background(t.Surface).Foreground(t.Text),
			roleOperator: keyBase.Background(t.Operator).Foreground(t.OnAccent),
			roleClear:    keyBase.Background(t.Clear).Foreground(t.OnAccent),
			roleEquals:   keyBase.Background(t.Equals).Foreground(t.OnAccent),
		},
		base:    t.Base,
		focus:   t.Focus,
		onFocus: t.OnAccent,
	}
}

// key returns the style of a key cap. The focused key takes the focus colour
// with an underlined label; a pressed key is drawn inverted until its flash
// ends.
func (s styles) key(role keyRole, state keyState, span int) lipgloss.Style {
	st := s.keys[role].Width(span*cellWidth + (span-1)*cellGap)
	switch state {
	case keyHover:
		st = st.Background(s.focus).Foreground(s.onFocus).Underline(true)
	case keyActive:
		st = st.Reverse(true)
	}
	return st
}

func keypadWidth() int {
	return keypadColumns*cellWidth + (keypadColumns-1)*cellGap
}
