package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/jaskcalc/internal/engine"
)

const title = "Fancy Calculator"

func (a *App) View() string {
	width := keypadWidth()
	parts := []string{
		a.styles.title.Render(title),
		a.renderDisplay(width),
		a.renderKeypad(),
		a.renderStatus(width),
	}
	if a.fullHelp {
		parts = append(parts, a.renderFullHelp())
	} else if a.showHelp {
		parts = append(parts, a.styles.help.Render(a.help.ShortHelpView(a.keys.HelpBindings(scopeKeypad))))
	}
	body := a.styles.app.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	if a.width > 0 && a.height > 0 {
		body = lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, body,
			lipgloss.WithWhitespaceBackground(a.styles.base))
	}
	return a.zones.Scan(body)
}

func (a *App) renderDisplay(width int) string {
	inner := width - 4 // border and padding
	text := fitLeft(a.calc.Display(), inner)
	if a.calc.Display() == engine.Error {
		text = a.styles.displayEr.Render(text)
	}
	return a.styles.display.Width(width - 2).Render(text)
}

// fitLeft keeps the tail of s, the end of the expression being the part the
// user is typing.
func fitLeft(s string, width int) string {
	w := ansi.StringWidth(s)
	if width <= 0 || w <= width {
		return s
	}
	return ansi.TruncateLeft(s, w-width+1, "…")
}

func (a *App) renderKeypad() string {
	gap := strings.Repeat(" ", cellGap)
	rows := make([]string, 0, len(a.pad.rows))
	for r, row := range a.pad.rows {
		cells := make([]string, 0, len(row)*2)
		for i, k := range row {
			if i > 0 {
				cells = append(cells, gap)
			}
			state := keyIdle
			switch {
			case k.token == a.pressed && a.pressed != "":
				state = keyActive
			case a.focus == (position{row: r, idx: i}):
				state = keyHover
			}
			cell := a.styles.key(k.role, state, k.span).Render(k.label())
			cells = append(cells, a.zones.Mark(zoneID(k.token), cell))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (a *App) renderStatus(width int) string {
	msg := strings.TrimSpace(a.status)
	if msg == "" {
		return ""
	}
	msg = ansi.Truncate(strings.ReplaceAll(msg, "\n", " "), width, "…")
	if a.statusErr {
		return a.styles.statusErr.Render(msg)
	}
	return a.styles.status.Render(msg)
}

func (a *App) renderFullHelp() string {
	bindings := a.keys.HelpBindings(scopeKeypad)
	var nav, calc, app []key.Binding
	for _, b := range bindings {
		switch b.Help().Desc {
		case "move", "press key":
			nav = append(nav, b)
		case "quit", "help", "theme":
			app = append(app, b)
		default:
			calc = append(calc, b)
		}
	}
	closing := a.keys.HelpBindings(scopeHelp)
	return a.styles.help.Render(a.help.FullHelpView([][]key.Binding{calc, nav, append(app, closing...)}))
}
