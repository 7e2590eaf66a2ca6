package tui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/jask/jaskcalc/internal/engine"
)

// Options configures an App.
type Options struct {
	Theme    Theme
	ShowHelp bool
	// Flash is how long a pressed key stays highlighted. Zero disables it.
	Flash     time.Duration
	Bindings  []KeyBinding
	SessionID string
	// Debug logs every token with the display before and after.
	Debug bool
	// SaveTheme persists a theme chosen at runtime. May be nil.
	SaveTheme func(name string) error
}

// App is the keypad shell around an engine.Calculator.
type App struct {
	calc  *engine.Calculator
	pad   keypad
	focus position
	keys  *KeyRegistry
	help  help.Model
	zones *zone.Manager

	theme  Theme
	styles styles

	showHelp bool
	fullHelp bool
	// typing is set by direct token keys; enter then means "=".
	typing bool

	// pressed is drawn active until the flash tick with the same seq arrives.
	pressed   engine.Token
	pressSeq  int
	flash     time.Duration
	mouseDown engine.Token

	status    string
	statusErr bool

	width, height int

	sessionID string
	debug     bool
	saveTheme func(name string) error
}

type flashDoneMsg struct{ seq int }

type themeSavedMsg struct {
	name string
	err  error
}

func New(opts Options) *App {
	if opts.Theme.Name == "" {
		opts.Theme = DefaultTheme()
	}
	bindings := opts.Bindings
	if len(bindings) == 0 {
		bindings = DefaultKeyBindings()
	}
	pad := newKeypad()
	focus, _ := pad.find("7")
	h := help.New()
	h.ShortSeparator = "  "
	return &App{
		calc:      engine.NewCalculator(),
		pad:       pad,
		focus:     focus,
		keys:      NewKeyRegistry(bindings),
		help:      h,
		zones:     zone.New(),
		theme:     opts.Theme,
		styles:    newStyles(opts.Theme),
		showHelp:  opts.ShowHelp,
		flash:     opts.Flash,
		sessionID: opts.SessionID,
		debug:     opts.Debug,
		saveTheme: opts.SaveTheme,
	}
}

func (a *App) Init() tea.Cmd { return nil }

// Display returns the calculator display as rendered.
func (a *App) Display() string { return a.calc.Display() }

// Close releases the mouse zone tracker.
func (a *App) Close() { a.zones.Close() }

func (a *App) scope() string {
	if a.fullHelp {
		return scopeHelp
	}
	return scopeKeypad
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
		return a, nil
	case flashDoneMsg:
		if m.seq == a.pressSeq {
			a.pressed = ""
		}
		return a, nil
	case themeSavedMsg:
		if m.err != nil {
			a.setStatus("save theme: "+m.err.Error(), true)
			log.Printf("session=%s save theme %q: %v", a.sessionID, m.name, m.err)
		} else {
			a.setStatus("theme: "+m.name, false)
		}
		return a, nil
	case tea.MouseMsg:
		return a, a.handleMouse(m)
	case tea.KeyMsg:
		return a, a.handleKey(m)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch a.keys.Action(msg, a.scope()) {
	case actionQuit:
		return tea.Quit
	case actionHelp:
		a.fullHelp = !a.fullHelp
	case actionClose:
		a.fullHelp = false
	case actionTheme:
		return a.cycleTheme()
	case actionUp:
		a.moveFocus(-1, 0)
	case actionDown:
		a.moveFocus(1, 0)
	case actionLeft:
		a.moveFocus(0, -1)
	case actionRight:
		a.moveFocus(0, 1)
	case actionPress:
		if a.typing {
			return a.press(engine.Equals)
		}
		return a.press(a.pad.at(a.focus).token)
	case actionEquals:
		a.typing = true
		return a.press(engine.Equals)
	case actionDelete:
		a.typing = true
		return a.press(engine.Delete)
	case actionClear:
		a.typing = true
		return a.press(engine.Clear)
	case actionInput:
		a.typing = true
		tok, err := engine.ParseToken(msg.String())
		if err != nil {
			// an input override bound a key outside the alphabet
			a.setStatus(err.Error(), true)
			return nil
		}
		return a.press(tok)
	}
	return nil
}

func (a *App) moveFocus(dr, dc int) {
	a.focus = a.pad.move(a.focus, dr, dc)
	a.typing = false
}

func zoneID(tok engine.Token) string { return "key:" + string(tok) }

// handleMouse mirrors the browser widget: moving over a key hovers it,
// pressing shows it active, releasing over the same key presses it.
func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if a.fullHelp {
		return nil
	}
	pos, ok := a.keyUnder(msg)
	if ok {
		a.typing = false
	}
	switch msg.Action {
	case tea.MouseActionMotion:
		if ok {
			a.focus = pos
		}
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !ok {
			return nil
		}
		a.focus = pos
		a.mouseDown = a.pad.at(pos).token
		a.pressed = a.mouseDown
	case tea.MouseActionRelease:
		down := a.mouseDown
		a.mouseDown = ""
		a.pressed = ""
		if ok && down != "" && a.pad.at(pos).token == down {
			return a.press(down)
		}
	}
	return nil
}

func (a *App) keyUnder(msg tea.MouseMsg) (position, bool) {
	for r, row := range a.pad.rows {
		for i, k := range row {
			if z := a.zones.Get(zoneID(k.token)); z != nil && z.InBounds(msg) {
				return position{row: r, idx: i}, true
			}
		}
	}
	return position{}, false
}

// press forwards one token to the engine and starts the active flash.
func (a *App) press(tok engine.Token) tea.Cmd {
	before := a.calc.Display()
	after := a.calc.Press(tok)
	if pos, ok := a.pad.find(tok); ok {
		a.focus = pos
	}
	if a.debug {
		log.Printf("session=%s token=%q display=%q -> %q", a.sessionID, tok, before, after)
	}
	if err := a.calc.Err(); err != nil {
		a.setStatus(err.Error(), true)
	} else {
		a.setStatus("", false)
	}

	a.pressSeq++
	if a.flash <= 0 {
		a.pressed = ""
		return nil
	}
	a.pressed = tok
	seq := a.pressSeq
	return tea.Tick(a.flash, func(time.Time) tea.Msg { return flashDoneMsg{seq: seq} })
}

func (a *App) cycleTheme() tea.Cmd {
	a.theme = nextTheme(a.theme.Name)
	a.styles = newStyles(a.theme)
	a.setStatus("theme: "+a.theme.Name, false)
	if a.saveTheme == nil {
		return nil
	}
	name, save := a.theme.Name, a.saveTheme
	return func() tea.Msg {
		return themeSavedMsg{name: name, err: save(name)}
	}
}

func (a *App) setStatus(text string, isErr bool) {
	a.status = text
	a.statusErr = isErr
}
