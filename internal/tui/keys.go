package tui

import (
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	scopeKeypad = "keypad"
	scopeHelp   = "help"
)

const (
	actionQuit   = "quit"
	actionHelp   = "help"
	actionTheme  = "theme"
	actionUp     = "up"
	actionDown   = "down"
	actionLeft   = "left"
	actionRight  = "right"
	actionPress  = "press"
	actionInput  = "input"
	actionClear  = "clear"
	actionDelete = "delete"
	actionEquals = "equals"
	actionClose  = "close"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

// KeyRegistry resolves key presses to actions. When several bindings share a
// key in one scope, the first registered wins.
type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	return slices.DeleteFunc(slices.Clone(r.bindings), func(b KeyBinding) bool {
		return !b.activeIn(scope)
	})
}

// Action returns the action msg triggers in scope, or "" if it is unbound.
func (r *KeyRegistry) Action(msg tea.KeyMsg, scope string) string {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.activeIn(scope) && b.matches(pressed) {
			return b.Action
		}
	}
	return ""
}

func (b KeyBinding) activeIn(scope string) bool {
	return len(b.Scopes) == 0 || slices.Contains(b.Scopes, "*") || slices.Contains(b.Scopes, scope)
}

func (b KeyBinding) matches(pressed string) bool {
	return slices.ContainsFunc(b.Keys, func(k string) bool { return normalizeKey(k) == pressed })
}

// HelpBindings converts the bindings of a scope for bubbles/help. Bindings
// with an empty description are left out.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	var out []key.Binding
	for _, b := range r.BindingsForScope(scope) {
		if len(b.Keys) == 0 || b.Description == "" {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(helpKeyLabel(b.Keys), b.Description)))
	}
	return out
}

func helpKeyLabel(keys []string) string {
	if len(keys) > 3 {
		return keys[0] + "…" + keys[len(keys)-1]
	}
	return strings.Join(keys, "/")
}

// Typed spaces arrive as " ".
func normalizeKey(k string) string {
	if k == " " {
		return "space"
	}
	return strings.ToLower(strings.TrimSpace(k))
}

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q", "ctrl+c"}, Action: actionQuit, Description: "quit", Scopes: []string{"*"}},
		{Keys: []string{"?"}, Action: actionHelp, Description: "help", Scopes: []string{"*"}},
		{Keys: []string{"t"}, Action: actionTheme, Description: "theme", Scopes: []string{scopeKeypad}},
		{Keys: []string{"up", "k"}, Action: actionUp, Description: "", Scopes: []string{scopeKeypad}},
		{Keys: []string{"down", "j"}, Action: actionDown, Description: "", Scopes: []string{scopeKeypad}},
		{Keys: []string{"left", "h"}, Action: actionLeft, Description: "", Scopes: []string{scopeKeypad}},
		{Keys: []string{"right", "l"}, Action: actionRight, Description: "move", Scopes: []string{scopeKeypad}},
		{Keys: []string{"enter", "space"}, Action: actionPress, Description: "press key", Scopes: []string{scopeKeypad}},
		{Keys: []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ".", "+", "-", "*", "/", "%"}, Action: actionInput, Description: "type", Scopes: []string{scopeKeypad}},
		{Keys: []string{"="}, Action: actionEquals, Description: "evaluate", Scopes: []string{scopeKeypad}},
		{Keys: []string{"backspace", "delete"}, Action: actionDelete, Description: "delete", Scopes: []string{scopeKeypad}},
		{Keys: []string{"esc", "c"}, Action: actionClear, Description: "clear", Scopes: []string{scopeKeypad}},
		{Keys: []string{"esc"}, Action: actionClose, Description: "close", Scopes: []string{scopeHelp}},
	}
}

// ApplyActionKeybindings returns a copy of bindings where every action named
// in actionKeys is bound to those keys instead of its defaults.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := slices.Clone(bindings)
	for i := range out {
		keys := out[i].Keys
		if override := actionKeys[out[i].Action]; len(override) > 0 {
			keys = override
		}
		out[i].Keys = slices.Clone(keys)
		out[i].Scopes = slices.Clone(out[i].Scopes)
	}
	return out
}

// UnknownActions returns the override names that match no binding, sorted.
func UnknownActions(bindings []KeyBinding, actionKeys map[string][]string) []string {
	known := make(map[string]bool, len(bindings))
	for _, b := range bindings {
		known[b.Action] = true
	}
	var out []string
	for action := range actionKeys {
		if !known[action] {
			out = append(out, action)
		}
	}
	sort.Strings(out)
	return out
}
