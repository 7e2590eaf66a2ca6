package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/lipgloss"
)

// Theme is a named palette. Key colours follow the roles of the keypad:
// plain keys, operators, clear and equals.
type Theme struct {
	Name string

	Base    lipgloss.Color // app background
	Surface lipgloss.Color // display and plain keys
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Accent  lipgloss.Color // title
	Focus   lipgloss.Color // focused key

	Operator lipgloss.Color
	Clear    lipgloss.Color
	Equals   lipgloss.Color
	OnAccent lipgloss.Color // text on coloured keys

	Error   lipgloss.Color
	Success lipgloss.Color
}

// Catppuccin Mocha, https://catppuccin.com/palette
var mocha = Theme{
	Name:     "mocha",
	Base:     "#1e1e2e",
	Surface:  "#313244",
	Text:     "#cdd6f4",
	Muted:    "#a6adc8",
	Border:   "#585b70",
	Accent:   "#f5c2e7",
	Focus:    "#b4befe",
	Operator: "#fab387",
	Clear:    "#f38ba8",
	Equals:   "#a6e3a1",
	OnAccent: "#11111b",
	Error:    "#f38ba8",
	Success:  "#a6e3a1",
}

// Catppuccin Latte
var latte = Theme{
	Name:     "latte",
	Base:     "#eff1f5",
	Surface:  "#ccd0da",
	Text:     "#4c4f69",
	Muted:    "#6c6f85",
	Border:   "#9ca0b0",
	Accent:   "#ea76cb",
	Focus:    "#7287fd",
	Operator: "#fe640b",
	Clear:    "#d20f39",
	Equals:   "#40a02b",
	OnAccent: "#eff1f5",
	Error:    "#d20f39",
	Success:  "#40a02b",
}

// The soft grey look of the browser widget.
var neumorphic = Theme{
	Name:     "neumorphic",
	Base:     "#f0f0f0",
	Surface:  "#e0e0e0",
	Text:     "#333333",
	Muted:    "#555555",
	Border:   "#bebebe",
	Accent:   "#555555",
	Focus:    "#ff9500",
	Operator: "#ff9500",
	Clear:    "#ff3b30",
	Equals:   "#34c759",
	OnAccent: "#ffffff",
	Error:    "#ff3b30",
	Success:  "#34c759",
}

var themes = []Theme{mocha, latte, neumorphic}

// ErrUnknownTheme is returned by LookupTheme for names with no palette.
var ErrUnknownTheme = errors.New("unknown theme")

// ThemeNames lists the built-in themes in cycling order.
func ThemeNames() []string {
	out := make([]string, 0, len(themes))
	for _, t := range themes {
		out = append(out, t.Name)
	}
	return out
}

// DefaultTheme is used when no theme is configured.
func DefaultTheme() Theme { return mocha }

// LookupTheme finds a theme by case-insensitive name. For unknown names the
// error suggests the closest built-in name when one is near enough.
func LookupTheme(name string) (Theme, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	if want == "" {
		return DefaultTheme(), nil
	}
	best, bestDist := "", -1
	for _, t := range themes {
		if t.Name == want {
			return t, nil
		}
		d := levenshtein.ComputeDistance(want, t.Name)
		if bestDist < 0 || d < bestDist {
			best, bestDist = t.Name, d
		}
	}
	if bestDist >= 0 && bestDist <= len(best)/2 {
		return Theme{}, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownTheme, name, best)
	}
	return Theme{}, fmt.Errorf("%w %q (choose one of %s)", ErrUnknownTheme, name, strings.Join(ThemeNames(), ", "))
}

// nextTheme returns the theme after current in cycling order.
func nextTheme(current string) Theme {
	for i, t := range themes {
		if t.Name == current {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}
