package tui

import (
	"testing"

	"github.com/jask/jaskcalc/internal/engine"
)

func TestKeypadCoversAlphabet(t *testing.T) {
	pad := newKeypad()
	for _, tok := range engine.Alphabet() {
		if _, ok := pad.find(tok); !ok {
			t.Fatalf("token %q has no key", tok)
		}
	}
	for r, row := range pad.rows {
		cols := 0
		for _, k := range row {
			cols += k.span
		}
		if cols != keypadColumns {
			t.Fatalf("row %d spans %d columns, want %d", r, cols, keypadColumns)
		}
	}
}

func TestKeypadMove(t *testing.T) {
	pad := newKeypad()
	start, _ := pad.find("8")

	steps := []struct {
		dr, dc int
		want   engine.Token
	}{
		{1, 0, "5"},
		{1, 0, "2"},
		{1, 0, "0"},
		{1, 0, "0"},
		{0, 1, engine.Point},
		{0, 1, engine.Equals},
		{0, 1, engine.Equals},
		{-1, 0, engine.Add},
		{-4, 0, engine.Div},
		{0, -5, engine.Clear},
		{-1, 0, engine.Clear},
	}
	p := start
	for i, s := range steps {
		p = pad.move(p, s.dr, s.dc)
		if got := pad.at(p).token; got != s.want {
			t.Fatalf("step %d: focus = %q, want %q", i, got, s.want)
		}
	}
}
