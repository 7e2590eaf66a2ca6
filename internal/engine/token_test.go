package engine

import (
	"errors"
	"testing"
)

func TestParseToken(t *testing.T) {
	for _, tok := range Alphabet() {
		got, err := ParseToken(string(tok))
		if err != nil {
			t.Fatalf("ParseToken(%q) error = %v", tok, err)
		}
		if got != tok {
			t.Fatalf("ParseToken(%q) = %q", tok, got)
		}
	}

	if got, err := ParseToken(" del "); err != nil || got != Delete {
		t.Fatalf("ParseToken(del) = %q, %v; want DEL", got, err)
	}

	for _, bad := range []string{"", "x", "10", "c", "^"} {
		if _, err := ParseToken(bad); !errors.Is(err, ErrUnknownToken) {
			t.Fatalf("ParseToken(%q) error = %v, want ErrUnknownToken", bad, err)
		}
	}
}

func TestAlphabet(t *testing.T) {
	all := Alphabet()
	if len(all) != 19 {
		t.Fatalf("len(Alphabet()) = %d, want 19", len(all))
	}
	digits := 0
	for _, tok := range all {
		if tok.IsDigit() {
			digits++
		}
	}
	if digits != 10 {
		t.Fatalf("digit tokens = %d, want 10", digits)
	}
}

func TestTokenClasses(t *testing.T) {
	if Digit(7) != "7" {
		t.Fatalf("Digit(7) = %q", Digit(7))
	}
	for _, tok := range []Token{Add, Sub, Mul, Div, Percent} {
		if !tok.IsOperator() {
			t.Fatalf("%q.IsOperator() = false", tok)
		}
	}
	for _, tok := range []Token{Clear, Delete, Equals, Point, "3"} {
		if tok.IsOperator() {
			t.Fatalf("%q.IsOperator() = true", tok)
		}
	}
}
