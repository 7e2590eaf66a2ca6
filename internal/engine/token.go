package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Token is one atomic key press from the calculator keypad.
type Token string

const (
	Clear   Token = "C"
	Delete  Token = "DEL"
	Equals  Token = "="
	Percent Token = "%"
	Point   Token = "."
	Add     Token = "+"
	Sub     Token = "-"
	Mul     Token = "*"
	Div     Token = "/"
)

// Digit returns the token for a single decimal digit. It panics when d is out
// of range, which is always a programming error.
func Digit(d int) Token {
	if d < 0 || d > 9 {
		panic(fmt.Sprintf("engine: digit %d out of range", d))
	}
	return Token(rune('0' + d))
}

// Alphabet lists every valid token in keypad order.
func Alphabet() []Token {
	return []Token{
		Clear, Delete, Percent, Div,
		"7", "8", "9", Mul,
		"4", "5", "6", Sub,
		"1", "2", "3", Add,
		"0", Point, Equals,
	}
}

// ErrUnknownToken is returned by ParseToken for input outside the alphabet.
var ErrUnknownToken = errors.New("unknown token")

// ParseToken validates s against the token alphabet. Surrounding whitespace is
// ignored and "del" is accepted in any case.
func ParseToken(s string) (Token, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, string(Delete)) {
		return Delete, nil
	}
	for _, t := range Alphabet() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownToken, s)
}

// IsDigit reports whether t is one of "0".."9".
func (t Token) IsDigit() bool {
	return len(t) == 1 && t[0] >= '0' && t[0] <= '9'
}

// IsOperator reports whether t is a binary operator or percent.
func (t Token) IsOperator() bool {
	switch t {
	case Add, Sub, Mul, Div, Percent:
		return true
	}
	return false
}

func (t Token) String() string { return string(t) }
