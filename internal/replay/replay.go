// Package replay drives a calculator from a token script instead of a
// keyboard. Tokens are separated by whitespace; lines starting with '#' are
// comments.
package replay

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jask/jaskcalc/internal/engine"
)

// maxLineBytes bounds a single script line.
const maxLineBytes = 1 << 20

// Options controls replay output.
type Options struct {
	// Quiet writes only the final display instead of one line per token.
	Quiet bool
	// Trace is called after every token, if set.
	Trace func(tok engine.Token, display string)
}

// Run feeds every token in r to a fresh calculator and returns the final
// display. An unknown token stops the run with an error naming its line, and
// a line longer than 1 MiB stops it with bufio.ErrTooLong.
func Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) (string, error) {
	calc := engine.NewCalculator()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		for _, field := range strings.Fields(text) {
			if err := ctx.Err(); err != nil {
				return calc.Display(), err
			}
			tok, err := engine.ParseToken(field)
			if err != nil {
				return calc.Display(), fmt.Errorf("line %d: %w", line, err)
			}
			display := calc.Press(tok)
			if opts.Trace != nil {
				opts.Trace(tok, display)
			}
			if !opts.Quiet {
				if _, err := fmt.Fprintln(w, display); err != nil {
					return display, fmt.Errorf("write display: %w", err)
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return calc.Display(), fmt.Errorf("read tokens: %w", err)
	}
	if opts.Quiet {
		if _, err := fmt.Fprintln(w, calc.Display()); err != nil {
			return calc.Display(), fmt.Errorf("write display: %w", err)
		}
	}
	return calc.Display(), nil
}
