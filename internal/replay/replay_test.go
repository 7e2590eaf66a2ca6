package replay

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/jaskcalc/internal/engine"
)

func TestRunPrintsEveryDisplay(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	final, err := Run(context.Background(), strings.NewReader("2 + 2 =\n"), &out, Options{})
	require.NoError(t, err)
	require.Equal(t, "4", final)
	require.Equal(t, "2\n2+\n2+2\n4\n", out.String())
}

func TestRunQuietWithComments(t *testing.T) {
	t.Parallel()

	script := strings.Join([]string{
		"# percent of a total",
		"2 0 0 * 5 %",
		"",
		"=",
		"# keep going from the result",
		"DEL del 1 =",
	}, "\n")

	var out bytes.Buffer
	final, err := Run(context.Background(), strings.NewReader(script), &out, Options{Quiet: true})
	require.NoError(t, err)
	// 200*5% = 10, DEL twice leaves "0", then "1"
	require.Equal(t, "1", final)
	require.Equal(t, "1\n", out.String())
}

func TestRunTrace(t *testing.T) {
	t.Parallel()

	var toks []engine.Token
	var displays []string
	_, err := Run(context.Background(), strings.NewReader("5 / 0 = +"), &bytes.Buffer{}, Options{
		Quiet: true,
		Trace: func(tok engine.Token, display string) {
			toks = append(toks, tok)
			displays = append(displays, display)
		},
	})
	require.NoError(t, err)
	require.Equal(t, []engine.Token{"5", engine.Div, "0", engine.Equals, engine.Add}, toks)
	require.Equal(t, []string{"5", "5/", "5/0", "Error", "+"}, displays)
}

func TestRunUnknownToken(t *testing.T) {
	t.Parallel()

	final, err := Run(context.Background(), strings.NewReader("1 +\n2 x 3"), &bytes.Buffer{}, Options{Quiet: true})
	require.ErrorIs(t, err, engine.ErrUnknownToken)
	require.ErrorContains(t, err, "line 2")
	require.Equal(t, "1+2", final)
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	final, err := Run(ctx, strings.NewReader("1 2 3"), &bytes.Buffer{}, Options{})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, engine.Zero, final)
}

func TestRunLongLine(t *testing.T) {
	t.Parallel()

	script := strings.Repeat("C ", 100_000) + "6 * 7 =\n"
	require.Greater(t, len(script), 64*1024)

	var out bytes.Buffer
	final, err := Run(context.Background(), strings.NewReader(script), &out, Options{Quiet: true})
	require.NoError(t, err)
	require.Equal(t, "42", final)
	require.Equal(t, "42\n", out.String())
}

func TestRunLineTooLong(t *testing.T) {
	t.Parallel()

	script := strings.Repeat("C ", maxLineBytes/2+1)
	_, err := Run(context.Background(), strings.NewReader(script), io.Discard, Options{Quiet: true})
	require.ErrorIs(t, err, bufio.ErrTooLong)
}
