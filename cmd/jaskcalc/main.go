package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/jask/jaskcalc/internal/config"
	"github.com/jask/jaskcalc/internal/replay"
	"github.com/jask/jaskcalc/internal/tui"
)

func main() {
	flags := pflag.NewFlagSet("jaskcalc", pflag.ExitOnError)
	config.BindFlags(flags)
	replayPath := flags.String("replay", "", "read tokens from a file (- for stdin) instead of running the keypad")
	quiet := flags.Bool("quiet", false, "with --replay, print only the final display")
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load(flags)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *replayPath != "" {
		if err := runReplay(ctx, *replayPath, *quiet); err != nil {
			log.Fatalf("replay: %v", err)
		}
		return
	}

	theme, err := tui.LookupTheme(cfg.UI.Theme)
	if err != nil {
		log.Fatalf("config: ui.theme: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Log.Path), 0o755); err != nil {
		log.Fatalf("mkdir log dir: %v", err)
	}
	logFile, err := tea.LogToFile(cfg.Log.Path, "jaskcalc")
	if err != nil {
		log.Fatalf("open log: %v", err)
	}
	defer logFile.Close()

	session := uuid.NewString()
	log.Printf("session=%s start theme=%s config=%s", session, theme.Name, cfg.Path())

	bindings := tui.ApplyActionKeybindings(tui.DefaultKeyBindings(), cfg.Keys)
	if unknown := tui.UnknownActions(bindings, cfg.Keys); len(unknown) > 0 {
		log.Printf("warn: ignoring key overrides for unknown actions: %s", strings.Join(unknown, ", "))
	}

	var saveMu sync.Mutex
	app := tui.New(tui.Options{
		Theme:     theme,
		ShowHelp:  cfg.UI.ShowHelp,
		Flash:     time.Duration(cfg.UI.FlashMS) * time.Millisecond,
		Bindings:  bindings,
		SessionID: session,
		Debug:     cfg.Log.Debug,
		SaveTheme: func(name string) error {
			saveMu.Lock()
			defer saveMu.Unlock()
			return config.SaveTheme(cfg.Path(), name)
		},
	})
	defer app.Close()

	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithMouseAllMotion()}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(app, opts...)
	if _, err := p.Run(); err != nil {
		log.Printf("session=%s exit: %v", session, err)
		fmt.Printf("error: %v\n", err)
	}
	log.Printf("session=%s end", session)
}

func runReplay(ctx context.Context, path string, quiet bool) error {
	var in io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	_, err := replay.Run(ctx, in, os.Stdout, replay.Options{Quiet: quiet})
	return err
}
