package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/pixelmenu/internal/backend"
	"github.com/atomicstack/pixelmenu/internal/data/dispatcher"
	"github.com/atomicstack/pixelmenu/internal/framebuffer"
	"github.com/atomicstack/pixelmenu/internal/input"
	"github.com/atomicstack/pixelmenu/internal/logging"
	"github.com/atomicstack/pixelmenu/internal/sdlhost"
	"github.com/atomicstack/pixelmenu/internal/state"
	"github.com/atomicstack/pixelmenu/internal/ui"
	"github.com/atomicstack/pixelmenu/internal/ui/command"
)

const (
	BackendTerm = "term"
	BackendSDL  = "sdl"
)

// Config describes user-provided application options.
type Config struct {
	Backend    string
	Demo       string
	Palette    string
	Background string
	Text       string
	Highlight  string
	Border     int
	Spacing    int
	Scale      int
	Tick       time.Duration
	Focus      string
	List       bool
	PNGPath    string
	Evdev      string
	Keymap     string
	ShowHelp   bool
	Width      int
	Height     int
}

// Run bootstraps the selected host and blocks until it exits.
func Run(cfg Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return run(ctx, cfg, os.Stdout)
}

func run(ctx context.Context, cfg Config, out io.Writer) error {
	demo, err := BuildDemo(cfg)
	if err != nil {
		return fmt.Errorf("build demo: %w", err)
	}
	root := demo.Root
	if strings.TrimSpace(cfg.Focus) != "" {
		if _, err := Focus(root, cfg.Focus); err != nil {
			return err
		}
	}
	if cfg.List {
		return WriteList(out, root)
	}

	fb := framebuffer.New(demo.Size)
	if cfg.PNGPath != "" {
		return WriteSnapshot(root, fb, cfg.PNGPath, cfg.Scale)
	}

	var extra input.Source
	if paths := SplitPaths(cfg.Evdev); len(paths) > 0 {
		keymap, err := backend.ParseKeymap(cfg.Keymap)
		if err != nil {
			return err
		}
		watcher := backend.NewWatcher(paths, keymap)
		defer watcher.Stop()
		go drainWatcher(watcher)
		extra = watcher
	}

	bus := command.New(demo.Handlers)
	switch cfg.Backend {
	case BackendSDL:
		var watch state.WatchStore
		if demo.Watch != "" {
			watch = state.NewWatchStore(demo.Watch)
		}
		d := dispatcher.New(root, fb, state.NewSelectionStore(8), watch)
		hostCfg := sdlhost.Config{
			Title: root.Title(),
			Scale: cfg.Scale,
			Pacer: backend.NewPacer(cfg.Tick),
			Extra: extra,
			Watch: demo.Watch,
			Out:   out,
		}
		return sdlhost.Run(ctx, hostCfg, fb, d, bus)
	default:
		model := ui.NewModel(root, fb, bus, ui.Options{
			Tick:     cfg.Tick,
			Extra:    extra,
			Watch:    demo.Watch,
			Width:    cfg.Width,
			Height:   cfg.Height,
			ShowHelp: cfg.ShowHelp,
		})
		program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
		_, err := program.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	}
}

func drainWatcher(w *backend.Watcher) {
	for evt := range w.Events() {
		if evt.Err != nil {
			logging.Error(fmt.Errorf("input device %s: %w", evt.Path, evt.Err))
		}
	}
}

// SplitPaths parses a comma-separated device list, dropping blanks.
func SplitPaths(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
