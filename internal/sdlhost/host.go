// Package sdlhost shows a menu framebuffer in an SDL window. The window
// itself needs cgo and the SDL2 libraries and is only compiled with the sdl
// build tag; without it Run returns ErrUnavailable.
package sdlhost

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/pixelmenu/internal/backend"
	"github.com/atomicstack/pixelmenu/internal/data/dispatcher"
	"github.com/atomicstack/pixelmenu/internal/input"
	"github.com/atomicstack/pixelmenu/internal/logging"
	"github.com/atomicstack/pixelmenu/internal/ui/command"
)

// ErrUnavailable is returned by Run in builds without SDL support.
var ErrUnavailable = errors.New("sdl host unavailable: rebuild with -tags sdl")

// Config configures the window host.
type Config struct {
	Title string
	Scale int
	Pacer *backend.Pacer
	Extra input.Source
	Watch string
	Out   io.Writer
}

// frame applies the host side effects of one dispatcher tick.
func frame(cfg Config, res dispatcher.Result, bus *command.Bus) {
	if res.Err != nil {
		logging.Error(res.Err)
	}
	if res.Selected && bus != nil {
		if cmd := bus.Dispatch(res.Entry); cmd != nil {
			report(cfg.Out, cmd())
		}
	}
	if res.WatchChanged && cfg.Out != nil {
		fmt.Fprintf(cfg.Out, "%s = %d\n", cfg.Watch, res.Watched)
	}
}

func report(w io.Writer, msg tea.Msg) {
	res, ok := msg.(command.ResultMsg)
	if !ok {
		return
	}
	if res.Err != nil {
		logging.Error(fmt.Errorf("%s: %w", res.Label, res.Err))
		return
	}
	if w != nil && res.Info != "" {
		fmt.Fprintln(w, res.Info)
	}
}
