package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/atomicstack/pixelmenu/internal/app"
	"github.com/atomicstack/pixelmenu/internal/config"
	"github.com/atomicstack/pixelmenu/internal/logging"
	"github.com/atomicstack/pixelmenu/internal/logging/events"
	"github.com/atomicstack/pixelmenu/internal/sdlhost"
)

const (
	modeList = "list"
	modePNG  = "png"
)

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	events.App.Start(startupPayload(cfg, probeTerminal))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type display struct {
	Demo   string `json:"demo"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type terminalInfo struct {
	Stdin   bool   `json:"stdin"`
	Stdout  bool   `json:"stdout"`
	Columns int    `json:"columns,omitempty"`
	Rows    int    `json:"rows,omitempty"`
	Error   string `json:"error,omitempty"`
}

// runMode names what this invocation will do: a one-shot listing or
// snapshot, or the interactive backend.
func runMode(cfg app.Config) string {
	switch {
	case cfg.List:
		return modeList
	case cfg.PNGPath != "":
		return modePNG
	default:
		return cfg.Backend
	}
}

// startupPayload describes the resolved run for the trace log. The terminal
// is only probed when the terminal host will actually draw into it.
func startupPayload(cfg config.Config, probe func() terminalInfo) map[string]interface{} {
	a := cfg.App
	size, _ := app.DemoSize(a.Demo)
	mode := runMode(a)
	payload := map[string]interface{}{
		"argv":        cfg.Args,
		"flags":       cfg.Flags,
		"backend":     a.Backend,
		"mode":        mode,
		"display":     display{Demo: a.Demo, Width: size.X, Height: size.Y},
		"scale":       a.Scale,
		"tick":        a.Tick.String(),
		"sdlCompiled": sdlhost.Available(),
		"evdev":       app.SplitPaths(a.Evdev),
		"trace":       cfg.Logging.Trace,
		"logFile":     cfg.Logging.FilePath,
	}
	if mode == app.BackendSDL && !sdlhost.Available() {
		payload["sdlError"] = sdlhost.ErrUnavailable.Error()
	}
	if mode == app.BackendTerm && probe != nil {
		payload["terminal"] = probe()
	}
	return payload
}

func probeTerminal() terminalInfo {
	in, out := int(os.Stdin.Fd()), int(os.Stdout.Fd())
	info := terminalInfo{Stdin: term.IsTerminal(in), Stdout: term.IsTerminal(out)}
	if !info.Stdout {
		return info
	}
	cols, rows, err := term.GetSize(out)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.Columns, info.Rows = cols, rows
	return info
}
