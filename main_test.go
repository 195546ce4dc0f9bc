package main

import (
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/pixelmenu/internal/app"
	"github.com/atomicstack/pixelmenu/internal/config"
	"github.com/atomicstack/pixelmenu/internal/sdlhost"
	"github.com/atomicstack/pixelmenu/internal/testutil"
)

func traceConfig(a app.Config) config.Config {
	return config.Config{
		App: a,
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{"demo": a.Demo},
		Args:  []string{"--demo", a.Demo},
	}
}

func fakeTerminal(called *bool) func() terminalInfo {
	return func() terminalInfo {
		*called = true
		return terminalInfo{Stdin: true, Stdout: true, Columns: 120, Rows: 40}
	}
}

func TestStartupPayloadForTerminalHost(t *testing.T) {
	cfg := traceConfig(app.Config{
		Backend: app.BackendTerm,
		Demo:    "rgb",
		Scale:   4,
		Tick:    30 * time.Millisecond,
		Evdev:   "/dev/input/event3, /dev/input/event4",
	})
	probed := false
	payload := startupPayload(cfg, fakeTerminal(&probed))

	if payload["backend"] != app.BackendTerm || payload["mode"] != app.BackendTerm {
		t.Fatalf("expected term backend and mode, got %v / %v", payload["backend"], payload["mode"])
	}
	disp, ok := payload["display"].(display)
	if !ok || disp.Demo != "rgb" || disp.Width != 128 || disp.Height != 160 {
		t.Fatalf("expected rgb 128x160 display, got %#v", payload["display"])
	}
	paths, ok := payload["evdev"].([]string)
	if !ok || len(paths) != 2 || paths[1] != "/dev/input/event4" {
		t.Fatalf("expected two evdev paths, got %#v", payload["evdev"])
	}
	if payload["sdlCompiled"] != sdlhost.Available() {
		t.Fatalf("expected sdlCompiled %v, got %v", sdlhost.Available(), payload["sdlCompiled"])
	}
	if payload["tick"] != "30ms" {
		t.Fatalf("expected tick 30ms, got %v", payload["tick"])
	}
	if !probed {
		t.Fatalf("expected terminal probe for the terminal host")
	}
	if term, ok := payload["terminal"].(terminalInfo); !ok || term.Columns != 120 {
		t.Fatalf("expected terminal details, got %#v", payload["terminal"])
	}
	flags, ok := payload["flags"].(map[string]string)
	if !ok || flags["demo"] != "rgb" {
		t.Fatalf("expected flags in payload, got %#v", payload["flags"])
	}
	if payload["trace"] != true || payload["logFile"] != "trace.log" {
		t.Fatalf("expected logging details, got %v / %v", payload["trace"], payload["logFile"])
	}
}

func TestStartupPayloadSkipsTerminalProbe(t *testing.T) {
	cases := []struct {
		name string
		cfg  app.Config
		mode string
	}{
		{"sdl", app.Config{Backend: app.BackendSDL, Demo: "bw"}, app.BackendSDL},
		{"list", app.Config{Backend: app.BackendTerm, Demo: "bw", List: true}, modeList},
		{"png", app.Config{Backend: app.BackendTerm, Demo: "bw", PNGPath: "out.png"}, modePNG},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			probed := false
			payload := startupPayload(traceConfig(tc.cfg), fakeTerminal(&probed))
			if probed {
				t.Fatalf("expected no terminal probe")
			}
			if _, ok := payload["terminal"]; ok {
				t.Fatalf("expected no terminal details")
			}
			if payload["mode"] != tc.mode {
				t.Fatalf("expected mode %q, got %v", tc.mode, payload["mode"])
			}
		})
	}
}

func TestStartupPayloadReportsMissingSDL(t *testing.T) {
	payload := startupPayload(traceConfig(app.Config{Backend: app.BackendSDL, Demo: "bw"}), nil)
	_, hasErr := payload["sdlError"]
	if hasErr == sdlhost.Available() {
		t.Fatalf("expected sdlError only without sdl support, got %v", payload["sdlError"])
	}
}

func TestBinaryListMatchesGolden(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}
	bin := testutil.BuildBinary(t)
	cmd := exec.Command(bin, "--list", "--demo", "rgb", "--log-file", filepath.Join(t.TempDir(), "pixelmenu.log"))
	cmd.Env = []string{"PIXELMENU_CONFIG="}
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("list run failed: %v", err)
	}
	testutil.AssertGolden(t, "list_rgb.golden", string(out))
}

func TestBinaryRejectsUnknownBackend(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}
	bin := testutil.BuildBinary(t)
	cmd := exec.Command(bin, "--backend", "x11", "--log-file", filepath.Join(t.TempDir(), "pixelmenu.log"))
	out, err := cmd.CombinedOutput()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 2 {
		t.Fatalf("expected exit code 2, got %v", err)
	}
	if !strings.Contains(string(out), "unknown backend") {
		t.Fatalf("expected backend error, got %q", out)
	}
}
