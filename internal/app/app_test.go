package app

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/pixelmenu/internal/input"
	"github.com/atomicstack/pixelmenu/internal/testutil"
	"github.com/atomicstack/pixelmenu/internal/ui/command"
)

func baseConfig(demo string) Config {
	return Config{Backend: BackendTerm, Demo: demo, Border: -1, Spacing: -1, Scale: 1}
}

func TestDemoNames(t *testing.T) {
	names := DemoNames()
	if len(names) != 2 || names[0] != "bw" || names[1] != "rgb" {
		t.Fatalf("expected [bw rgb], got %v", names)
	}
}

func TestDemoSize(t *testing.T) {
	if size, ok := DemoSize("bw"); !ok || size.X != 128 || size.Y != 64 {
		t.Fatalf("expected bw 128x64, got %v %v", size, ok)
	}
	if _, ok := DemoSize("cmyk"); ok {
		t.Fatalf("expected unknown demo to report false")
	}
}

func TestBuildDemoUsesDemoDefaults(t *testing.T) {
	demo, err := BuildDemo(baseConfig("rgb"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if demo.Size.X != 128 || demo.Size.Y != 160 {
		t.Fatalf("expected 128x160, got %v", demo.Size)
	}
	if demo.Watch != "Heater" {
		t.Fatalf("expected Heater watch, got %q", demo.Watch)
	}
	layout := demo.Root.Layout()
	if layout.Frame.Min.X != 15 || layout.Spacing != 15 {
		t.Fatalf("expected border 15 spacing 15, got %v spacing %d", layout.Frame, layout.Spacing)
	}
	if _, ok := demo.Handlers["Cheese 3"]; !ok {
		t.Fatalf("expected order handler for Cheese 3")
	}
}

func TestBuildDemoAppliesOverrides(t *testing.T) {
	cfg := baseConfig("bw")
	cfg.Border = 0
	cfg.Spacing = 20
	cfg.Palette = "mono"
	demo, err := BuildDemo(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	layout := demo.Root.Layout()
	if layout.Frame.Min.X != 0 || layout.Spacing != 20 {
		t.Fatalf("expected overrides applied, got %v spacing %d", layout.Frame, layout.Spacing)
	}
}

func TestBuildDemoErrors(t *testing.T) {
	cases := map[string]func(*Config){
		"demo":    func(c *Config) { c.Demo = "cmyk" },
		"palette": func(c *Config) { c.Palette = "sepia" },
		"colour":  func(c *Config) { c.Text = "#12" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := baseConfig("bw")
			mutate(&cfg)
			if _, err := BuildDemo(cfg); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestOrderHandlerReportsLabel(t *testing.T) {
	demo, err := BuildDemo(baseConfig("rgb"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bus := command.New(demo.Handlers)
	entry, ok := demo.Root.Lookup("Melon")
	if !ok {
		t.Fatalf("expected Melon entry")
	}
	cmd := bus.Dispatch(entry)
	if cmd == nil {
		t.Fatalf("expected command for Melon")
	}
	msg, ok := cmd().(command.ResultMsg)
	if !ok || msg.Info != "Melon ordered" {
		t.Fatalf("expected order result, got %#v", msg)
	}
}

func TestShopDemoSubmenuRoundTrip(t *testing.T) {
	demo, err := BuildDemo(baseConfig("rgb"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root := demo.Root
	tap := func(b input.Button) {
		root.Update(input.Snapshot{}.With(b, true))
		root.Update(input.Snapshot{})
	}
	tap(input.ButtonPrimary)
	if !root.Delegating() || root.Active().Title() != "Food Choices" {
		t.Fatalf("expected Food Choices to own input")
	}
	tap(input.ButtonUp)
	if root.Active().Highlighted() != 7 {
		t.Fatalf("expected wrap to Back, got %d", root.Active().Highlighted())
	}
	tap(input.ButtonPrimary)
	if root.Delegating() {
		t.Fatalf("expected Back to return to Shop")
	}
}

func TestFocusPicksClosestLabel(t *testing.T) {
	demo, err := BuildDemo(baseConfig("rgb"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cases := []struct {
		query string
		label string
		index int
	}{
		{"heat", "Heater", 2},
		{"MU", "Menu", 0},
		{"music", "Music on", 1},
	}
	for _, tc := range cases {
		label, err := Focus(demo.Root, tc.query)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.query, err)
		}
		if label != tc.label || demo.Root.Highlighted() != tc.index {
			t.Fatalf("%q: expected %q at %d, got %q at %d", tc.query, tc.label, tc.index, label, demo.Root.Highlighted())
		}
	}
	if _, err := Focus(demo.Root, "zebra"); err == nil {
		t.Fatalf("expected error for unmatched query")
	}
}

func TestListGolden(t *testing.T) {
	for _, name := range DemoNames() {
		t.Run(name, func(t *testing.T) {
			demo, err := BuildDemo(baseConfig(name))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			var out bytes.Buffer
			if err := WriteList(&out, demo.Root); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertGolden(t, "list_"+name+".golden", out.String())
		})
	}
}

func TestRunListMode(t *testing.T) {
	cfg := baseConfig("bw")
	cfg.List = true
	var out bytes.Buffer
	if err := run(context.Background(), cfg, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertGolden(t, "list_bw.golden", out.String())
}

func TestRunSnapshotMode(t *testing.T) {
	cfg := baseConfig("bw")
	cfg.Scale = 2
	cfg.Focus = "vol"
	cfg.PNGPath = filepath.Join(t.TempDir(), "menu.png")
	if err := run(context.Background(), cfg, new(bytes.Buffer)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f, err := os.Open(cfg.PNGPath)
	if err != nil {
		t.Fatalf("expected png written: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 256 || b.Dy() != 128 {
		t.Fatalf("expected 256x128 snapshot, got %v", b)
	}
}

func TestRunRejectsUnknownFocus(t *testing.T) {
	cfg := baseConfig("bw")
	cfg.Focus = "zebra"
	cfg.List = true
	if err := run(context.Background(), cfg, new(bytes.Buffer)); err == nil {
		t.Fatalf("expected focus error")
	}
}

func TestRunRejectsUnknownDemo(t *testing.T) {
	cfg := baseConfig("cmyk")
	cfg.List = true
	if err := run(context.Background(), cfg, new(bytes.Buffer)); err == nil {
		t.Fatalf("expected demo error")
	}
}

func TestRunRejectsBadKeymap(t *testing.T) {
	cfg := baseConfig("bw")
	cfg.Evdev = "/dev/input/event0"
	cfg.Keymap = "KEY_NOPE=up"
	if err := run(context.Background(), cfg, new(bytes.Buffer)); err == nil {
		t.Fatalf("expected keymap error")
	}
}

func TestSplitPaths(t *testing.T) {
	got := SplitPaths(" /dev/a, ,/dev/b ,")
	if len(got) != 2 || got[0] != "/dev/a" || got[1] != "/dev/b" {
		t.Fatalf("expected two paths, got %v", got)
	}
}
