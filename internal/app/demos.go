package app

import (
	"fmt"
	"image"
	"sort"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/pixelmenu/internal/menu"
	"github.com/atomicstack/pixelmenu/internal/theme"
	"github.com/atomicstack/pixelmenu/internal/ui/command"
)

// Demo is a ready-to-run menu tree with its display geometry.
type Demo struct {
	Name     string
	Root     *menu.Menu
	Size     image.Point
	Watch    string
	Handlers map[string]command.Handler
}

type demoDef struct {
	size    image.Point
	palette string
	border  int
	spacing int
	watch   string
	build   func(opts menu.Options, size image.Point) (*menu.Menu, map[string]command.Handler, error)
}

var demos = map[string]demoDef{
	"bw": {
		size:    image.Pt(128, 64),
		palette: "oled-blue",
		border:  2,
		spacing: 13,
		watch:   "Volume",
		build:   buildBW,
	},
	"rgb": {
		size:    image.Pt(128, 160),
		palette: "rgb",
		border:  15,
		spacing: 15,
		watch:   "Heater",
		build:   buildRGB,
	},
}

// DemoNames lists the available demos in sorted order.
func DemoNames() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DemoSize returns the display size of the named demo.
func DemoSize(name string) (image.Point, bool) {
	def, ok := demos[name]
	return def.size, ok
}

// BuildDemo constructs the demo named by cfg.Demo with palette and layout
// overrides applied.
func BuildDemo(cfg Config) (Demo, error) {
	def, ok := demos[cfg.Demo]
	if !ok {
		return Demo{}, fmt.Errorf("unknown demo %q", cfg.Demo)
	}
	opts, err := demoOptions(def, cfg)
	if err != nil {
		return Demo{}, err
	}
	root, handlers, err := def.build(opts, def.size)
	if err != nil {
		return Demo{}, err
	}
	return Demo{Name: cfg.Demo, Root: root, Size: def.size, Watch: def.watch, Handlers: handlers}, nil
}

func demoOptions(def demoDef, cfg Config) (menu.Options, error) {
	name := def.palette
	if cfg.Palette != "" {
		name = cfg.Palette
	}
	palette, ok := theme.Lookup(name)
	if !ok {
		return menu.Options{}, fmt.Errorf("unknown palette %q", name)
	}
	palette, err := palette.Override(cfg.Background, cfg.Text, cfg.Highlight)
	if err != nil {
		return menu.Options{}, err
	}
	opts := palette.Apply(menu.DefaultOptions())
	opts.Border = def.border
	opts.Spacing = def.spacing
	if cfg.Border >= 0 {
		opts.Border = cfg.Border
	}
	if cfg.Spacing >= 0 {
		opts.Spacing = cfg.Spacing
	}
	return opts, nil
}

func buildBW(opts menu.Options, size image.Point) (*menu.Menu, map[string]command.Handler, error) {
	root, err := menu.New("Demo", opts, size, []menu.Entry{
		{Label: "Start", Value: menu.NewAction()},
		{Label: "Sound on", Value: menu.NewToggle(false)},
		{Label: "Volume", Value: menu.NewBoundedInt(-3, -10, 10)},
	})
	if err != nil {
		return nil, nil, err
	}
	handlers := map[string]command.Handler{
		"Start": func(entry menu.Entry) tea.Cmd {
			return command.Info(entry.Label, "starting")
		},
	}
	return root, handlers, nil
}

func buildRGB(opts menu.Options, size image.Point) (*menu.Menu, map[string]command.Handler, error) {
	foodLabels := []string{"Cake", "Melon", "Cheese 1", "Cheese 2", "Cheese 3", "Cheese 4", "Cheese 5"}
	entries := make([]menu.Entry, 0, len(foodLabels)+1)
	handlers := make(map[string]command.Handler, len(foodLabels))
	for _, label := range foodLabels {
		entries = append(entries, menu.Entry{Label: label, Value: menu.NewAction()})
		handlers[label] = orderHandler
	}
	entries = append(entries, menu.Entry{Label: "Back", Value: menu.NewExit()})
	food, err := menu.New("Food Choices", opts, size, entries)
	if err != nil {
		return nil, nil, err
	}
	root, err := menu.New("Shop", opts, size, []menu.Entry{
		{Label: "Menu", Value: menu.NewSubMenu(food)},
		{Label: "Music on", Value: menu.NewToggle(false)},
		{Label: "Heater", Value: menu.NewBoundedInt(-3, -10, 10)},
	})
	if err != nil {
		return nil, nil, err
	}
	return root, handlers, nil
}

func orderHandler(entry menu.Entry) tea.Cmd {
	return command.Info(entry.Label, "%s ordered", entry.Label)
}
