package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/atomicstack/pixelmenu/internal/app"
	"github.com/atomicstack/pixelmenu/internal/backend"
	"github.com/atomicstack/pixelmenu/internal/theme"
	"github.com/atomicstack/pixelmenu/internal/ui"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfig    = "PIXELMENU_CONFIG"
	envBackend   = "PIXELMENU_BACKEND"
	envDemo      = "PIXELMENU_DEMO"
	envPalette   = "PIXELMENU_PALETTE"
	envScale     = "PIXELMENU_SCALE"
	envTick      = "PIXELMENU_TICK"
	envEvdev     = "PIXELMENU_EVDEV"
	envKeymap    = "PIXELMENU_KEYMAP"
	envWidth     = "PIXELMENU_WIDTH"
	envHeight    = "PIXELMENU_HEIGHT"
	envHelp      = "PIXELMENU_HELP_FOOTER"
	envTrace     = "PIXELMENU_TRACE"
	envLogFile   = "PIXELMENU_LOG_FILE"
	defaultScale = 4
)

// fileConfig mirrors the optional TOML configuration file.
type fileConfig struct {
	Backend string   `toml:"backend"`
	Demo    string   `toml:"demo"`
	Palette string   `toml:"palette"`
	Scale   int      `toml:"scale"`
	Tick    string   `toml:"tick"`
	Evdev   []string `toml:"evdev"`
	Keymap  string   `toml:"keymap"`
	Layout  struct {
		Border  *int `toml:"border"`
		Spacing *int `toml:"spacing"`
	} `toml:"layout"`
	Colors struct {
		Background string `toml:"background"`
		Text       string `toml:"text"`
		Highlight  string `toml:"highlight"`
	} `toml:"colors"`
	Log struct {
		File  string `toml:"file"`
		Trace bool   `toml:"trace"`
	} `toml:"log"`
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Values resolve
// in the order flag, environment, config file, built-in default.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	configPath := scanConfigPath(args, envOrDefault(env, envConfig, ""))
	file, err := loadFile(configPath)
	if err != nil {
		return Config{}, err
	}
	fileTick := ui.DefaultTick
	if file.Tick != "" {
		if fileTick, err = time.ParseDuration(file.Tick); err != nil {
			return Config{}, fmt.Errorf("config %s: tick: %w", configPath, err)
		}
	}

	fs := flag.NewFlagSet("pixelmenu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String("config", configPath, "path to a TOML configuration file")
	backendName := fs.String("backend", envOrDefault(env, envBackend, orString(file.Backend, app.BackendTerm)), "display host: term or sdl")
	demo := fs.String("demo", envOrDefault(env, envDemo, orString(file.Demo, "bw")), "demo menu tree: bw or rgb")
	palette := fs.String("palette", envOrDefault(env, envPalette, file.Palette), "named colour palette (empty uses the demo default)")
	bg := fs.String("bg", file.Colors.Background, "background colour override (#rrggbb)")
	fg := fs.String("fg", file.Colors.Text, "text colour override (#rrggbb)")
	highlight := fs.String("highlight", file.Colors.Highlight, "highlight colour override (#rrggbb)")
	border := fs.Int("border", orInt(file.Layout.Border, -1), "border inset in pixels (-1 uses the demo default)")
	spacing := fs.Int("spacing", orInt(file.Layout.Spacing, -1), "row spacing in pixels (-1 uses the demo default)")
	scale := fs.Int("scale", envOrInt(env, envScale, orPositive(file.Scale, defaultScale)), "pixel scale for sdl windows and png snapshots")
	tick := fs.Duration("tick", envOrDuration(env, envTick, fileTick), "frame period")
	focus := fs.String("focus", "", "highlight the entry best matching this label at startup")
	list := fs.Bool("list", false, "print the menu tree and exit")
	png := fs.String("png", "", "render the first frame to this PNG file and exit")
	evdev := fs.String("evdev", envOrDefault(env, envEvdev, strings.Join(file.Evdev, ",")), "comma-separated evdev device paths to read buttons from")
	keymap := fs.String("keymap", envOrDefault(env, envKeymap, file.Keymap), "evdev key overrides, e.g. KEY_W=up,KEY_S=down")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	helpFooter := fs.Bool("help-footer", envOrBool(env, envHelp, false), "show the key help footer")
	trace := fs.Bool("trace", envOrBool(env, envTrace, file.Log.Trace), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, file.Log.File), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Backend:    strings.ToLower(strings.TrimSpace(*backendName)),
			Demo:       strings.ToLower(strings.TrimSpace(*demo)),
			Palette:    strings.ToLower(strings.TrimSpace(*palette)),
			Background: *bg,
			Text:       *fg,
			Highlight:  *highlight,
			Border:     *border,
			Spacing:    *spacing,
			Scale:      *scale,
			Tick:       *tick,
			Focus:      *focus,
			List:       *list,
			PNGPath:    *png,
			Evdev:      *evdev,
			Keymap:     *keymap,
			ShowHelp:   *helpFooter,
			Width:      *width,
			Height:     *height,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"config":     configPath,
			"backend":    *backendName,
			"demo":       *demo,
			"palette":    *palette,
			"border":     strconv.Itoa(*border),
			"spacing":    strconv.Itoa(*spacing),
			"scale":      strconv.Itoa(*scale),
			"tick":       tick.String(),
			"focus":      *focus,
			"list":       strconv.FormatBool(*list),
			"png":        *png,
			"evdev":      *evdev,
			"keymap":     *keymap,
			"bg":         *bg,
			"fg":         *fg,
			"highlight":  *highlight,
			"helpFooter": strconv.FormatBool(*helpFooter),
			"width":      strconv.Itoa(*width),
			"height":     strconv.Itoa(*height),
			"trace":      strconv.FormatBool(*trace),
			"logFile":    *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// scanConfigPath finds --config ahead of full flag parsing so the file can
// seed flag defaults.
func scanConfigPath(args []string, fallback string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		if value, ok := strings.CutPrefix(name, "config="); ok {
			return value
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return fallback
}

func loadFile(path string) (fileConfig, error) {
	var file fileConfig
	if path == "" {
		return file, nil
	}
	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		return fileConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return fileConfig{}, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return file, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func orString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func orInt(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func orPositive(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the resolved configuration names known hosts, demos and
// palettes and carries usable numbers and colours.
func Validate(cfg Config) error {
	a := cfg.App
	switch a.Backend {
	case app.BackendTerm, app.BackendSDL:
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", a.Backend, app.BackendTerm, app.BackendSDL)
	}
	if !contains(app.DemoNames(), a.Demo) {
		return fmt.Errorf("unknown demo %q (want one of %s)", a.Demo, strings.Join(app.DemoNames(), ", "))
	}
	if a.Palette != "" {
		if _, ok := theme.Lookup(a.Palette); !ok {
			return fmt.Errorf("unknown palette %q (want one of %s)", a.Palette, strings.Join(theme.Names(), ", "))
		}
	}
	for name, value := range map[string]string{"bg": a.Background, "fg": a.Text, "highlight": a.Highlight} {
		if value == "" {
			continue
		}
		if _, err := theme.ParseHex(value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	if a.Scale <= 0 {
		return fmt.Errorf("scale must be > 0 (got %d)", a.Scale)
	}
	if a.Tick <= 0 {
		return fmt.Errorf("tick must be > 0 (got %s)", a.Tick)
	}
	if _, err := backend.ParseKeymap(a.Keymap); err != nil {
		return err
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
