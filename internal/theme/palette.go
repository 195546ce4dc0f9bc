package theme

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/pixelmenu/internal/menu"
)

// Palette is the set of colors a menu is drawn with.
type Palette struct {
	Name       string
	Background color.RGBA
	Text       color.RGBA
	Highlight  color.RGBA
}

var palettes = map[string]Palette{
	"mono": {
		Name:       "mono",
		Background: color.RGBA{A: 0xff},
		Text:       color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Highlight:  color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	},
	"oled-blue": {
		Name:       "oled-blue",
		Background: color.RGBA{R: 0x00, G: 0x14, B: 0x28, A: 0xff},
		Text:       color.RGBA{R: 0x5e, G: 0xc4, B: 0xff, A: 0xff},
		Highlight:  color.RGBA{R: 0x5e, G: 0xc4, B: 0xff, A: 0xff},
	},
	"rgb": {
		Name:       "rgb",
		Background: color.RGBA{B: 0xff, A: 0xff},
		Text:       color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Highlight:  color.RGBA{G: 0xff, A: 0xff},
	},
}

// Lookup returns the named palette.
func Lookup(name string) (Palette, bool) {
	p, ok := palettes[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// Names lists the known palettes in sorted order.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply copies the palette colors into opts.
func (p Palette) Apply(opts menu.Options) menu.Options {
	opts.Background = p.Background
	opts.Text = p.Text
	opts.Highlight = p.Highlight
	return opts
}

// Override replaces each color whose hex string is non-empty.
func (p Palette) Override(background, text, highlight string) (Palette, error) {
	for _, o := range []struct {
		hex string
		dst *color.RGBA
	}{
		{background, &p.Background},
		{text, &p.Text},
		{highlight, &p.Highlight},
	} {
		if strings.TrimSpace(o.hex) == "" {
			continue
		}
		c, err := ParseHex(o.hex)
		if err != nil {
			return Palette{}, err
		}
		*o.dst = c
	}
	return p, nil
}

// ParseHex parses "#rgb" or "#rrggbb" into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// Hex formats c as "#rrggbb".
func Hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// TerminalColor converts c for use with lipgloss.
func TerminalColor(c color.Color) lipgloss.Color {
	return lipgloss.Color(Hex(c))
}
