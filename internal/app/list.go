package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/atomicstack/pixelmenu/internal/format/table"
	"github.com/atomicstack/pixelmenu/internal/framebuffer"
	"github.com/atomicstack/pixelmenu/internal/logging/events"
	"github.com/atomicstack/pixelmenu/internal/menu"
)

// ListLines renders the menu tree as an aligned table.
func ListLines(root *menu.Menu) []string {
	rows := [][]string{{"MENU", "ENTRY", "KIND", "VALUE", "RANGE"}}
	for _, row := range root.Describe() {
		rows = append(rows, []string{
			row.Path,
			strings.Repeat("  ", row.Depth) + row.Label,
			row.Kind,
			row.Glyph,
			row.Bounds,
		})
	}
	return table.Format(rows, nil)
}

// WriteList prints ListLines to w.
func WriteList(w io.Writer, root *menu.Menu) error {
	for _, line := range ListLines(root) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteSnapshot renders the first frame of root and saves it as a PNG.
func WriteSnapshot(root *menu.Menu, fb *framebuffer.Framebuffer, path string, scale int) error {
	if err := root.Draw(fb); err != nil {
		return fmt.Errorf("render snapshot: %w", err)
	}
	if err := fb.SavePNG(path, scale); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	size := fb.Size()
	if scale > 1 {
		size = size.Mul(scale)
	}
	events.App.Snapshot(path, size.X, size.Y)
	return nil
}
