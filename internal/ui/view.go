package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/pixelmenu/internal/theme"
)

const (
	halfBlock           = "▀"
	breadcrumbSeparator = " › "
)

// View renders the simulated display followed by the status area.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	lines := []string{styles.Title.Render(m.breadcrumb())}
	lines = append(lines, styles.Screen.Render(m.screen))
	if status := m.statusLine(); status != "" {
		lines = append(lines, status)
	}
	switch {
	case m.errMsg != "":
		lines = append(lines, styles.Error.Render(m.errMsg))
	case m.infoMsg != "":
		lines = append(lines, styles.Info.Render(m.infoMsg))
	}
	if m.showHelp {
		lines = append(lines, styles.Footer.Render(m.help.View(m.keys)))
	}
	return clip(strings.Join(lines, "\n"), m.width, m.height)
}

func (m *Model) breadcrumb() string {
	root := m.dispatcher.Root()
	segments := []string{root.Title()}
	if active := root.Active(); active != root {
		segments = append(segments, active.Title())
	}
	return strings.Join(segments, breadcrumbSeparator)
}

func (m *Model) statusLine() string {
	var parts []string
	if last, ok := m.selections.Last(); ok {
		parts = append(parts, styles.Selection.Render(last.Label)+" "+styles.Path.Render("("+last.Menu+")"))
	}
	if m.watch != nil {
		if v, known := m.watch.Value(); known {
			parts = append(parts, styles.Watched.Render(fmt.Sprintf("%s %d", m.watch.Label(), v)))
		}
	}
	return strings.Join(parts, "  ")
}

// renderPixels packs two pixel rows into each terminal row using an upper
// half block: the foreground paints the top pixel and the background the
// bottom one. Runs of identical cells share one styled segment.
func renderPixels(img *image.RGBA) string {
	b := img.Bounds()
	rows := make([]string, 0, (b.Dy()+1)/2)
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		var line strings.Builder
		var top, bottom color.RGBA
		run := 0
		for x := b.Min.X; x < b.Max.X; x++ {
			t := img.RGBAAt(x, y)
			var bt color.RGBA
			if y+1 < b.Max.Y {
				bt = img.RGBAAt(x, y+1)
			}
			if run > 0 && (t != top || bt != bottom) {
				line.WriteString(halfBlocks(top, bottom, run))
				run = 0
			}
			top, bottom = t, bt
			run++
		}
		if run > 0 {
			line.WriteString(halfBlocks(top, bottom, run))
		}
		rows = append(rows, line.String())
	}
	return strings.Join(rows, "\n")
}

func halfBlocks(top, bottom color.RGBA, n int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TerminalColor(top)).
		Background(theme.TerminalColor(bottom)).
		Render(strings.Repeat(halfBlock, n))
}

// clip limits the view to the terminal size. Zero dimensions are unbounded.
func clip(view string, width, height int) string {
	lines := strings.Split(view, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	if width > 0 {
		for i, line := range lines {
			if ansi.StringWidth(line) > width {
				lines[i] = ansi.Truncate(line, width, "…")
			}
		}
	}
	return strings.Join(lines, "\n")
}
