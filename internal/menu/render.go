package menu

import (
	"image"
	"unicode/utf8"

	"github.com/atomicstack/pixelmenu/internal/logging/events"
)

// titleInset is the padding between the title frame and the title text.
const titleInset = 2

// Layout holds the pixel geometry of a rendered menu.
type Layout struct {
	Frame     image.Rectangle
	Title     image.Point
	RowStart  int
	Spacing   int
	LabelX    int
	Underline image.Rectangle
}

// Row returns the top y coordinate of row i.
func (l Layout) Row(i int) int {
	return l.RowStart + i*l.Spacing
}

// Layout computes the geometry used by the next render.
func (m *Menu) Layout() Layout {
	o := m.options
	fh := o.Font.Height
	frame := image.Rect(o.Border, o.Border, m.size.X-o.Border, o.Border+fh+2*titleInset)
	titleX := m.size.X/2 - textWidth(m.title, o.Font)/2
	start := o.Border + titleInset + fh/2 + o.Spacing
	underlineY := start + fh + m.highlighted*o.Spacing
	label := m.entries[m.highlighted].Label
	return Layout{
		Frame:     frame,
		Title:     image.Pt(titleX, o.Border+titleInset),
		RowStart:  start,
		Spacing:   o.Spacing,
		LabelX:    o.Border,
		Underline: image.Rect(o.Border, underlineY, o.Border+textWidth(label, o.Font), underlineY+1),
	}
}

// Draw renders the menu onto s when it is dirty. While a submenu owns focus
// the call is forwarded to it and this level draws nothing. A surface error
// is returned unchanged and the menu stays dirty so the next call retries.
func (m *Menu) Draw(s Surface) error {
	if sub := m.submenu(); sub != nil {
		return sub.Draw(s)
	}
	err := m.redraw.Render(func() error {
		return m.render(s)
	})
	if err != nil {
		events.Menu.DrawError(m.title, err)
	}
	return err
}

func (m *Menu) render(s Surface) error {
	o := m.options
	layout := m.Layout()

	if err := s.Clear(o.Background); err != nil {
		return err
	}
	if err := s.StrokeRect(layout.Frame, o.Highlight, 1); err != nil {
		return err
	}
	if err := s.DrawText(m.title, layout.Title, o.Font, o.Text); err != nil {
		return err
	}
	for i, entry := range m.entries {
		y := layout.Row(i)
		if err := s.DrawText(entry.Label, image.Pt(layout.LabelX, y), o.Font, o.Text); err != nil {
			return err
		}
		glyph := Glyph(entry.Value)
		if glyph == "" {
			continue
		}
		x := m.size.X - o.Border - textWidth(glyph, o.Font)
		if err := s.DrawText(glyph, image.Pt(x, y), o.Font, o.Text); err != nil {
			return err
		}
	}
	if err := s.FillRect(layout.Underline, o.Text); err != nil {
		return err
	}
	events.Menu.Render(m.title, m.highlighted)
	return nil
}

func textWidth(s string, f Font) int {
	return utf8.RuneCountInString(s) * f.Advance
}
