package testutil

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/atomicstack/pixelmenu/internal/menu"
)

// Op is one recorded drawing call.
type Op struct {
	Kind  string
	Rect  image.Rectangle
	Point image.Point
	Text  string
	Color color.Color
	Width int
}

func (o Op) String() string {
	switch o.Kind {
	case "clear":
		return "clear"
	case "stroke":
		return fmt.Sprintf("stroke %v w=%d", o.Rect, o.Width)
	case "fill":
		return fmt.Sprintf("fill %v", o.Rect)
	case "text":
		return fmt.Sprintf("text %q at %v", o.Text, o.Point)
	}
	return o.Kind
}

// RecordingSurface implements menu.Surface by recording every call.
type RecordingSurface struct {
	Ops []Op

	failKind string
	failErr  error
}

var _ menu.Surface = (*RecordingSurface)(nil)

// FailNext makes the next call of the given kind return err once.
func (r *RecordingSurface) FailNext(kind string, err error) {
	r.failKind = kind
	r.failErr = err
}

// Reset drops recorded operations.
func (r *RecordingSurface) Reset() {
	r.Ops = nil
}

// Texts returns the strings drawn, in order.
func (r *RecordingSurface) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// Dump renders the recorded operations one per line.
func (r *RecordingSurface) Dump() string {
	lines := make([]string, len(r.Ops))
	for i, op := range r.Ops {
		lines[i] = op.String()
	}
	return strings.Join(lines, "\n")
}

func (r *RecordingSurface) record(op Op) error {
	if r.failErr != nil && r.failKind == op.Kind {
		err := r.failErr
		r.failKind, r.failErr = "", nil
		return err
	}
	r.Ops = append(r.Ops, op)
	return nil
}

func (r *RecordingSurface) Clear(c color.Color) error {
	return r.record(Op{Kind: "clear", Color: c})
}

func (r *RecordingSurface) StrokeRect(rect image.Rectangle, c color.Color, width int) error {
	return r.record(Op{Kind: "stroke", Rect: rect, Color: c, Width: width})
}

func (r *RecordingSurface) FillRect(rect image.Rectangle, c color.Color) error {
	return r.record(Op{Kind: "fill", Rect: rect, Color: c})
}

func (r *RecordingSurface) DrawText(s string, p image.Point, _ menu.Font, c color.Color) error {
	return r.record(Op{Kind: "text", Text: s, Point: p, Color: c})
}
