package framebuffer

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/atomicstack/pixelmenu/internal/input"
	"github.com/atomicstack/pixelmenu/internal/menu"
)

var (
	black = color.RGBA{A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func TestClearAndFill(t *testing.T) {
	fb := New(image.Pt(8, 4))
	if err := fb.Clear(black); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if got := fb.At(7, 3); got != black {
		t.Fatalf("expected black, got %v", got)
	}
	if err := fb.FillRect(image.Rect(2, 1, 4, 2), white); err != nil {
		t.Fatalf("FillRect: %v", err)
	}
	if fb.At(2, 1) != white || fb.At(3, 1) != white {
		t.Fatalf("expected filled pixels")
	}
	if fb.At(4, 1) != black || fb.At(2, 2) != black {
		t.Fatalf("expected fill to stop at the rectangle edge")
	}
	if err := fb.FillRect(image.Rect(6, 2, 20, 20), white); err != nil {
		t.Fatalf("expected clipped fill to succeed, got %v", err)
	}
}

func TestStrokeRect(t *testing.T) {
	fb := New(image.Pt(10, 10))
	_ = fb.Clear(black)
	if err := fb.StrokeRect(image.Rect(1, 1, 9, 9), white, 1); err != nil {
		t.Fatalf("StrokeRect: %v", err)
	}
	for _, p := range []image.Point{{1, 1}, {8, 1}, {1, 8}, {8, 8}, {4, 1}, {1, 4}} {
		if fb.At(p.X, p.Y) != white {
			t.Fatalf("expected outline at %v", p)
		}
	}
	for _, p := range []image.Point{{0, 0}, {4, 4}, {9, 9}, {2, 2}} {
		if fb.At(p.X, p.Y) != black {
			t.Fatalf("expected untouched pixel at %v", p)
		}
	}
	if err := fb.StrokeRect(image.Rect(1, 1, 9, 9), white, 0); err == nil {
		t.Fatalf("expected zero width to fail")
	}
}

func TestDrawTextStaysInCell(t *testing.T) {
	fb := New(image.Pt(40, 20))
	_ = fb.Clear(black)
	f := menu.Font7x13
	if err := fb.DrawText("MM", image.Pt(3, 2), f, white); err != nil {
		t.Fatalf("DrawText: %v", err)
	}
	cell := image.Rect(3, 2, 3+2*f.Advance, 2+f.Height)
	lit := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			if fb.At(x, y) == black {
				continue
			}
			if !(image.Point{x, y}).In(cell) {
				t.Fatalf("pixel %d,%d lit outside cell %v", x, y, cell)
			}
			lit++
		}
	}
	if lit == 0 {
		t.Fatalf("expected text to light pixels")
	}
}

func TestDrawTextWithoutFace(t *testing.T) {
	fb := New(image.Pt(4, 4))
	if err := fb.DrawText("x", image.Point{}, menu.Font{Advance: 1, Height: 1}, white); !errors.Is(err, ErrNoFace) {
		t.Fatalf("expected ErrNoFace, got %v", err)
	}
}

func TestWritePNGScales(t *testing.T) {
	fb := New(image.Pt(4, 3))
	_ = fb.Clear(white)
	var buf bytes.Buffer
	if err := fb.WritePNG(&buf, 3); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(12, 9) {
		t.Fatalf("expected 12x9, got %v", got)
	}
}

func TestMenuRendersOntoFramebuffer(t *testing.T) {
	m, err := menu.New("Demo", menu.DefaultOptions(), image.Pt(128, 64), []menu.Entry{
		{Label: "Start", Value: menu.NewAction()},
		{Label: "Sound on", Value: menu.NewToggle(false)},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fb := New(image.Pt(128, 64))
	if err := m.Draw(fb); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if fb.At(2, 2) != white {
		t.Fatalf("expected title frame corner lit")
	}
	if fb.At(64, 40) == (color.RGBA{}) {
		t.Fatalf("expected background cleared to opaque black")
	}
	m.Update(input.Snapshot{Down: true})
	if err := m.Draw(fb); err != nil {
		t.Fatalf("Draw: %v", err)
	}
}
