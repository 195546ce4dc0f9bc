// Package framebuffer provides an in-memory RGBA drawing surface for menus.
package framebuffer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/atomicstack/pixelmenu/internal/menu"
)

// ErrNoFace is returned by DrawText when the font carries no face.
var ErrNoFace = errors.New("framebuffer: font has no face")

// Framebuffer is a fixed-size RGBA image implementing menu.Surface.
type Framebuffer struct {
	img *image.RGBA
}

var _ menu.Surface = (*Framebuffer)(nil)

// New allocates a framebuffer of the given size.
func New(size image.Point) *Framebuffer {
	return &Framebuffer{img: image.NewRGBA(image.Rectangle{Max: size})}
}

// Image exposes the backing image. Callers must not retain it across draws
// if they need a stable copy.
func (f *Framebuffer) Image() *image.RGBA {
	return f.img
}

// Size returns the framebuffer dimensions.
func (f *Framebuffer) Size() image.Point {
	return f.img.Bounds().Size()
}

// At returns the color at x, y.
func (f *Framebuffer) At(x, y int) color.RGBA {
	return f.img.RGBAAt(x, y)
}

// Clear fills the whole framebuffer with c.
func (f *Framebuffer) Clear(c color.Color) error {
	draw.Draw(f.img, f.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return nil
}

// FillRect paints r clipped to the framebuffer bounds.
func (f *Framebuffer) FillRect(r image.Rectangle, c color.Color) error {
	r = r.Canon().Intersect(f.img.Bounds())
	if r.Empty() {
		return nil
	}
	draw.Draw(f.img, r, image.NewUniform(c), image.Point{}, draw.Src)
	return nil
}

// StrokeRect outlines r with lines width pixels thick drawn inside r.
func (f *Framebuffer) StrokeRect(r image.Rectangle, c color.Color, width int) error {
	if width <= 0 {
		return fmt.Errorf("framebuffer: stroke width %d", width)
	}
	r = r.Canon()
	if r.Empty() {
		return nil
	}
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width),
		image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y),
		image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		if err := f.FillRect(e.Intersect(r), c); err != nil {
			return err
		}
	}
	return nil
}

// DrawText draws s with the top of the text cell at p.
func (f *Framebuffer) DrawText(s string, p image.Point, fnt menu.Font, c color.Color) error {
	if fnt.Face == nil {
		return ErrNoFace
	}
	ascent := fnt.Face.Metrics().Ascent.Ceil()
	d := font.Drawer{
		Dst:  f.img,
		Src:  image.NewUniform(c),
		Face: fnt.Face,
		Dot:  fixed.P(p.X, p.Y+ascent),
	}
	d.DrawString(s)
	return nil
}

// Scaled returns a copy of the framebuffer enlarged by an integer factor
// using nearest-neighbour sampling.
func (f *Framebuffer) Scaled(scale int) *image.RGBA {
	if scale <= 1 {
		out := image.NewRGBA(f.img.Bounds())
		draw.Draw(out, out.Bounds(), f.img, image.Point{}, draw.Src)
		return out
	}
	size := f.Size().Mul(scale)
	out := image.NewRGBA(image.Rectangle{Max: size})
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), f.img, f.img.Bounds(), xdraw.Src, nil)
	return out
}

// WritePNG encodes the framebuffer, enlarged by scale, to w.
func (f *Framebuffer) WritePNG(w io.Writer, scale int) error {
	return png.Encode(w, f.Scaled(scale))
}

// SavePNG writes the framebuffer to path as a PNG.
func (f *Framebuffer) SavePNG(path string, scale int) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.WritePNG(out, scale); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
