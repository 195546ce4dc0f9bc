package menu

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Surface is the drawing target a menu renders onto. Errors are
// surface-defined and returned to the caller of Draw unchanged.
type Surface interface {
	Clear(c color.Color) error
	StrokeRect(r image.Rectangle, c color.Color, width int) error
	FillRect(r image.Rectangle, c color.Color) error
	// DrawText renders s with its top-left corner at p.
	DrawText(s string, p image.Point, f Font, c color.Color) error
}

// Font is a fixed-width face with its cell metrics.
type Font struct {
	Face    font.Face
	Advance int
	Height  int
}

// FontFromFace derives cell metrics from a monospaced face.
func FontFromFace(face font.Face) Font {
	f := Font{Face: face}
	if face == nil {
		return f
	}
	if adv, ok := face.GlyphAdvance('M'); ok {
		f.Advance = adv.Ceil()
	}
	f.Height = face.Metrics().Height.Ceil()
	return f
}

// Font7x13 is the fixed 7x13 face shipped with x/image.
var Font7x13 = FontFromFace(basicfont.Face7x13)

// Options controls menu presentation.
type Options struct {
	Background color.Color
	Text       color.Color
	Highlight  color.Color
	Font       Font
	Border     int
	Spacing    int
}

// DefaultOptions returns white-on-black options using Font7x13.
func DefaultOptions() Options {
	return Options{
		Background: color.Black,
		Text:       color.White,
		Highlight:  color.White,
		Font:       Font7x13,
		Border:     2,
		Spacing:    14,
	}
}

func (o Options) validate() error {
	if o.Font.Advance <= 0 || o.Font.Height <= 0 {
		return fmt.Errorf("%w: font metrics %dx%d", ErrInvalidState, o.Font.Advance, o.Font.Height)
	}
	if o.Border < 0 || o.Spacing < 0 {
		return fmt.Errorf("%w: negative border or spacing", ErrInvalidState)
	}
	if o.Background == nil || o.Text == nil || o.Highlight == nil {
		return fmt.Errorf("%w: missing color", ErrInvalidState)
	}
	return nil
}
