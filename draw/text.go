package draw

import (
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

var (
	defaultFont     *truetype.Font
	defaultFontErr  error
	defaultFontOnce sync.Once
)

// DefaultFont is the Go Mono typeface.
func DefaultFont() (*truetype.Font, error) {
	defaultFontOnce.Do(func() {
		defaultFont, defaultFontErr = truetype.Parse(gomono.TTF)
	})
	return defaultFont, defaultFontErr
}

// Label draws text with its baseline at pt. The font size is in points at 72 DPI, so
// one point is one pixel. A nil face uses [DefaultFont].
//
// It returns the point where the next glyph would have been drawn.
func Label(dst Image, pt image.Point, face *truetype.Font, size float64, c color.Color, text string) (image.Point, error) {
	if face == nil {
		var err error
		if face, err = DefaultFont(); err != nil {
			return pt, err
		}
	}

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(face)
	ctx.SetFontSize(size)
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst)
	ctx.SetSrc(image.NewUniform(c))
	ctx.SetHinting(font.HintingFull)

	end, err := ctx.DrawString(text, freetype.Pt(pt.X, pt.Y))
	if err != nil {
		return pt, err
	}
	return image.Pt(end.X.Round(), end.Y.Round()), nil
}

// MeasureLabel returns the advance width of text in pixels.
func MeasureLabel(face *truetype.Font, size float64, text string) (int, error) {
	if face == nil {
		var err error
		if face, err = DefaultFont(); err != nil {
			return 0, err
		}
	}
	ff := truetype.NewFace(face, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
	defer ff.Close()
	return font.MeasureString(ff, text).Round(), nil
}
