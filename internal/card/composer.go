// Package card composes full flashcards: question half, dashed fold guide,
// and the answer label printed upside-down on the other half. A 180-degree
// rotation (not a mirror) is what makes the label read upright after the
// physical card is folded along the guide.
package card

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"

	"github.com/museworks/clefcards/pkg/errors"
	"github.com/museworks/clefcards/pkg/fonts"
	"github.com/museworks/clefcards/pkg/logger"
)

// Fold guide pattern: 1 px gray dashes, visually distinct from the solid
// black cut borders the tiler adds.
const (
	dashLength = 10
	gapLength  = 5
	foldGray   = 128

	textPadding = 10
	textMargin  = 20
)

type Composer struct {
	font     *truetype.Font
	fontSize float64
	minSize  float64
	log      *logger.Logger
}

func NewComposer(font *truetype.Font, fontSize, minSize float64, log *logger.Logger) *Composer {
	return &Composer{
		font:     font,
		fontSize: fontSize,
		minSize:  minSize,
		log:      log,
	}
}

// Compose builds one cardW x cardH card. The question image becomes the
// left half unmodified; label is drawn rotated 180 degrees and centered on
// the right half.
func (c *Composer) Compose(question image.Image, label string, cardW, cardH int) (image.Image, error) {
	canvas := imaging.New(cardW, cardH, color.White)
	canvas = imaging.Paste(canvas, question, image.Pt(0, 0))

	middleX := cardW / 2
	drawFoldLine(canvas, middleX, cardH)

	answer, err := c.renderLabel(label, cardW/2-2*textMargin, cardH-2*textMargin)
	if err != nil {
		return nil, err
	}

	answerBounds := answer.Bounds()
	textX := middleX + (cardW/2-answerBounds.Dx())/2
	textY := (cardH - answerBounds.Dy()) / 2
	canvas = imaging.Paste(canvas, answer, image.Pt(textX, textY))

	return canvas, nil
}

// renderLabel draws label onto a white patch sized to the text, rotated
// 180 degrees. The font shrinks in steps until the text fits maxW x maxH,
// but never below the configured floor size.
func (c *Composer) renderLabel(label string, maxW, maxH int) (*image.NRGBA, error) {
	size := c.fontSize
	var w, h float64

	measure := gg.NewContext(1, 1)
	for {
		measure.SetFontFace(fonts.Face(c.font, size))
		w, h = measure.MeasureString(label)
		if w <= float64(maxW) && h <= float64(maxH) {
			break
		}
		if size <= c.minSize {
			return nil, errors.New(errors.ErrCodeLayoutOverflow,
				"label %q does not fit %dx%d px at minimum font size %.0f", label, maxW, maxH, c.minSize)
		}
		size -= 2
		if size < c.minSize {
			size = c.minSize
		}
	}

	if size != c.fontSize {
		c.log.Debug("label %q shrunk to font size %.0f", label, size)
	}

	patchW := int(w) + 2*textPadding
	patchH := int(h) + 2*textPadding

	tc := gg.NewContext(patchW, patchH)
	tc.SetRGB(1, 1, 1)
	tc.Clear()
	tc.SetRGB(0, 0, 0)
	tc.SetFontFace(fonts.Face(c.font, size))
	tc.DrawStringAnchored(label, float64(patchW)/2, float64(patchH)/2, 0.5, 0.5)

	return imaging.Rotate180(tc.Image()), nil
}

func drawFoldLine(canvas *image.NRGBA, x, height int) {
	gray := color.NRGBA{R: foldGray, G: foldGray, B: foldGray, A: 255}
	for y := 0; y < height; y += dashLength + gapLength {
		for dy := 0; dy < dashLength && y+dy < height; dy++ {
			canvas.SetNRGBA(x, y+dy, gray)
		}
	}
}
