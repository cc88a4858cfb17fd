// Package stave renders question images: a clef background with a single
// note drawn at its stave position.
package stave

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/museworks/clefcards/pkg/errors"
	"github.com/museworks/clefcards/pkg/logger"
	"github.com/museworks/clefcards/pkg/models"
)

// Glyph geometry in pixels at 300 DPI; scaled linearly for other
// resolutions.
const (
	referenceDPI = 300.0

	noteHeadWidth  = 38.0
	noteHeadHeight = 28.0
	stemLength     = 80.0
	stemWidth      = 6.0
	ledgerLength   = 50.0
	ledgerWidth    = 2.0
)

// Ledger lines appear one full step beyond the stave, matching the two
// below-stave and two above-stave notes of the standard tables.
const (
	ledgerBelowOffset = -1
	ledgerAboveOffset = 9
)

type Renderer struct {
	dpi float64
	log *logger.Logger
}

func NewRenderer(dpi float64, log *logger.Logger) *Renderer {
	return &Renderer{dpi: dpi, log: log}
}

// RenderQuestion draws the question half of a card: the clef background
// scaled into a halfW x halfH white canvas, with the note's head, stem and
// any ledger line stamped in pure black.
//
// Stem rule: a head below the middle stave line gets an upward stem on its
// right side; a head on or above the middle line gets a downward stem on
// its left side.
func (r *Renderer) RenderQuestion(bg image.Image, note models.NoteSpec, halfW, halfH int) (image.Image, error) {
	canvas := imaging.New(halfW, halfH, color.White)

	resized, offset := fitToBox(bg, halfW, halfH)
	canvas = imaging.Paste(canvas, resized, offset)

	lines := DetectLines(resized)
	bottomLineY := float64(lines[4] + offset.Y)
	middleLineY := float64(lines[2] + offset.Y)
	lineSpacing := float64(lines[4]-lines[0]) / 4

	noteX := float64(halfW) / 1.75
	noteY := bottomLineY - float64(note.StaveOffset)*(lineSpacing/2)

	scale := r.dpi / referenceDPI
	headRX := noteHeadWidth / 2 * scale
	headRY := noteHeadHeight / 2 * scale
	stemLen := stemLength * scale

	stemUp := noteY > middleLineY
	stemEndY := noteY - stemLen
	if !stemUp {
		stemEndY = noteY + stemLen
	}

	top := noteY - headRY
	bottom := noteY + headRY
	if stemUp {
		top = stemEndY
	} else {
		bottom = stemEndY
	}
	if top < 0 || bottom > float64(halfH) {
		return nil, errors.New(errors.ErrCodeInvalidNoteSpec,
			"note %s (%s clef, offset %d) falls outside the %dx%d canvas",
			note.Name, note.Clef, note.StaveOffset, halfW, halfH)
	}

	r.log.Trace("note %s: y=%.1f spacing=%.1f stem up=%v", note.Name, noteY, lineSpacing, stemUp)

	glyph := gg.NewContext(halfW, halfH)
	glyph.SetRGB(0, 0, 0)

	if note.StaveOffset < ledgerBelowOffset || note.StaveOffset > ledgerAboveOffset {
		glyph.SetLineWidth(ledgerWidth * scale)
		half := ledgerLength / 2 * scale
		glyph.DrawLine(noteX-half, noteY, noteX+half, noteY)
		glyph.Stroke()
	}

	glyph.DrawEllipse(noteX, noteY, headRX, headRY)
	glyph.Fill()

	stemX := noteX - headRX
	if stemUp {
		stemX = noteX + headRX
	}
	glyph.SetLineWidth(stemWidth * scale)
	glyph.DrawLine(stemX, noteY, stemX, stemEndY)
	glyph.Stroke()

	stampBlack(canvas, glyph.Image())
	return canvas, nil
}

// stampBlack copies the glyph layer onto dst as pure black wherever its
// coverage reaches one half, discarding anti-aliased fringes so the output
// stays strictly monochrome.
func stampBlack(dst *image.NRGBA, glyph image.Image) {
	bounds := glyph.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			_, _, _, a := glyph.At(x, y).RGBA()
			if a >= 0x8000 {
				dst.SetNRGBA(x, y, color.NRGBA{A: 255})
			}
		}
	}
}
