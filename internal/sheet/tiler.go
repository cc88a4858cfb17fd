// Package sheet arranges composed cards into a printable grid. Cut borders
// double as the only separation between cards; empty grid slots stay white
// and get no border.
package sheet

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"

	"github.com/museworks/clefcards/pkg/errors"
	"github.com/museworks/clefcards/pkg/logger"
	"github.com/museworks/clefcards/pkg/models"
)

// Cut borders are 2 px solid black, as on the printed sheet they mark where
// the scissors go.
const borderWidth = 2

type Tiler struct {
	log *logger.Logger
}

func NewTiler(log *logger.Logger) *Tiler {
	return &Tiler{log: log}
}

// Tile places cards row-major into the grid on a pageW x pageH canvas with
// the given margin. More cards than grid slots, or a card larger than its
// cell, is a layout overflow: this generator never paginates.
func (t *Tiler) Tile(cards []models.Card, grid models.Grid, pageW, pageH, margin int) (image.Image, error) {
	if len(cards) > grid.Capacity() {
		return nil, errors.New(errors.ErrCodeLayoutOverflow,
			"%d cards exceed the %dx%d grid capacity of %d", len(cards), grid.Rows, grid.Cols, grid.Capacity())
	}

	cellW := (pageW - 2*margin) / grid.Cols
	cellH := (pageH - 2*margin) / grid.Rows

	canvas := imaging.New(pageW, pageH, color.White)

	for i, card := range cards {
		bounds := card.Image.Bounds()
		if bounds.Dx() > cellW || bounds.Dy() > cellH {
			return nil, errors.New(errors.ErrCodeLayoutOverflow,
				"card %q (%dx%d px) does not fit its %dx%d px grid cell",
				card.Label, bounds.Dx(), bounds.Dy(), cellW, cellH)
		}

		row := i / grid.Cols
		col := i % grid.Cols
		x := margin + col*cellW
		y := margin + row*cellH

		t.log.Trace("placing card %q at row %d col %d (%d,%d)", card.Label, row, col, x, y)

		target := image.Rect(x, y, x+bounds.Dx(), y+bounds.Dy())
		draw.Draw(canvas, target, card.Image, bounds.Min, draw.Src)
		drawCutBorder(canvas, target)
	}

	t.log.Debug("tiled %d cards, %d slots left blank", len(cards), grid.Capacity()-len(cards))
	return canvas, nil
}

// drawCutBorder draws a solid black rectangle just inside rect.
func drawCutBorder(canvas *image.NRGBA, rect image.Rectangle) {
	black := color.NRGBA{A: 255}
	for w := 0; w < borderWidth; w++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			canvas.SetNRGBA(x, rect.Min.Y+w, black)
			canvas.SetNRGBA(x, rect.Max.Y-1-w, black)
		}
		for y := rect.Min.Y; y < rect.Max.Y; y++ {
			canvas.SetNRGBA(rect.Min.X+w, y, black)
			canvas.SetNRGBA(rect.Max.X-1-w, y, black)
		}
	}
}
