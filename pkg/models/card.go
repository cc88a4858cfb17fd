package models

import (
	"fmt"
	"image"
)

// Clef selects which stave artwork and note table a card is built from.
type Clef int

const (
	Treble Clef = iota
	Bass
)

func (c Clef) String() string {
	switch c {
	case Treble:
		return "treble"
	case Bass:
		return "bass"
	default:
		return fmt.Sprintf("clef(%d)", int(c))
	}
}

// NoteSpec is one entry of a clef's note table. StaveOffset counts
// half-line-steps up from the bottom stave line: 0 is the bottom line,
// even offsets sit on lines, odd offsets in spaces, negative offsets
// below the stave.
type NoteSpec struct {
	Clef        Clef
	Name        string
	StaveOffset int
}

// Card pairs a fully composed card raster with the note name shown on
// its answer half.
type Card struct {
	Image image.Image
	Label string
}

// Dimensions is a width/height pair in millimetres.
type Dimensions struct {
	WidthMM  float64
	HeightMM float64
}

// Grid describes the card slots available on one sheet.
type Grid struct {
	Rows int
	Cols int
}

// Capacity returns the number of card slots in the grid.
func (g Grid) Capacity() int {
	return g.Rows * g.Cols
}
