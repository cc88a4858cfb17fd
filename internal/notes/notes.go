// Package notes holds the static note tables the flashcards are generated
// from. Each clef maps to 13 contiguous stepwise pitches: two below the
// stave, nine on it, two above.
package notes

import (
	"github.com/museworks/clefcards/pkg/errors"
	"github.com/museworks/clefcards/pkg/models"
)

// Offsets are half-line-steps from the bottom stave line: 0 = bottom line,
// even = on a line, odd = in a space, negative = below the stave.
var trebleNotes = []models.NoteSpec{
	{Clef: models.Treble, Name: "C4", StaveOffset: -2},
	{Clef: models.Treble, Name: "D4", StaveOffset: -1},
	{Clef: models.Treble, Name: "E4", StaveOffset: 0},
	{Clef: models.Treble, Name: "F4", StaveOffset: 1},
	{Clef: models.Treble, Name: "G4", StaveOffset: 2},
	{Clef: models.Treble, Name: "A4", StaveOffset: 3},
	{Clef: models.Treble, Name: "B4", StaveOffset: 4},
	{Clef: models.Treble, Name: "C5", StaveOffset: 5},
	{Clef: models.Treble, Name: "D5", StaveOffset: 6},
	{Clef: models.Treble, Name: "E5", StaveOffset: 7},
	{Clef: models.Treble, Name: "F5", StaveOffset: 8},
	{Clef: models.Treble, Name: "G5", StaveOffset: 9},
	{Clef: models.Treble, Name: "A5", StaveOffset: 10},
}

var bassNotes = []models.NoteSpec{
	{Clef: models.Bass, Name: "E2", StaveOffset: -2},
	{Clef: models.Bass, Name: "F2", StaveOffset: -1},
	{Clef: models.Bass, Name: "G2", StaveOffset: 0},
	{Clef: models.Bass, Name: "A2", StaveOffset: 1},
	{Clef: models.Bass, Name: "B2", StaveOffset: 2},
	{Clef: models.Bass, Name: "C3", StaveOffset: 3},
	{Clef: models.Bass, Name: "D3", StaveOffset: 4},
	{Clef: models.Bass, Name: "E3", StaveOffset: 5},
	{Clef: models.Bass, Name: "F3", StaveOffset: 6},
	{Clef: models.Bass, Name: "G3", StaveOffset: 7},
	{Clef: models.Bass, Name: "A3", StaveOffset: 8},
	{Clef: models.Bass, Name: "B3", StaveOffset: 9},
	{Clef: models.Bass, Name: "C4", StaveOffset: 10},
}

// Table returns the note table for the given clef in ascending pitch order.
// Callers get a copy; the tables themselves never change.
func Table(clef models.Clef) []models.NoteSpec {
	var src []models.NoteSpec
	switch clef {
	case models.Treble:
		src = trebleNotes
	case models.Bass:
		src = bassNotes
	default:
		return nil
	}

	out := make([]models.NoteSpec, len(src))
	copy(out, src)
	return out
}

// All returns both clef tables, treble first.
func All() []models.NoteSpec {
	all := Table(models.Treble)
	return append(all, Table(models.Bass)...)
}

// Validate checks that a note's offset is renderable within the given
// offset range. The standard tables always pass; customized tables may not.
func Validate(note models.NoteSpec, minOffset, maxOffset int) error {
	if note.StaveOffset < minOffset || note.StaveOffset > maxOffset {
		return errors.New(errors.ErrCodeInvalidNoteSpec,
			"note %s (%s clef) offset %d outside renderable range [%d, %d]",
			note.Name, note.Clef, note.StaveOffset, minOffset, maxOffset)
	}
	return nil
}
