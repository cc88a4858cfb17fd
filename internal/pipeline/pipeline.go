// Package pipeline runs the full sheet generation: note tables to rendered
// questions to composed cards to the tiled, exported sheet. All stages are
// synchronous; the first error aborts the run before any output file
// exists.
package pipeline

import (
	"image"

	"github.com/museworks/clefcards/internal/card"
	"github.com/museworks/clefcards/internal/config"
	"github.com/museworks/clefcards/internal/export"
	"github.com/museworks/clefcards/internal/notes"
	"github.com/museworks/clefcards/internal/sheet"
	"github.com/museworks/clefcards/internal/stave"
	"github.com/museworks/clefcards/pkg/errors"
	"github.com/museworks/clefcards/pkg/fonts"
	"github.com/museworks/clefcards/pkg/logger"
	"github.com/museworks/clefcards/pkg/models"
	"github.com/museworks/clefcards/pkg/utils"
)

type Pipeline struct {
	cfg *config.Config
	log *logger.Logger
}

func New(cfg *config.Config, log *logger.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, log: log}
}

// Run executes the whole pipeline with the standard treble and bass note
// tables and returns a report of what was produced.
func (p *Pipeline) Run() (*Report, error) {
	return p.RunWithNotes(notes.All())
}

// RunWithNotes executes the pipeline for an explicit note sequence, which
// the tests use to generate smaller sheets.
func (p *Pipeline) RunWithNotes(noteList []models.NoteSpec) (*Report, error) {
	report := NewReport()
	cfg := p.cfg

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	grid := models.Grid{Rows: cfg.Grid.Rows, Cols: cfg.Grid.Cols}
	if len(noteList) > grid.Capacity() {
		return nil, errors.New(errors.ErrCodeLayoutOverflow,
			"%d notes exceed the %dx%d grid capacity of %d",
			len(noteList), grid.Rows, grid.Cols, grid.Capacity())
	}

	backgrounds := map[models.Clef]image.Image{}
	for clef, path := range map[models.Clef]string{
		models.Treble: cfg.Assets.Treble,
		models.Bass:   cfg.Assets.Bass,
	} {
		if !clefUsed(noteList, clef) {
			continue
		}
		p.log.Debug("loading %s clef background from %s", clef, path)
		bg, err := stave.LoadBackground(path)
		if err != nil {
			return nil, err
		}
		backgrounds[clef] = bg
	}

	font, err := fonts.Load(cfg.Font.Name)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMissingAsset, err, "loading font %q", cfg.Font.Name)
	}

	cardW := cfg.CardWidthPx()
	cardH := cfg.CardHeightPx()
	renderer := stave.NewRenderer(cfg.DPI, p.log)
	composer := card.NewComposer(font, cfg.Font.Size, cfg.Font.MinSize, p.log)

	p.log.Info("Rendering %d flashcards at %dx%d px", len(noteList), cardW, cardH)

	cards := make([]models.Card, 0, len(noteList))
	for _, note := range noteList {
		question, err := renderer.RenderQuestion(backgrounds[note.Clef], note, cardW/2, cardH)
		if err != nil {
			return nil, err
		}

		composed, err := composer.Compose(question, note.Name, cardW, cardH)
		if err != nil {
			return nil, err
		}

		cards = append(cards, models.Card{Image: composed, Label: note.Name})
		report.CardsRendered++
	}

	tiler := sheet.NewTiler(p.log)
	sheetImg, err := tiler.Tile(cards, grid, cfg.PageWidthPx(), cfg.PageHeightPx(), cfg.MarginPx())
	if err != nil {
		return nil, err
	}

	report.BlankCells = grid.Capacity() - len(cards)
	if p.log.Level() >= logger.LevelTrace {
		p.log.Trace("sheet hash: %s", utils.ImageHash(sheetImg))
	}

	if err := export.SavePNG(sheetImg, cfg.Output.PNG, cfg.DPI); err != nil {
		return nil, err
	}
	report.SheetPath = cfg.Output.PNG

	if cfg.Output.PDF != "" {
		if err := export.SavePDF(cfg.Output.PNG, cfg.Output.PDF, cfg.Page.WidthMM, cfg.Page.HeightMM); err != nil {
			return nil, err
		}
		report.PDFPath = cfg.Output.PDF
	}

	report.Finish()
	return report, nil
}

func clefUsed(noteList []models.NoteSpec, clef models.Clef) bool {
	for _, n := range noteList {
		if n.Clef == clef {
			return true
		}
	}
	return false
}
