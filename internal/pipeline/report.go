package pipeline

import (
	"time"

	"github.com/museworks/clefcards/pkg/logger"
)

// Report summarizes one pipeline run.
type Report struct {
	StartTime     time.Time
	EndTime       time.Time
	CardsRendered int
	BlankCells    int
	SheetPath     string
	PDFPath       string
}

func NewReport() *Report {
	return &Report{StartTime: time.Now()}
}

func (r *Report) Finish() {
	r.EndTime = time.Now()
}

func (r *Report) Print(log *logger.Logger) {
	log.Info("Generation complete:")
	log.Info("- Cards rendered: %d", r.CardsRendered)
	log.Info("- Blank grid cells: %d", r.BlankCells)
	log.Info("- Sheet saved to: %s", r.SheetPath)
	if r.PDFPath != "" {
		log.Info("- PDF saved to: %s", r.PDFPath)
	}
	log.Info("- Took: %s", r.EndTime.Sub(r.StartTime).Round(time.Millisecond))
}
