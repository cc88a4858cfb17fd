package sheet_test

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/museworks/clefcards/internal/sheet"
	"github.com/museworks/clefcards/pkg/errors"
	"github.com/museworks/clefcards/pkg/logger"
	"github.com/museworks/clefcards/pkg/models"
)

func sheetTestLogger() *logger.Logger {
	log := logger.New(
		logger.WithOutput(GinkgoWriter),
		logger.WithPrefix("[sheet-test] "),
		logger.WithFlags(0),
	)
	log.SetVerbose(true)
	log.SetLevel(logger.LevelTrace)
	return log
}

func makeCards(n, w, h int) []models.Card {
	cards := make([]models.Card, n)
	for i := range cards {
		cards[i] = models.Card{
			Image: imaging.New(w, h, color.White),
			Label: fmt.Sprintf("card-%d", i),
		}
	}
	return cards
}

// regionIsWhite reports whether every pixel in the rectangle is pure white.
func regionIsWhite(img image.Image, rect image.Rectangle) bool {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r != 0xffff || g != 0xffff || b != 0xffff {
				return false
			}
		}
	}
	return true
}

func isBlack(img image.Image, x, y int) bool {
	r, g, b, _ := img.At(x, y).RGBA()
	return r == 0 && g == 0 && b == 0
}

var _ = Describe("Sheet Tiler", func() {
	var tiler *sheet.Tiler

	BeforeEach(func() {
		tiler = sheet.NewTiler(sheetTestLogger())
	})

	Context("with a small grid", func() {
		const (
			pageW  = 700
			pageH  = 700
			margin = 10
			cardW  = 300
			cardH  = 300
		)
		grid := models.Grid{Rows: 2, Cols: 2}

		It("should place cards row-major with cut borders", func() {
			img, err := tiler.Tile(makeCards(3, cardW, cardH), grid, pageW, pageH, margin)
			Expect(err).NotTo(HaveOccurred())

			Expect(img.Bounds().Dx()).To(Equal(pageW))
			Expect(img.Bounds().Dy()).To(Equal(pageH))

			cellW := (pageW - 2*margin) / grid.Cols
			cellH := (pageH - 2*margin) / grid.Rows

			for i := 0; i < 3; i++ {
				x := margin + (i%grid.Cols)*cellW
				y := margin + (i/grid.Cols)*cellH
				// corners of the cut border
				Expect(isBlack(img, x, y)).To(BeTrue(), "card %d top-left", i)
				Expect(isBlack(img, x+cardW-1, y+cardH-1)).To(BeTrue(), "card %d bottom-right", i)
			}
		})

		It("should leave the unoccupied cell blank with no border", func() {
			img, err := tiler.Tile(makeCards(3, cardW, cardH), grid, pageW, pageH, margin)
			Expect(err).NotTo(HaveOccurred())

			cellW := (pageW - 2*margin) / grid.Cols
			cellH := (pageH - 2*margin) / grid.Rows
			blank := image.Rect(margin+cellW, margin+cellH, margin+2*cellW, margin+2*cellH)

			Expect(regionIsWhite(img, blank)).To(BeTrue())
		})

		It("should reject more cards than grid slots", func() {
			_, err := tiler.Tile(makeCards(5, cardW, cardH), grid, pageW, pageH, margin)

			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, errors.ErrCodeLayoutOverflow)).To(BeTrue())
		})

		It("should reject a card larger than its cell", func() {
			_, err := tiler.Tile(makeCards(1, 350, 350), grid, pageW, pageH, margin)

			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, errors.ErrCodeLayoutOverflow)).To(BeTrue())
		})
	})

	Context("with the standard 7x4 grid", func() {
		const (
			pageW  = 720
			pageH  = 720
			margin = 10
			cardW  = 170
			cardH  = 98
		)
		grid := models.Grid{Rows: 7, Cols: 4}

		It("should leave exactly two cells blank for 26 cards", func() {
			img, err := tiler.Tile(makeCards(26, cardW, cardH), grid, pageW, pageH, margin)
			Expect(err).NotTo(HaveOccurred())

			cellW := (pageW - 2*margin) / grid.Cols
			cellH := (pageH - 2*margin) / grid.Rows

			blankCells := 0
			for i := 0; i < grid.Capacity(); i++ {
				x := margin + (i%grid.Cols)*cellW
				y := margin + (i/grid.Cols)*cellH
				if regionIsWhite(img, image.Rect(x, y, x+cellW, y+cellH)) {
					blankCells++
				} else {
					Expect(isBlack(img, x, y)).To(BeTrue(), "cell %d should have a cut border", i)
				}
			}

			Expect(blankCells).To(Equal(2))
		})

		It("should reject 29 cards for 28 slots instead of spilling over", func() {
			_, err := tiler.Tile(makeCards(29, cardW, cardH), grid, pageW, pageH, margin)

			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, errors.ErrCodeLayoutOverflow)).To(BeTrue())
		})
	})
})
