package card_test

import (
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/museworks/clefcards/internal/card"
	"github.com/museworks/clefcards/pkg/errors"
	"github.com/museworks/clefcards/pkg/fonts"
	"github.com/museworks/clefcards/pkg/logger"
)

const (
	cardWidth  = 815
	cardHeight = 319
)

func cardTestLogger() *logger.Logger {
	log := logger.New(
		logger.WithOutput(GinkgoWriter),
		logger.WithPrefix("[card-test] "),
		logger.WithFlags(0),
	)
	log.SetVerbose(true)
	return log
}

// createQuestion builds a half-card image with a marker pixel so tests can
// confirm the question half is carried over unmodified.
func createQuestion(w, h int) *image.NRGBA {
	img := imaging.New(w, h, color.White)
	img.SetNRGBA(10, 10, color.NRGBA{A: 255})
	return img
}

var _ = Describe("Card Composer", func() {
	var composer *card.Composer

	BeforeEach(func() {
		font, err := fonts.Default()
		Expect(err).NotTo(HaveOccurred())
		composer = card.NewComposer(font, 60, 24, cardTestLogger())
	})

	It("should produce a card of the requested size", func() {
		img, err := composer.Compose(createQuestion(cardWidth/2, cardHeight), "C4", cardWidth, cardHeight)
		Expect(err).NotTo(HaveOccurred())

		Expect(img.Bounds().Dx()).To(Equal(cardWidth))
		Expect(img.Bounds().Dy()).To(Equal(cardHeight))
	})

	It("should keep the question half unmodified", func() {
		img, err := composer.Compose(createQuestion(cardWidth/2, cardHeight), "C4", cardWidth, cardHeight)
		Expect(err).NotTo(HaveOccurred())

		r, g, b, _ := img.At(10, 10).RGBA()
		Expect(r + g + b).To(BeZero())
	})

	It("should draw a dashed gray fold line at the exact center", func() {
		img, err := composer.Compose(createQuestion(cardWidth/2, cardHeight), "C4", cardWidth, cardHeight)
		Expect(err).NotTo(HaveOccurred())

		middleX := cardWidth / 2
		gray := color.NRGBAModel.Convert(img.At(middleX, 0)).(color.NRGBA)
		Expect(gray.R).To(Equal(uint8(128)))
		Expect(gray.G).To(Equal(uint8(128)))
		Expect(gray.B).To(Equal(uint8(128)))

		// 10 px dash, 5 px gap
		inGap := color.NRGBAModel.Convert(img.At(middleX, 12)).(color.NRGBA)
		Expect(inGap).To(Equal(color.NRGBA{255, 255, 255, 255}))
	})

	It("should render the answer on the right half", func() {
		img, err := composer.Compose(createQuestion(cardWidth/2, cardHeight), "C4", cardWidth, cardHeight)
		Expect(err).NotTo(HaveOccurred())

		dark := 0
		for y := 0; y < cardHeight; y++ {
			for x := cardWidth/2 + 1; x < cardWidth; x++ {
				r, _, _, _ := img.At(x, y).RGBA()
				if r < 0x8000 {
					dark++
				}
			}
		}
		Expect(dark).To(BeNumerically(">", 0))
	})

	It("should render different labels differently", func() {
		q := createQuestion(cardWidth/2, cardHeight)
		a, err := composer.Compose(q, "C4", cardWidth, cardHeight)
		Expect(err).NotTo(HaveOccurred())
		b, err := composer.Compose(q, "D4", cardWidth, cardHeight)
		Expect(err).NotTo(HaveOccurred())

		Expect(imagesEqual(a, b)).To(BeFalse())
	})

	It("should fail with a layout overflow when the label cannot fit", func() {
		long := strings.Repeat("M", 200)
		_, err := composer.Compose(createQuestion(cardWidth/2, cardHeight), long, cardWidth, cardHeight)

		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, errors.ErrCodeLayoutOverflow)).To(BeTrue())
	})

	Context("rotation", func() {
		It("should be an involution", func() {
			src := imaging.New(30, 20, color.White)
			src.SetNRGBA(3, 5, color.NRGBA{A: 255})
			src.SetNRGBA(20, 11, color.NRGBA{50, 50, 50, 255})

			twice := imaging.Rotate180(imaging.Rotate180(src))

			Expect(imagesEqual(src, twice)).To(BeTrue())
		})

		It("should move a corner pixel to the opposite corner", func() {
			src := imaging.New(30, 20, color.White)
			src.SetNRGBA(0, 0, color.NRGBA{A: 255})

			rotated := imaging.Rotate180(src)

			r, _, _, _ := rotated.At(29, 19).RGBA()
			Expect(r).To(BeZero())
		})
	})
})

func imagesEqual(a, b image.Image) bool {
	if a.Bounds() != b.Bounds() {
		return false
	}
	bounds := a.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ar, ag, ab, aa := a.At(x, y).RGBA()
			br, bg, bb, ba := b.At(x, y).RGBA()
			if ar != br || ag != bg || ab != bb || aa != ba {
				return false
			}
		}
	}
	return true
}
