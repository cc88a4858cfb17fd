package utils_test

import (
	"image/color"

	"github.com/disintegration/imaging"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/museworks/clefcards/pkg/utils"
)

var _ = Describe("Image Hash", func() {
	It("should be stable for identical pixel data", func() {
		a := imaging.New(16, 16, color.White)
		b := imaging.New(16, 16, color.White)

		Expect(utils.ImageHash(a)).To(Equal(utils.ImageHash(b)))
	})

	It("should change when a single pixel changes", func() {
		a := imaging.New(16, 16, color.White)
		b := imaging.New(16, 16, color.White)
		b.SetNRGBA(7, 9, color.NRGBA{A: 255})

		Expect(utils.ImageHash(a)).NotTo(Equal(utils.ImageHash(b)))
	})
})
