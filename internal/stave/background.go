package stave

import (
	"image"
	"image/color"
	"image/draw"
	"os"

	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"

	"github.com/museworks/clefcards/pkg/errors"
)

// LoadBackground reads a clef stave image from disk and composites any
// transparency onto a white background, so later pixel math only ever sees
// opaque black-and-white artwork.
func LoadBackground(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMissingAsset, err, "opening background %s", path)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMissingAsset, err, "decoding background %s", path)
	}

	flat := image.NewNRGBA(src.Bounds())
	draw.Draw(flat, flat.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(flat, flat.Bounds(), src, src.Bounds().Min, draw.Over)
	return flat, nil
}

// fitToBox scales bg to fill boxW horizontally while preserving aspect
// ratio, shrinking further if the result would be taller than boxH. The
// returned point centers the scaled image inside the box.
func fitToBox(bg image.Image, boxW, boxH int) (*image.NRGBA, image.Point) {
	bounds := bg.Bounds()
	aspect := float64(bounds.Dy()) / float64(bounds.Dx())

	w := boxW
	h := int(float64(boxW) * aspect)
	if h > boxH {
		h = boxH
		w = int(float64(boxH) / aspect)
	}

	resized := imaging.Resize(bg, w, h, imaging.Lanczos)
	offset := image.Pt((boxW-w)/2, (boxH-h)/2)
	return resized, offset
}

// DetectLines finds the centers of the five stave lines by scanning the
// middle column of img for dark runs. If fewer than five lines are found
// (unusual artwork), positions are estimated at one sixth of the height
// apart.
func DetectLines(img image.Image) []int {
	bounds := img.Bounds()
	scanX := bounds.Min.X + bounds.Dx()/2

	var lines []int
	inLine := false
	lineStart := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		r, g, b, _ := img.At(scanX, y).RGBA()
		// 8-bit channel sum below 384 means an average darker than 128.
		isDark := (r>>8)+(g>>8)+(b>>8) < 384

		if isDark && !inLine {
			inLine = true
			lineStart = y
		} else if !isDark && inLine {
			inLine = false
			lines = append(lines, (lineStart+y)/2)
		}
	}

	if len(lines) >= 5 {
		return lines[:5]
	}

	spacing := bounds.Dy() / 6
	est := make([]int, 5)
	for i := range est {
		est[i] = bounds.Min.Y + spacing*(i+1)
	}
	return est
}
