package utils

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"image"
)

// ImageHash returns a sha256 over the raw pixel data of img. The pipeline is
// deterministic, so two runs with the same configuration must hash the same;
// the pipeline logs the sheet hash at trace level and the acceptance tests
// assert on it.
func ImageHash(img image.Image) string {
	hasher := sha256.New()
	var px [8]byte
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			binary.BigEndian.PutUint16(px[0:2], uint16(r))
			binary.BigEndian.PutUint16(px[2:4], uint16(g))
			binary.BigEndian.PutUint16(px[4:6], uint16(b))
			binary.BigEndian.PutUint16(px[6:8], uint16(a))
			hasher.Write(px[:])
		}
	}

	return hex.EncodeToString(hasher.Sum(nil))
}
