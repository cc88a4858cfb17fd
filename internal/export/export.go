// Package export writes the composed sheet to disk. PNG output carries the
// configured DPI in a pHYs chunk so printing at 100% scale reproduces the
// millimetre dimensions; writes go to a temp file first and are renamed
// into place, so a failed run never leaves a partial output file.
package export

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/museworks/clefcards/pkg/errors"
)

// PNG layout: 8 signature bytes, then the 25-byte IHDR chunk. The pHYs
// chunk goes immediately after IHDR.
const physInsertOffset = 8 + 25

// SavePNG encodes img as PNG with dpi recorded in its pHYs chunk and writes
// it atomically to path.
func SavePNG(img image.Image, path string, dpi float64) error {
	var buf bytes.Buffer
	if err := encodeWithDPI(&buf, img, dpi); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailure, err, "encoding %s", path)
	}

	return writeAtomic(path, buf.Bytes())
}

// SavePDF wraps an already exported PNG sheet into a single-page PDF whose
// page box matches the sheet's physical size in points.
func SavePDF(pngPath, pdfPath string, widthMM, heightMM float64) error {
	wPt := widthMM * 72 / 25.4
	hPt := heightMM * 72 / 25.4

	imp, err := api.Import(fmt.Sprintf("dim:%.0f %.0f, pos:full", wPt, hPt), types.POINTS)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailure, err, "building PDF import config")
	}

	if err := api.ImportImagesFile([]string{pngPath}, pdfPath, imp, nil); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailure, err, "writing %s", pdfPath)
	}

	return nil
}

func encodeWithDPI(buf *bytes.Buffer, img image.Image, dpi float64) error {
	var raw bytes.Buffer
	if err := png.Encode(&raw, img); err != nil {
		return err
	}
	data := raw.Bytes()

	// pixels per metre, both axes, unit byte 1 (metre)
	ppm := uint32(math.Round(dpi * 1000 / 25.4))
	var phys [21]byte
	binary.BigEndian.PutUint32(phys[0:4], 9)
	copy(phys[4:8], "pHYs")
	binary.BigEndian.PutUint32(phys[8:12], ppm)
	binary.BigEndian.PutUint32(phys[12:16], ppm)
	phys[16] = 1
	binary.BigEndian.PutUint32(phys[17:21], crc32.ChecksumIEEE(phys[4:17]))

	buf.Write(data[:physInsertOffset])
	buf.Write(phys[:])
	buf.Write(data[physInsertOffset:])
	return nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailure, err, "creating temp file in %s", dir)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrap(errors.ErrCodeWriteFailure, err, "writing %s", path)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(errors.ErrCodeWriteFailure, err, "closing %s", path)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(errors.ErrCodeWriteFailure, err, "renaming into %s", path)
	}

	return nil
}
