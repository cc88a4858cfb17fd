// Package fonts provides the typeface used for answer labels.
//
// The default face is Go Regular, which ships inside golang.org/x/image and
// needs no files on disk. A system font can be selected by name instead; it
// is located with go-findfont so the lookup works across platforms.
package fonts

import (
	"os"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	defaultFont     *truetype.Font
	defaultFontErr  error
	defaultFontOnce sync.Once
)

// Default returns the bundled Go Regular font. The parse result is cached
// after first use.
func Default() (*truetype.Font, error) {
	defaultFontOnce.Do(func() {
		defaultFont, defaultFontErr = truetype.Parse(goregular.TTF)
	})
	return defaultFont, defaultFontErr
}

// Load locates a font file by name on the host system and parses it.
// An empty name falls back to the bundled default.
func Load(name string) (*truetype.Font, error) {
	if name == "" {
		return Default()
	}

	path, err := findfont.Find(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return truetype.Parse(data)
}

// Face builds a font.Face at the given pixel size.
func Face(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size: size,
		DPI:  72,
	})
}
