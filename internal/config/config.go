// internal/config/config.go
package config

import (
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/museworks/clefcards/pkg/errors"
)

type Config struct {
	Assets struct {
		Treble string `yaml:"treble"`
		Bass   string `yaml:"bass"`
	} `yaml:"assets"`
	Card struct {
		WidthMM  float64 `yaml:"width_mm"`
		HeightMM float64 `yaml:"height_mm"`
	} `yaml:"card"`
	Page struct {
		WidthMM  float64 `yaml:"width_mm"`
		HeightMM float64 `yaml:"height_mm"`
		MarginMM float64 `yaml:"margin_mm"`
	} `yaml:"page"`
	Grid struct {
		Rows int `yaml:"rows"`
		Cols int `yaml:"cols"`
	} `yaml:"grid"`
	DPI  float64 `yaml:"dpi"`
	Font struct {
		Name    string  `yaml:"name"`
		Size    float64 `yaml:"size"`
		MinSize float64 `yaml:"min_size"`
	} `yaml:"font"`
	Output struct {
		PNG string `yaml:"png"`
		PDF string `yaml:"pdf"`
	} `yaml:"output"`
}

// Default returns the documented default configuration: 69x27 mm cards in a
// 4x7 grid on landscape A4 with 10 mm margins at 300 DPI.
func Default() *Config {
	var cfg Config
	cfg.Assets.Treble = "assets/treble.png"
	cfg.Assets.Bass = "assets/bass-clef.png"
	cfg.Card.WidthMM = 69
	cfg.Card.HeightMM = 27
	cfg.Page.WidthMM = 297
	cfg.Page.HeightMM = 210
	cfg.Page.MarginMM = 10
	cfg.Grid.Rows = 7
	cfg.Grid.Cols = 4
	cfg.DPI = 300
	cfg.Font.Size = 60
	cfg.Font.MinSize = 24
	cfg.Output.PNG = "flashcards_sheet.png"
	return &cfg
}

// Load reads a YAML config file and fills unset fields with defaults.
// A missing file is not an error: the defaults describe a complete run.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

// applyDefaults restores zero-valued fields that yaml left unset.
func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Assets.Treble == "" {
		cfg.Assets.Treble = def.Assets.Treble
	}
	if cfg.Assets.Bass == "" {
		cfg.Assets.Bass = def.Assets.Bass
	}
	if cfg.Card.WidthMM == 0 {
		cfg.Card.WidthMM = def.Card.WidthMM
	}
	if cfg.Card.HeightMM == 0 {
		cfg.Card.HeightMM = def.Card.HeightMM
	}
	if cfg.Page.WidthMM == 0 {
		cfg.Page.WidthMM = def.Page.WidthMM
	}
	if cfg.Page.HeightMM == 0 {
		cfg.Page.HeightMM = def.Page.HeightMM
	}
	if cfg.Page.MarginMM == 0 {
		cfg.Page.MarginMM = def.Page.MarginMM
	}
	if cfg.Grid.Rows == 0 {
		cfg.Grid.Rows = def.Grid.Rows
	}
	if cfg.Grid.Cols == 0 {
		cfg.Grid.Cols = def.Grid.Cols
	}
	if cfg.DPI == 0 {
		cfg.DPI = def.DPI
	}
	if cfg.Font.Size == 0 {
		cfg.Font.Size = def.Font.Size
	}
	if cfg.Font.MinSize == 0 {
		cfg.Font.MinSize = def.Font.MinSize
	}
	if cfg.Output.PNG == "" {
		cfg.Output.PNG = def.Output.PNG
	}
}

// Validate rejects configurations the pipeline cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Card.WidthMM <= 0 || c.Card.HeightMM <= 0:
		return errors.New(errors.ErrCodeInvalidConfig,
			"card dimensions must be positive, got %.1fx%.1f mm", c.Card.WidthMM, c.Card.HeightMM)
	case c.Page.WidthMM <= 0 || c.Page.HeightMM <= 0:
		return errors.New(errors.ErrCodeInvalidConfig,
			"page dimensions must be positive, got %.1fx%.1f mm", c.Page.WidthMM, c.Page.HeightMM)
	case c.Page.MarginMM < 0:
		return errors.New(errors.ErrCodeInvalidConfig,
			"page margin must not be negative, got %.1f mm", c.Page.MarginMM)
	case c.Grid.Rows <= 0 || c.Grid.Cols <= 0:
		return errors.New(errors.ErrCodeInvalidConfig,
			"grid must have positive rows and cols, got %dx%d", c.Grid.Rows, c.Grid.Cols)
	case c.DPI <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "dpi must be positive, got %.1f", c.DPI)
	case c.Font.MinSize <= 0 || c.Font.Size < c.Font.MinSize:
		return errors.New(errors.ErrCodeInvalidConfig,
			"font size %.1f must be at least the minimum %.1f", c.Font.Size, c.Font.MinSize)
	case c.Output.PNG == "":
		return errors.New(errors.ErrCodeInvalidConfig, "output png path must not be empty")
	}

	if c.Card.WidthMM*float64(c.Grid.Cols) > c.Page.WidthMM-2*c.Page.MarginMM ||
		c.Card.HeightMM*float64(c.Grid.Rows) > c.Page.HeightMM-2*c.Page.MarginMM {
		return errors.New(errors.ErrCodeLayoutOverflow,
			"%dx%d grid of %.1fx%.1f mm cards does not fit the printable area",
			c.Grid.Rows, c.Grid.Cols, c.Card.WidthMM, c.Card.HeightMM)
	}

	return nil
}

// PixelsPerMM returns the configured resolution in pixels per millimetre.
func (c *Config) PixelsPerMM() float64 {
	return c.DPI / 25.4
}

// CardWidthPx and the other *Px helpers convert the millimetre configuration
// into pixel dimensions at the configured DPI.
func (c *Config) CardWidthPx() int  { return mmToPx(c.Card.WidthMM, c.DPI) }
func (c *Config) CardHeightPx() int { return mmToPx(c.Card.HeightMM, c.DPI) }
func (c *Config) PageWidthPx() int  { return mmToPx(c.Page.WidthMM, c.DPI) }
func (c *Config) PageHeightPx() int { return mmToPx(c.Page.HeightMM, c.DPI) }
func (c *Config) MarginPx() int     { return mmToPx(c.Page.MarginMM, c.DPI) }

func mmToPx(mm, dpi float64) int {
	return int(math.Round(mm / 25.4 * dpi))
}
