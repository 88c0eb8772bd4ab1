package text

import (
	"log/slog"

	"github.com/gogpu/pixkit"
	"golang.org/x/image/font"
)

// Hinting specifies the font hinting mode.
type Hinting uint8

const (
	// HintingNone disables hinting.
	HintingNone Hinting = iota
	// HintingVertical applies vertical hinting only.
	HintingVertical
	// HintingFull applies full hinting.
	HintingFull
)

// RasterizerOption configures a Rasterizer.
type RasterizerOption func(*rasterConfig)

// rasterConfig holds configuration for Rasterizer.
type rasterConfig struct {
	dpi            float64
	hinting        Hinting
	faceCacheLimit int
}

// defaultRasterConfig returns the default rasterizer configuration.
func defaultRasterConfig() rasterConfig {
	return rasterConfig{
		dpi:            72,
		hinting:        HintingFull,
		faceCacheLimit: 32,
	}
}

// WithDPI sets the resolution used to convert points to pixels.
// The default of 72 makes one point one pixel.
func WithDPI(dpi float64) RasterizerOption {
	return func(c *rasterConfig) {
		if dpi > 0 {
			c.dpi = dpi
		}
	}
}

// WithHinting sets the hinting mode for rendered glyphs.
func WithHinting(h Hinting) RasterizerOption {
	return func(c *rasterConfig) {
		c.hinting = h
	}
}

// WithFaceCacheLimit sets how many (font, size) faces stay open.
// A value of 0 disables the limit.
func WithFaceCacheLimit(n int) RasterizerOption {
	return func(c *rasterConfig) {
		c.faceCacheLimit = n
	}
}

// mapHinting converts text.Hinting to font.Hinting.
func mapHinting(h Hinting) font.Hinting {
	switch h {
	case HintingNone:
		return font.HintingNone
	case HintingVertical:
		return font.HintingVertical
	default:
		return font.HintingFull
	}
}

func logger() *slog.Logger { return pixkit.Logger() }
