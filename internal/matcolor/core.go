package matcolor

import (
	"image/color"

	"github.com/jmylchreest/matugo/internal/cam/cam16"
	"github.com/jmylchreest/matugo/internal/cam/hct"
)

// CorePalette is the set of tonal palettes a scheme is assembled from,
// all derived from a single seed colour.
type CorePalette struct {
	Primary        *TonalPalette
	Secondary      *TonalPalette
	Tertiary       *TonalPalette
	Neutral        *TonalPalette
	NeutralVariant *TonalPalette
	Error          *TonalPalette
}

// NewCorePalette derives the six scheme palettes from a seed colour.
// The primary palette keeps the seed hue and at least chroma 48; the
// accent and neutral palettes reuse the hue at fixed lower chromas,
// except tertiary which rotates the hue by 60 degrees. The error
// palette is fixed regardless of seed.
func NewCorePalette(seed color.Color) *CorePalette {
	h := hct.FromColor(seed)
	primaryChroma := h.Chroma
	if primaryChroma < 48 {
		primaryChroma = 48
	}
	return &CorePalette{
		Primary:        NewTonalPalette(h.Hue, primaryChroma),
		Secondary:      NewTonalPalette(h.Hue, 16),
		Tertiary:       NewTonalPalette(cam16.SanitizeDegrees(h.Hue+60), 24),
		Neutral:        NewTonalPalette(h.Hue, 4),
		NeutralVariant: NewTonalPalette(h.Hue, 8),
		Error:          NewTonalPalette(25, 84),
	}
}
