// Package matcolor generates Material Design 3 tonal palettes and colour
// schemes from a seed colour.
package matcolor

import (
	"image/color"

	"github.com/jmylchreest/matugo/internal/cam/hct"
)

// StandardTones are the tone levels a tonal palette is commonly sampled
// at. [TonalPalette.Tone] accepts any tone in 0-100; this set is the one
// exposed when a whole palette is materialized.
var StandardTones = []int{0, 5, 10, 20, 30, 40, 50, 60, 70, 80, 90, 95, 99, 100}

// TonalPalette produces colours that share one hue and chroma and vary
// only in tone. Tones are resolved through the HCT gamut solver and cached;
// a palette is safe to treat as immutable but not for concurrent use.
type TonalPalette struct {
	// Hue is the shared CAM16 hue in degrees.
	Hue float64

	// Chroma is the shared chroma ceiling. Individual tones may resolve to
	// less when the gamut demands it.
	Chroma float64

	cache map[int]color.RGBA
}

// NewTonalPalette returns a TonalPalette with the given hue and chroma.
func NewTonalPalette(hue, chroma float64) *TonalPalette {
	return &TonalPalette{Hue: hue, Chroma: chroma, cache: map[int]color.RGBA{}}
}

// TonalPaletteFromColor returns the TonalPalette through the given colour:
// its hue and chroma, spanned across all tones.
func TonalPaletteFromColor(c color.Color) *TonalPalette {
	h := hct.FromColor(c)
	return NewTonalPalette(h.Hue, h.Chroma)
}

// Tone returns the palette colour at the given tone (0-100). Tones 0 and
// 100 are exactly black and white for every hue and chroma, so ramp
// endpoints carry no clamped-gamut noise.
func (t *TonalPalette) Tone(tone int) color.RGBA {
	if c, ok := t.cache[tone]; ok {
		return c
	}
	var c color.RGBA
	switch tone {
	case 0:
		c = color.RGBA{A: 255}
	case 100:
		c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	default:
		c = hct.New(t.Hue, t.Chroma, float64(tone)).AsRGBA()
	}
	t.cache[tone] = c
	return c
}

// Tones materializes the palette at every tone in [StandardTones].
func (t *TonalPalette) Tones() map[int]color.RGBA {
	out := make(map[int]color.RGBA, len(StandardTones))
	for _, tone := range StandardTones {
		out[tone] = t.Tone(tone)
	}
	return out
}
