// Package hct implements the HCT colour space: CAM16 hue and chroma paired
// with CIE L* tone. HCT is the basis for generating tonal palettes whose
// steps are perceptually even, which plain HSL lightness ramps are not.
package hct

import (
	"fmt"
	"image/color"

	"github.com/jmylchreest/matugo/internal/cam/cam16"
	"github.com/jmylchreest/matugo/internal/cam/cie"
)

// HCT is a colour in hue/chroma/tone form, together with the sRGB colour it
// resolved to. Requested chroma is reduced when the hue/tone combination
// falls outside the sRGB gamut, so the stored chroma may be lower than the
// one a constructor was given.
type HCT struct {
	// Hue is the CAM16 hue in degrees, 0-360.
	Hue float64

	// Chroma is the CAM16 chroma. Grey colours have chroma 0; the usable
	// maximum depends on hue and tone but stays below roughly 150.
	Chroma float64

	// Tone is the L* lightness, 0 (black) to 100 (white).
	Tone float64

	// R, G, B are the resolved 8-bit sRGB channel values.
	R, G, B uint8
}

// New returns the in-gamut HCT colour closest to the requested hue (0-360),
// chroma and tone (0-100). Chroma is clamped downward as needed; hue and
// tone are preserved.
func New(hue, chroma, tone float64) HCT {
	r, g, b := SolveToSRGB(hue, chroma, tone)
	return FromSRGB(r, g, b)
}

// FromSRGB returns the HCT representation of 8-bit sRGB channel values.
func FromSRGB(r, g, b uint8) HCT {
	x, y, z := cie.SRGBToXYZ(r, g, b)
	cam := cam16.FromXYZ(x, y, z)
	return HCT{
		Hue:    cam.Hue,
		Chroma: cam.Chroma,
		Tone:   cie.YToL(y),
		R:      r, G: g, B: b,
	}
}

// FromColor returns the HCT representation of a standard [color.Color].
// Alpha is ignored; fully transparent colours resolve as black.
func FromColor(c color.Color) HCT {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return FromSRGB(rgba.R, rgba.G, rgba.B)
}

// AsRGBA returns the resolved colour as a fully opaque [color.RGBA].
func (h HCT) AsRGBA() color.RGBA {
	return color.RGBA{R: h.R, G: h.G, B: h.B, A: 255}
}

// WithTone returns the colour at the same hue and chroma but the given
// tone, clamping chroma to the gamut at that tone.
func (h HCT) WithTone(tone float64) HCT {
	return New(h.Hue, h.Chroma, tone)
}

// WithChroma returns the colour at the same hue and tone but the given
// chroma, clamped to the gamut.
func (h HCT) WithChroma(chroma float64) HCT {
	return New(h.Hue, chroma, h.Tone)
}

// WithHue returns the colour rotated to the given hue, keeping chroma and
// tone where the gamut allows.
func (h HCT) WithHue(hue float64) HCT {
	return New(hue, h.Chroma, h.Tone)
}

func (h HCT) String() string {
	return fmt.Sprintf("hct(%.3f, %.3f, %.3f)", h.Hue, h.Chroma, h.Tone)
}
