package theme

import (
	"math"

	"github.com/jmylchreest/matugo/internal/matcolor"
)

// dimmedRoles are the surface and accent roles that receive a small
// uniform dim after scheme resolution. Material surfaces otherwise read
// slightly too bright against desktop backgrounds.
var dimmedRoles = []string{
	"surface",
	"surface_dim",
	"surface_bright",
	"surface_container",
	"surface_container_lowest",
	"surface_container_low",
	"surface_container_high",
	"surface_container_highest",
	"inverse_surface",
	"primary",
	"secondary",
	"tertiary",
	"primary_container",
	"secondary_container",
	"tertiary_container",
	"error",
}

// Brighten shifts every channel by amount percent of full scale.
// Negative amounts darken. The shift is floor-rounded so Brighten(-1)
// subtracts exactly 2 and Brighten(1) adds exactly 3; channels clamp
// at the range ends.
func Brighten(c RGB, amount float64) RGB {
	delta := math.Floor(255 * -(amount / 100))
	return RGB{
		R: clampChannel(float64(c.R) - delta),
		G: clampChannel(float64(c.G) - delta),
		B: clampChannel(float64(c.B) - delta),
	}
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// postProcess applies the mode-dependent adjustments to a resolved role
// map, in place.
func postProcess(colors map[string]RGB, mode matcolor.Mode) {
	for _, role := range dimmedRoles {
		colors[role] = Brighten(colors[role], -1)
	}

	switch mode {
	case matcolor.Dark:
		// surface_dim should actually be dim, even against dark surfaces.
		colors["surface_dim"] = Brighten(colors["surface_dim"], -1)
		// surface_bright flares on dark schemes; rebuild it as a slightly
		// lifted surface instead of a tone-24 neutral.
		colors["surface_bright"] = lighten(colors["surface"], 1.35)
	case matcolor.Light:
		colors["surface_bright"] = Brighten(colors["surface_bright"], 1)
	}
}

// lighten adds amount to the HSL lightness channel (0-100 scale).
func lighten(c RGB, amount float64) RGB {
	h, s, l := rgbToHSL(c)
	l += amount / 100
	if l > 1 {
		l = 1
	}
	if l < 0 {
		l = 0
	}
	return hslToRGB(h, s, l)
}

// rgbToHSL converts RGB to HSL colour space.
// h is hue (0-360), s is saturation (0-1), l is lightness (0-1).
func rgbToHSL(rgb RGB) (h, s, l float64) {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	// Lightness.
	l = (maxVal + minVal) / 2.0

	// Saturation.
	if delta == 0 {
		s = 0
		h = 0
		return
	}

	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	// Hue.
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	h *= 60
	return
}

// hslToRGB converts HSL to RGB colour space.
// h is hue (0-360), s is saturation (0-1), l is lightness (0-1).
func hslToRGB(h, s, l float64) RGB {
	if s == 0 {
		// Achromatic (grey).
		v := uint8(math.Round(l * 255))
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	r := hueToRGB(p, q, h+120)
	g := hueToRGB(p, q, h)
	b := hueToRGB(p, q, h-120)

	return RGB{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
	}
}

// hueToRGB is a helper for HSL to RGB conversion.
func hueToRGB(p, q, t float64) float64 {
	// Normalize t to 0-360 range.
	for t < 0 {
		t += 360
	}
	for t >= 360 {
		t -= 360
	}

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}
