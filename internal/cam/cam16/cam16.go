package cam16

import (
	"math"

	"github.com/jmylchreest/matugo/internal/cam/cie"
)

// CAM is a colour expressed in the six CAM16 appearance dimensions.
type CAM struct {
	// Hue is the spectral identity of the colour in degrees (0-360).
	Hue float64

	// Chroma is the colourfulness of the colour. Greyscale colours have no
	// chroma; the maximum varies with hue and lightness.
	Chroma float64

	// Lightness (J) is the brightness relative to a reference white.
	Lightness float64

	// Brightness (Q) is the perceived amount of light from the colour.
	Brightness float64

	// Colorfulness (M) is the absolute chromatic intensity.
	Colorfulness float64

	// Saturation (s) is the colourfulness relative to brightness.
	Saturation float64
}

// FromSRGB returns the CAM16 appearance of a gamma-encoded 8-bit sRGB
// colour under standard viewing conditions.
func FromSRGB(r, g, b uint8) CAM {
	x, y, z := cie.SRGBToXYZ(r, g, b)
	return FromXYZView(x, y, z, StdView())
}

// FromXYZ returns the CAM16 appearance of a colour given as 0-100 XYZ
// coordinates under standard viewing conditions.
func FromXYZ(x, y, z float64) CAM {
	return FromXYZView(x, y, z, StdView())
}

// FromXYZView returns the CAM16 appearance of a colour given as 0-100 XYZ
// coordinates under the supplied viewing conditions.
func FromXYZView(x, y, z float64, vw *View) CAM {
	rT, gT, bT := xyzToCone(x, y, z)

	rA := Adapt(vw.FL * vw.RGBD[0] * rT / 100)
	gA := Adapt(vw.FL * vw.RGBD[1] * gT / 100)
	bA := Adapt(vw.FL * vw.RGBD[2] * bT / 100)

	// Redness-greenness and yellowness-blueness opponent dimensions.
	a := (11*rA - 12*gA + bA) / 11
	b2 := (rA + gA - 2*bA) / 9
	u := (20*rA + 20*gA + 21*bA) / 20
	p2 := (40*rA + 20*gA + bA) / 20

	hue := SanitizeDegrees(math.Atan2(b2, a) * 180 / math.Pi)

	huePrime := hue
	if hue < 20.14 {
		huePrime += 360
	}
	eHue := 0.25 * (math.Cos(huePrime*math.Pi/180+2) + 3.8)
	p1 := 50000.0 / 13 * eHue * vw.NC * vw.NCB
	t := p1 * math.Hypot(a, b2) / (u + 0.305)
	alpha := math.Pow(1.64-math.Pow(0.29, vw.N), 0.73) * math.Pow(t, 0.9)

	ac := p2 * vw.NBB
	j := 100 * math.Pow(ac/vw.AW, vw.C*vw.Z)
	q := 4 / vw.C * math.Sqrt(j/100) * (vw.AW + 4) * vw.FLRoot
	c := alpha * math.Sqrt(j/100)
	m := c * vw.FLRoot
	s := 50 * math.Sqrt(alpha*vw.C/(vw.AW+4))

	return CAM{Hue: hue, Chroma: c, Lightness: j, Brightness: q, Colorfulness: m, Saturation: s}
}

// SanitizeDegrees maps an angle in degrees onto [0, 360).
func SanitizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// SanitizeRadians maps an angle in radians onto [0, 2pi).
func SanitizeRadians(rad float64) float64 {
	return math.Mod(rad+math.Pi*8, math.Pi*2)
}

// InCyclicOrder reports whether b is between a and c when traversing the
// hue circle from a towards c. All angles are radians.
func InCyclicOrder(a, b, c float64) bool {
	deltaAB := SanitizeRadians(b - a)
	deltaAC := SanitizeRadians(c - a)
	return deltaAB < deltaAC
}
