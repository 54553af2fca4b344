// Package cie provides CIE standard colour space conversions: sRGB gamma
// encoding, linear RGB, XYZ tristimulus values and the L* lightness scale.
// All conversion matrices and curve parameters are fixed double-precision
// constants so that identical inputs always produce identical outputs.
package cie

import "math"

// WhiteD65 is the D65 standard illuminant white point in XYZ coordinates
// (0-100 range).
var WhiteD65 = [3]float64{95.047, 100.0, 108.883}

// SRGBToXYZMatrix converts linear RGB (0-100) to XYZ (0-100).
var SRGBToXYZMatrix = [3][3]float64{
	{0.41233895, 0.35762064, 0.18051042},
	{0.2126, 0.7152, 0.0722},
	{0.01932141, 0.11916382, 0.95034478},
}

// XYZToSRGBMatrix converts XYZ (0-100) to linear RGB (0-100).
var XYZToSRGBMatrix = [3][3]float64{
	{3.2413774792388685, -1.5376652402851851, -0.49885366846268053},
	{-0.9691452513005321, 1.8758853451067872, 0.04156585616912061},
	{0.05562093689691305, -0.20395524564742123, 1.0571799111220335},
}

// Linearized converts a gamma-encoded 8-bit sRGB channel value to a linear
// RGB value in the 0-100 range.
func Linearized(comp uint8) float64 {
	normalized := float64(comp) / 255
	if normalized <= 0.040449936 {
		return normalized / 12.92 * 100
	}
	return math.Pow((normalized+0.055)/1.055, 2.4) * 100
}

// Delinearized converts a linear RGB value (0-100) back to a gamma-encoded
// 8-bit sRGB channel value, clamping out-of-range inputs.
func Delinearized(comp float64) uint8 {
	normalized := comp / 100
	delinearized := 0.0
	if normalized <= 0.0031308 {
		delinearized = normalized * 12.92
	} else {
		delinearized = 1.055*math.Pow(normalized, 1.0/2.4) - 0.055
	}
	v := math.Round(delinearized * 255)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// SRGBToXYZ converts gamma-encoded 8-bit sRGB channel values to XYZ
// tristimulus values in the 0-100 range.
func SRGBToXYZ(r, g, b uint8) (x, y, z float64) {
	rl := Linearized(r)
	gl := Linearized(g)
	bl := Linearized(b)
	x = SRGBToXYZMatrix[0][0]*rl + SRGBToXYZMatrix[0][1]*gl + SRGBToXYZMatrix[0][2]*bl
	y = SRGBToXYZMatrix[1][0]*rl + SRGBToXYZMatrix[1][1]*gl + SRGBToXYZMatrix[1][2]*bl
	z = SRGBToXYZMatrix[2][0]*rl + SRGBToXYZMatrix[2][1]*gl + SRGBToXYZMatrix[2][2]*bl
	return x, y, z
}

// XYZToSRGB converts XYZ tristimulus values (0-100) to gamma-encoded 8-bit
// sRGB channel values, clamping to the displayable range.
func XYZToSRGB(x, y, z float64) (r, g, b uint8) {
	rl := XYZToSRGBMatrix[0][0]*x + XYZToSRGBMatrix[0][1]*y + XYZToSRGBMatrix[0][2]*z
	gl := XYZToSRGBMatrix[1][0]*x + XYZToSRGBMatrix[1][1]*y + XYZToSRGBMatrix[1][2]*z
	bl := XYZToSRGBMatrix[2][0]*x + XYZToSRGBMatrix[2][1]*y + XYZToSRGBMatrix[2][2]*z
	return Delinearized(rl), Delinearized(gl), Delinearized(bl)
}

// LToY converts an L* lightness value (0-100) to a Y relative luminance
// value (0-100). It is the inverse of [YToL].
func LToY(lstar float64) float64 {
	ft := (lstar + 16) / 116
	ft3 := ft * ft * ft
	if ft3 > e {
		return ft3 * 100
	}
	return (116*ft - 16) / kappa * 100
}

// YToL converts a Y relative luminance value (0-100) to an L* lightness
// value (0-100). L* is linear in human perception of lightness: L* 0 is
// black, 100 is white, and 50 is perceptual mid-grey.
func YToL(y float64) float64 {
	return labF(y/100)*116 - 16
}

// LStarOfSRGB returns the L* lightness of a gamma-encoded sRGB colour.
func LStarOfSRGB(r, g, b uint8) float64 {
	_, y, _ := SRGBToXYZ(r, g, b)
	return YToL(y)
}

// SRGBFromLStar returns the grey with the given L* lightness as 8-bit sRGB
// channel values.
func SRGBFromLStar(lstar float64) (r, g, b uint8) {
	c := Delinearized(LToY(lstar))
	return c, c, c
}

// CIE standard curve break constants.
const (
	e     = 216.0 / 24389.0
	kappa = 24389.0 / 27.0
)

func labF(t float64) float64 {
	if t > e {
		return math.Cbrt(t)
	}
	return (kappa*t + 16) / 116
}
