package cie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearizedRoundTrip(t *testing.T) {
	for c := 0; c <= 255; c++ {
		got := Delinearized(Linearized(uint8(c)))
		assert.Equal(t, uint8(c), got, "channel %d", c)
	}
}

func TestDelinearizedClamps(t *testing.T) {
	assert.Equal(t, uint8(0), Delinearized(-5))
	assert.Equal(t, uint8(255), Delinearized(150))
}

func TestLStarRoundTrip(t *testing.T) {
	for _, l := range []float64{0, 0.5, 10, 25, 50, 75, 99, 100} {
		assert.InDelta(t, l, YToL(LToY(l)), 1e-9, "lstar %g", l)
	}
}

func TestLStarOfSRGB(t *testing.T) {
	assert.InDelta(t, 100, LStarOfSRGB(255, 255, 255), 1e-4)
	assert.InDelta(t, 0, LStarOfSRGB(0, 0, 0), 1e-4)

	// Perceptual mid-grey is well above the linear midpoint.
	r, g, b := SRGBFromLStar(50)
	assert.Equal(t, r, g)
	assert.Equal(t, g, b)
	assert.Equal(t, uint8(119), r)
}

func TestSRGBToXYZWhite(t *testing.T) {
	x, y, z := SRGBToXYZ(255, 255, 255)
	assert.InDelta(t, WhiteD65[0], x, 0.01)
	assert.InDelta(t, WhiteD65[1], y, 0.01)
	assert.InDelta(t, WhiteD65[2], z, 0.01)
}

func TestXYZRoundTrip(t *testing.T) {
	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 15 {
			for b := 0; b <= 255; b += 15 {
				x, y, z := SRGBToXYZ(uint8(r), uint8(g), uint8(b))
				gr, gg, gb := XYZToSRGB(x, y, z)
				assert.InDelta(t, r, int(gr), 1)
				assert.InDelta(t, g, int(gg), 1)
				assert.InDelta(t, b, int(gb), 1)
			}
		}
	}
}
