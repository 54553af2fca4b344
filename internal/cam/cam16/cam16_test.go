package cam16

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStdView(t *testing.T) {
	vw := StdView()
	assert.InDelta(t, 11.725676537, vw.AdaptingLuminance, 1e-6)
	assert.InDelta(t, 0.184186503, vw.N, 1e-6)
	assert.InDelta(t, 29.981, vw.AW, 1e-3)
	assert.InDelta(t, 1.0169, vw.NBB, 1e-3)
	assert.InDelta(t, vw.NBB, vw.NCB, 1e-12)
	assert.InDelta(t, 0.69, vw.C, 1e-12)
	assert.InDelta(t, 1.0, vw.NC, 1e-12)
	assert.InDelta(t, 0.3885, vw.FL, 1e-3)
	assert.InDelta(t, 0.7894, vw.FLRoot, 1e-3)
	assert.InDelta(t, 1.909169568, vw.Z, 1e-6)
}

func TestFromSRGB(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		hue     float64
		chroma  float64
	}{
		{"red", 255, 0, 0, 27.408, 113.357},
		{"green", 0, 255, 0, 142.139, 108.410},
		{"blue", 0, 0, 255, 282.788, 87.230},
		{"white", 255, 255, 255, 209.492, 2.869},
		{"black", 0, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := FromSRGB(tt.r, tt.g, tt.b)
			assert.InDelta(t, tt.hue, cam.Hue, 0.01)
			assert.InDelta(t, tt.chroma, cam.Chroma, 0.01)
		})
	}
}

func TestGreyHasNoChroma(t *testing.T) {
	for _, v := range []uint8{16, 64, 128, 200} {
		cam := FromSRGB(v, v, v)
		assert.Less(t, cam.Chroma, 4.0, "grey %d", v)
	}
}

func TestSanitizeDegrees(t *testing.T) {
	assert.InDelta(t, 30.0, SanitizeDegrees(30), 1e-12)
	assert.InDelta(t, 330.0, SanitizeDegrees(-30), 1e-12)
	assert.InDelta(t, 10.0, SanitizeDegrees(370), 1e-12)
	assert.InDelta(t, 0.0, SanitizeDegrees(720), 1e-12)
}

func TestInCyclicOrder(t *testing.T) {
	assert.True(t, InCyclicOrder(0.1, 0.2, 0.3))
	assert.False(t, InCyclicOrder(0.3, 0.2, 0.1))
	// Wraps across 2pi.
	assert.True(t, InCyclicOrder(6.0, 0.1, 0.5))
}
