package hct

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromSRGBKnownColours(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		hue     float64
		chroma  float64
		tone    float64
	}{
		{"red", 255, 0, 0, 27.408, 113.357, 53.237},
		{"green", 0, 255, 0, 142.139, 108.410, 87.737},
		{"blue", 0, 0, 255, 282.788, 87.230, 32.302},
		{"white", 255, 255, 255, 209.492, 2.869, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := FromSRGB(tt.r, tt.g, tt.b)
			assert.InDelta(t, tt.hue, h.Hue, 0.01)
			assert.InDelta(t, tt.chroma, h.Chroma, 0.01)
			assert.InDelta(t, tt.tone, h.Tone, 0.01)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// For every sampled sRGB colour, solving back from its HCT coordinates
	// must land within one step per 8-bit channel.
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 17 {
				h := FromSRGB(uint8(r), uint8(g), uint8(b))
				back := New(h.Hue, h.Chroma, h.Tone)
				label := fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
				assert.InDelta(t, r, int(back.R), 1, label)
				assert.InDelta(t, g, int(back.G), 1, label)
				assert.InDelta(t, b, int(back.B), 1, label)
			}
		}
	}
}

func TestNewGamutBehaviour(t *testing.T) {
	hues := []float64{15, 45, 75, 105, 135, 165, 195, 225, 255, 285, 315, 345}
	chromas := []float64{0, 20, 40, 60, 80, 100}
	tones := []float64{20, 30, 40, 50, 60, 70, 80}

	for _, hue := range hues {
		for _, chroma := range chromas {
			for _, tone := range tones {
				h := New(hue, chroma, tone)
				if chroma > 0 {
					assert.InDelta(t, hue, h.Hue, 4.0, h.String())
				}
				// Chroma only ever clamps downward.
				assert.LessOrEqual(t, h.Chroma, chroma+2.5, h.String())
				assert.InDelta(t, tone, h.Tone, 0.5, h.String())
			}
		}
	}
}

func TestExtremeTonesAreExact(t *testing.T) {
	for _, hue := range []float64{0, 90, 180, 270} {
		for _, chroma := range []float64{0, 50, 100} {
			black := New(hue, chroma, 0)
			assert.Equal(t, uint8(0), black.R)
			assert.Equal(t, uint8(0), black.G)
			assert.Equal(t, uint8(0), black.B)

			white := New(hue, chroma, 100)
			assert.Equal(t, uint8(255), white.R)
			assert.Equal(t, uint8(255), white.G)
			assert.Equal(t, uint8(255), white.B)
		}
	}
}

func TestWithTone(t *testing.T) {
	violet := FromSRGB(103, 80, 164)
	lighter := violet.WithTone(80)
	assert.InDelta(t, 80, lighter.Tone, 0.5)
	assert.InDelta(t, violet.Hue, lighter.Hue, 4.0)
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		New(120, 45, 56)
	}
}
