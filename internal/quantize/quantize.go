// Package quantize reduces an image's pixels to a small set of
// representative colours with population counts.
package quantize

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrNoVisiblePixels is returned when every input pixel is below the alpha
// visibility threshold, leaving nothing to quantize.
var ErrNoVisiblePixels = errors.New("no visible pixels to quantize")

// AlphaThreshold is the minimum alpha for a pixel to count as visible.
// Pixels below it are excluded before the histogram is built.
const AlphaThreshold = 128

// Quantized is a representative colour together with the number of source
// pixels it absorbed.
type Quantized struct {
	Color color.RGBA
	Count int
}

// Quantizer reduces a pixel buffer to at most maxColors representative
// colours, ordered by descending population.
type Quantizer interface {
	Quantize(pixels []color.RGBA, maxColors int) ([]Quantized, error)
}

// Algorithm identifies a quantization algorithm.
type Algorithm string

const (
	// AlgorithmWu uses Wu's variance-minimizing box subdivision.
	AlgorithmWu Algorithm = "wu"
)

// New returns a Quantizer for the given algorithm.
func New(alg Algorithm) (Quantizer, error) {
	switch alg {
	case AlgorithmWu:
		return NewWuQuantizer(), nil
	default:
		return nil, fmt.Errorf("unknown quantization algorithm: %s", alg)
	}
}
