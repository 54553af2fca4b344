package theme

import (
	"fmt"
	"image"
	"image/color"

	"github.com/jmylchreest/matugo/internal/imageio"
	"github.com/jmylchreest/matugo/internal/matcolor"
	"github.com/jmylchreest/matugo/internal/quantize"
	"github.com/jmylchreest/matugo/internal/score"
)

// MaxExtractedColors is how many clusters the quantizer reduces a
// wallpaper to before scoring.
const MaxExtractedColors = 128

// Theme is a fully resolved colour scheme for one mode, post-processed
// and ready to serialize.
type Theme struct {
	// Seed is the colour the scheme was derived from.
	Seed RGB
	// Mode is the scheme mode the roles were resolved for.
	Mode matcolor.Mode
	// Colors maps Material role names to final colours.
	Colors map[string]RGB
}

// FromSeed builds a theme from a single seed colour.
func FromSeed(seed color.Color, mode matcolor.Mode) *Theme {
	palette := matcolor.NewCorePalette(seed)
	scheme := matcolor.SchemeFor(palette, mode)

	colors := make(map[string]RGB, len(scheme))
	for name, c := range scheme {
		colors[name] = ToRGB(c)
	}
	postProcess(colors, mode)

	return &Theme{
		Seed:   ToRGB(seed),
		Mode:   mode,
		Colors: colors,
	}
}

// SeedFromImage extracts the dominant theme-worthy colour from an image:
// the image is downscaled, quantized to [MaxExtractedColors] clusters and
// the clusters ranked by suitability. The top-ranked colour wins.
func SeedFromImage(img image.Image) (color.RGBA, error) {
	pixels := imageio.Pixels(imageio.Prescale(img))

	quantizer, err := quantize.New(quantize.AlgorithmWu)
	if err != nil {
		return color.RGBA{}, err
	}
	clusters, err := quantizer.Quantize(pixels, MaxExtractedColors)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("failed to quantize image: %w", err)
	}

	return score.Rank(clusters).Top(), nil
}

// FromImage builds a theme from a wallpaper image.
func FromImage(img image.Image, mode matcolor.Mode) (*Theme, error) {
	seed, err := SeedFromImage(img)
	if err != nil {
		return nil, err
	}
	return FromSeed(seed, mode), nil
}
