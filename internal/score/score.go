// Package score ranks quantized colours by how suitable they are as the
// seed of a colour scheme. Saturated colours that cover a meaningful share
// of the image score highest; near-greyscale colours are penalized but kept
// as a fallback so that a scheme can always be produced.
package score

import (
	"image/color"
	"math"
	"sort"

	"github.com/jmylchreest/matugo/internal/cam/cam16"
	"github.com/jmylchreest/matugo/internal/cam/hct"
	"github.com/jmylchreest/matugo/internal/quantize"
)

// Scoring policy constants. These are part of the versioned output
// contract: changing any of them changes every derived scheme.
const (
	// TargetChroma is the chroma at which a colour reads as fully
	// "thematic"; chroma above it earns diminishing extra credit.
	TargetChroma = 48.0

	// WeightProportion scales the population share of a colour.
	WeightProportion = 0.7

	// WeightChromaAbove scales chroma in excess of TargetChroma.
	WeightChromaAbove = 0.3

	// WeightChromaBelow scales the (negative) chroma shortfall below
	// TargetChroma, penalizing washed-out colours.
	WeightChromaBelow = 0.1

	// CutoffChroma is the chroma floor below which a colour is treated as
	// greyscale and only eligible as a fallback.
	CutoffChroma = 5.0

	// CutoffExcitedProportion is the minimum share of the image, after
	// neighbouring-hue spreading, for a colour to be a primary candidate.
	CutoffExcitedProportion = 0.01

	// MinimumHueDistance is the smallest hue separation, in degrees,
	// attempted between successively selected seed colours.
	MinimumHueDistance = 15.0

	// preferredHueDistance is the hue separation selection starts from
	// before relaxing towards MinimumHueDistance.
	preferredHueDistance = 90.0
)

// Scored pairs a quantized colour with its seed-worthiness score.
type Scored struct {
	quantize.Quantized
	Score float64
}

// Ranking is the scored colour list in strictly maintained descending
// score order.
type Ranking []Scored

// Rank scores every quantized colour and returns them ordered best-first.
// Ties keep the quantizer's population order. The ranking prefers colours
// that pass the chroma and proportion cutoffs; when none do, all colours
// are ranked so the caller still gets a usable (if muted) seed.
func Rank(colors []quantize.Quantized) Ranking {
	if len(colors) == 0 {
		return nil
	}

	total := 0
	hcts := make([]hct.HCT, len(colors))
	huePopulation := make([]int, 360)
	for i, qc := range colors {
		hcts[i] = hct.FromColor(qc.Color)
		hue := int(math.Floor(cam16.SanitizeDegrees(hcts[i].Hue)))
		huePopulation[hue] += qc.Count
		total += qc.Count
	}

	// Spread each hue's population over its neighbours so one dominant hue
	// band scores as a whole rather than splitting across near-identical
	// candidates.
	hueExcitedProportion := make([]float64, 360)
	for hue, population := range huePopulation {
		if population == 0 {
			continue
		}
		proportion := float64(population) / float64(total)
		for j := hue - 14; j < hue+16; j++ {
			hueExcitedProportion[(j%360+360)%360] += proportion
		}
	}

	score := func(i int) float64 {
		hue := int(math.Floor(cam16.SanitizeDegrees(hcts[i].Hue)))
		proportion := hueExcitedProportion[hue]
		proportionScore := proportion * 100 * WeightProportion
		chromaWeight := WeightChromaAbove
		if hcts[i].Chroma < TargetChroma {
			chromaWeight = WeightChromaBelow
		}
		return proportionScore + (hcts[i].Chroma-TargetChroma)*chromaWeight
	}

	passes := func(i int) bool {
		hue := int(math.Floor(cam16.SanitizeDegrees(hcts[i].Hue)))
		return hcts[i].Chroma >= CutoffChroma && hueExcitedProportion[hue] > CutoffExcitedProportion
	}

	anyPass := false
	for i := range colors {
		if passes(i) {
			anyPass = true
			break
		}
	}

	ranking := make(Ranking, 0, len(colors))
	for i, qc := range colors {
		if anyPass && !passes(i) {
			continue
		}
		ranking = append(ranking, Scored{Quantized: qc, Score: score(i)})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Score > ranking[j].Score
	})
	return ranking
}

// Top returns the single best seed colour. When the ranking is empty it
// falls back to a neutral blue so downstream palette generation is total.
func (r Ranking) Top() color.RGBA {
	if len(r) == 0 {
		return FallbackSeed
	}
	return r[0].Color
}

// Select picks up to count seed colours from the ranking, keeping
// successive picks at least a minimum hue distance apart. The separation
// starts at 90 degrees and relaxes down to [MinimumHueDistance] until
// enough sufficiently distinct colours are found.
func (r Ranking) Select(count int) []color.RGBA {
	if count <= 0 || len(r) == 0 {
		return nil
	}

	hues := make([]float64, len(r))
	for i, sc := range r {
		hues[i] = hct.FromColor(sc.Color).Hue
	}

	var chosen []color.RGBA
	for distance := preferredHueDistance; distance >= MinimumHueDistance; distance-- {
		chosen = chosen[:0]
		var chosenHues []float64
		for i, sc := range r {
			duplicate := false
			for _, h := range chosenHues {
				if hueDistance(h, hues[i]) < distance {
					duplicate = true
					break
				}
			}
			if duplicate {
				continue
			}
			chosen = append(chosen, sc.Color)
			chosenHues = append(chosenHues, hues[i])
			if len(chosen) >= count {
				return chosen
			}
		}
	}
	return chosen
}

// FallbackSeed is the seed used when an image yields no scoreable colour
// at all.
var FallbackSeed = color.RGBA{R: 0x42, G: 0x85, B: 0xf4, A: 255}

// hueDistance is the angular distance between two hues in degrees, 0-180.
func hueDistance(a, b float64) float64 {
	diff := math.Abs(a - b)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}
