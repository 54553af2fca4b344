package quantize

import (
	"fmt"
	"image/color"
	"runtime"
	"sort"
	"sync"
)

// Wu's colour quantizer. Pixels are binned into a 33x33x33 histogram over
// RGB space, then the box with the greatest colour variance is repeatedly
// split at the point minimizing the variance of the two halves, until the
// requested number of boxes exists or no box can be usefully split. Each
// box's representative colour is its population-weighted centroid.
//
// Boxes live in a flat arena indexed by integer id rather than a pointer
// tree, and splitting is driven by a worklist, so depth is bounded and the
// histogram pass can be sharded.
const (
	indexBits    = 5
	indexCount   = 1<<indexBits + 1 // 33
	totalSize    = indexCount * indexCount * indexCount
	bitsToRemove = 8 - indexBits
)

// parallelThreshold is the pixel count above which the histogram pass is
// sharded across CPUs. Merging shards is pure addition, so the result is
// identical to the sequential pass.
const parallelThreshold = 1 << 16

type direction int

const (
	directionRed direction = iota
	directionGreen
	directionBlue
)

// box is an axis-aligned region of histogram space. Bounds are exclusive
// at the lower edge and inclusive at the upper edge, matching the
// zero-padded cumulative moment arrays.
type box struct {
	r0, r1 int
	g0, g1 int
	b0, b1 int
	vol    int
}

// histogram accumulates per-bin pixel counts and channel moments.
type histogram struct {
	weights  []int64
	momentsR []int64
	momentsG []int64
	momentsB []int64
	moments  []float64
}

func newHistogram() *histogram {
	return &histogram{
		weights:  make([]int64, totalSize),
		momentsR: make([]int64, totalSize),
		momentsG: make([]int64, totalSize),
		momentsB: make([]int64, totalSize),
		moments:  make([]float64, totalSize),
	}
}

func (h *histogram) add(px color.RGBA) {
	r, g, b := int64(px.R), int64(px.G), int64(px.B)
	idx := getIndex((int(px.R)>>bitsToRemove)+1, (int(px.G)>>bitsToRemove)+1, (int(px.B)>>bitsToRemove)+1)
	h.weights[idx]++
	h.momentsR[idx] += r
	h.momentsG[idx] += g
	h.momentsB[idx] += b
	h.moments[idx] += float64(r*r + g*g + b*b)
}

func (h *histogram) merge(other *histogram) {
	for i := 0; i < totalSize; i++ {
		h.weights[i] += other.weights[i]
		h.momentsR[i] += other.momentsR[i]
		h.momentsG[i] += other.momentsG[i]
		h.momentsB[i] += other.momentsB[i]
		h.moments[i] += other.moments[i]
	}
}

// WuQuantizer implements [Quantizer] using Wu's algorithm.
type WuQuantizer struct{}

// NewWuQuantizer returns a new WuQuantizer.
func NewWuQuantizer() *WuQuantizer {
	return &WuQuantizer{}
}

// Quantize reduces pixels to at most maxColors representative colours with
// population counts, ordered by descending count. Pixels with alpha below
// [AlphaThreshold] are ignored; if none remain, [ErrNoVisiblePixels] is
// returned. When the input holds fewer distinct colours than maxColors the
// result is correspondingly shorter.
func (q *WuQuantizer) Quantize(pixels []color.RGBA, maxColors int) ([]Quantized, error) {
	if maxColors < 1 || maxColors > 256 {
		return nil, fmt.Errorf("max colors must be between 1 and 256, got %d", maxColors)
	}

	hist := buildHistogram(pixels)
	visible := int64(0)
	for _, w := range hist.weights {
		visible += w
	}
	if visible == 0 {
		return nil, ErrNoVisiblePixels
	}

	hist.computeCumulativeMoments()

	cubes := make([]box, maxColors)
	generated := createBoxes(hist, cubes)

	result := make([]Quantized, 0, generated)
	for i := 0; i < generated; i++ {
		weight := volume(&cubes[i], hist.weights)
		if weight == 0 {
			continue
		}
		result = append(result, Quantized{
			Color: color.RGBA{
				R: uint8(volume(&cubes[i], hist.momentsR) / weight),
				G: uint8(volume(&cubes[i], hist.momentsG) / weight),
				B: uint8(volume(&cubes[i], hist.momentsB) / weight),
				A: 255,
			},
			Count: int(weight),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result, nil
}

// buildHistogram bins all visible pixels, sharding across CPUs for large
// inputs.
func buildHistogram(pixels []color.RGBA) *histogram {
	workers := runtime.GOMAXPROCS(0)
	if len(pixels) < parallelThreshold || workers < 2 {
		hist := newHistogram()
		for _, px := range pixels {
			if px.A < AlphaThreshold {
				continue
			}
			hist.add(px)
		}
		return hist
	}

	shards := make([]*histogram, workers)
	chunk := (len(pixels) + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := min(start+chunk, len(pixels))
		if start >= end {
			break
		}
		shards[w] = newHistogram()
		wg.Add(1)
		go func(hist *histogram, part []color.RGBA) {
			defer wg.Done()
			for _, px := range part {
				if px.A < AlphaThreshold {
					continue
				}
				hist.add(px)
			}
		}(shards[w], pixels[start:end])
	}
	wg.Wait()

	hist := shards[0]
	for _, shard := range shards[1:] {
		if shard != nil {
			hist.merge(shard)
		}
	}
	return hist
}

// computeCumulativeMoments converts the per-bin moments into 3-D cumulative
// sums so any box total is an O(1) inclusion-exclusion lookup.
func (h *histogram) computeCumulativeMoments() {
	for r := 1; r < indexCount; r++ {
		var (
			area  [indexCount]int64
			areaR [indexCount]int64
			areaG [indexCount]int64
			areaB [indexCount]int64
			area2 [indexCount]float64
		)
		for g := 1; g < indexCount; g++ {
			var line, lineR, lineG, lineB int64
			var line2 float64
			for b := 1; b < indexCount; b++ {
				idx := getIndex(r, g, b)
				line += h.weights[idx]
				lineR += h.momentsR[idx]
				lineG += h.momentsG[idx]
				lineB += h.momentsB[idx]
				line2 += h.moments[idx]

				area[b] += line
				areaR[b] += lineR
				areaG[b] += lineG
				areaB[b] += lineB
				area2[b] += line2

				prev := getIndex(r-1, g, b)
				h.weights[idx] = h.weights[prev] + area[b]
				h.momentsR[idx] = h.momentsR[prev] + areaR[b]
				h.momentsG[idx] = h.momentsG[prev] + areaG[b]
				h.momentsB[idx] = h.momentsB[prev] + areaB[b]
				h.moments[idx] = h.moments[prev] + area2[b]
			}
		}
	}
}

// createBoxes splits boxes until the arena is full or no box has any
// variance left to remove. It returns the number of boxes generated.
func createBoxes(h *histogram, cubes []box) int {
	maxColors := len(cubes)
	cubes[0] = box{r1: indexCount - 1, g1: indexCount - 1, b1: indexCount - 1}

	volumeVariance := make([]float64, maxColors)
	generated := maxColors
	next := 0
	for i := 1; i < maxColors; i++ {
		if cut(h, &cubes[next], &cubes[i]) {
			volumeVariance[next] = 0
			if cubes[next].vol > 1 {
				volumeVariance[next] = variance(h, &cubes[next])
			}
			volumeVariance[i] = 0
			if cubes[i].vol > 1 {
				volumeVariance[i] = variance(h, &cubes[i])
			}
		} else {
			volumeVariance[next] = 0
			i--
		}

		next = 0
		temp := volumeVariance[0]
		for j := 1; j <= i; j++ {
			if volumeVariance[j] > temp {
				temp = volumeVariance[j]
				next = j
			}
		}
		if temp <= 0 {
			generated = i + 1
			break
		}
	}
	return generated
}

// variance returns the cube's contribution to total colour variance.
func variance(h *histogram, cube *box) float64 {
	dr := volume(cube, h.momentsR)
	dg := volume(cube, h.momentsG)
	db := volume(cube, h.momentsB)
	xx := h.moments[getIndex(cube.r1, cube.g1, cube.b1)] -
		h.moments[getIndex(cube.r1, cube.g1, cube.b0)] -
		h.moments[getIndex(cube.r1, cube.g0, cube.b1)] +
		h.moments[getIndex(cube.r1, cube.g0, cube.b0)] -
		h.moments[getIndex(cube.r0, cube.g1, cube.b1)] +
		h.moments[getIndex(cube.r0, cube.g1, cube.b0)] +
		h.moments[getIndex(cube.r0, cube.g0, cube.b1)] -
		h.moments[getIndex(cube.r0, cube.g0, cube.b0)]
	hypotenuse := float64(dr*dr + dg*dg + db*db)
	return xx - hypotenuse/float64(volume(cube, h.weights))
}

// cut splits one into one and two at the point minimizing the variance of
// the halves. It reports false when one cannot be split.
func cut(h *histogram, one, two *box) bool {
	wholeR := volume(one, h.momentsR)
	wholeG := volume(one, h.momentsG)
	wholeB := volume(one, h.momentsB)
	wholeW := volume(one, h.weights)

	maxRCut, maxR := maximize(h, one, directionRed, one.r0+1, one.r1, wholeR, wholeG, wholeB, wholeW)
	maxGCut, maxG := maximize(h, one, directionGreen, one.g0+1, one.g1, wholeR, wholeG, wholeB, wholeW)
	maxBCut, maxB := maximize(h, one, directionBlue, one.b0+1, one.b1, wholeR, wholeG, wholeB, wholeW)

	var dir direction
	switch {
	case maxR >= maxG && maxR >= maxB:
		if maxRCut < 0 {
			return false
		}
		dir = directionRed
	case maxG >= maxR && maxG >= maxB:
		dir = directionGreen
	default:
		dir = directionBlue
	}

	two.r1 = one.r1
	two.g1 = one.g1
	two.b1 = one.b1

	switch dir {
	case directionRed:
		one.r1 = maxRCut
		two.r0 = one.r1
		two.g0 = one.g0
		two.b0 = one.b0
	case directionGreen:
		one.g1 = maxGCut
		two.r0 = one.r0
		two.g0 = one.g1
		two.b0 = one.b0
	case directionBlue:
		one.b1 = maxBCut
		two.r0 = one.r0
		two.g0 = one.g0
		two.b0 = one.b1
	}

	one.vol = (one.r1 - one.r0) * (one.g1 - one.g0) * (one.b1 - one.b0)
	two.vol = (two.r1 - two.r0) * (two.g1 - two.g0) * (two.b1 - two.b0)
	return true
}

// maximize finds the split position along dir that maximizes the summed
// squared-mean of the two halves, which is equivalent to minimizing their
// combined variance.
func maximize(h *histogram, cube *box, dir direction, first, last int, wholeR, wholeG, wholeB, wholeW int64) (int, float64) {
	bottomR := bottom(cube, dir, h.momentsR)
	bottomG := bottom(cube, dir, h.momentsG)
	bottomB := bottom(cube, dir, h.momentsB)
	bottomW := bottom(cube, dir, h.weights)

	maxScore := 0.0
	cutAt := -1
	for i := first; i < last; i++ {
		halfR := bottomR + top(cube, dir, i, h.momentsR)
		halfG := bottomG + top(cube, dir, i, h.momentsG)
		halfB := bottomB + top(cube, dir, i, h.momentsB)
		halfW := bottomW + top(cube, dir, i, h.weights)
		if halfW == 0 {
			continue
		}

		score := float64(halfR*halfR+halfG*halfG+halfB*halfB) / float64(halfW)

		otherR := wholeR - halfR
		otherG := wholeG - halfG
		otherB := wholeB - halfB
		otherW := wholeW - halfW
		if otherW == 0 {
			continue
		}
		score += float64(otherR*otherR+otherG*otherG+otherB*otherB) / float64(otherW)

		if score > maxScore {
			maxScore = score
			cutAt = i
		}
	}
	return cutAt, maxScore
}

// volume is the inclusion-exclusion total of a cumulative moment array
// over a box.
func volume(cube *box, moment []int64) int64 {
	return moment[getIndex(cube.r1, cube.g1, cube.b1)] -
		moment[getIndex(cube.r1, cube.g1, cube.b0)] -
		moment[getIndex(cube.r1, cube.g0, cube.b1)] +
		moment[getIndex(cube.r1, cube.g0, cube.b0)] -
		moment[getIndex(cube.r0, cube.g1, cube.b1)] +
		moment[getIndex(cube.r0, cube.g1, cube.b0)] +
		moment[getIndex(cube.r0, cube.g0, cube.b1)] -
		moment[getIndex(cube.r0, cube.g0, cube.b0)]
}

// bottom is the box total over the lower face perpendicular to dir.
func bottom(cube *box, dir direction, moment []int64) int64 {
	switch dir {
	case directionRed:
		return -moment[getIndex(cube.r0, cube.g1, cube.b1)] +
			moment[getIndex(cube.r0, cube.g1, cube.b0)] +
			moment[getIndex(cube.r0, cube.g0, cube.b1)] -
			moment[getIndex(cube.r0, cube.g0, cube.b0)]
	case directionGreen:
		return -moment[getIndex(cube.r1, cube.g0, cube.b1)] +
			moment[getIndex(cube.r1, cube.g0, cube.b0)] +
			moment[getIndex(cube.r0, cube.g0, cube.b1)] -
			moment[getIndex(cube.r0, cube.g0, cube.b0)]
	default:
		return -moment[getIndex(cube.r1, cube.g1, cube.b0)] +
			moment[getIndex(cube.r1, cube.g0, cube.b0)] +
			moment[getIndex(cube.r0, cube.g1, cube.b0)] -
			moment[getIndex(cube.r0, cube.g0, cube.b0)]
	}
}

// top is the box total over the plane at position along dir.
func top(cube *box, dir direction, position int, moment []int64) int64 {
	switch dir {
	case directionRed:
		return moment[getIndex(position, cube.g1, cube.b1)] -
			moment[getIndex(position, cube.g1, cube.b0)] -
			moment[getIndex(position, cube.g0, cube.b1)] +
			moment[getIndex(position, cube.g0, cube.b0)]
	case directionGreen:
		return moment[getIndex(cube.r1, position, cube.b1)] -
			moment[getIndex(cube.r1, position, cube.b0)] -
			moment[getIndex(cube.r0, position, cube.b1)] +
			moment[getIndex(cube.r0, position, cube.b0)]
	default:
		return moment[getIndex(cube.r1, cube.g1, position)] -
			moment[getIndex(cube.r1, cube.g0, position)] -
			moment[getIndex(cube.r0, cube.g1, position)] +
			moment[getIndex(cube.r0, cube.g0, position)]
	}
}

func getIndex(r, g, b int) int {
	return r*indexCount*indexCount + g*indexCount + b
}
