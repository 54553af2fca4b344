package quantize

import (
	"errors"
	"image/color"
	"math/rand"
	"reflect"
	"testing"
)

func TestQuantizeUniformImage(t *testing.T) {
	// A 2x2 image of pure red must collapse to exactly one cluster holding
	// every pixel.
	red := color.RGBA{R: 255, A: 255}
	pixels := []color.RGBA{red, red, red, red}

	q := NewWuQuantizer()
	got, err := q.Quantize(pixels, 128)
	if err != nil {
		t.Fatalf("Quantize() error = %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(got))
	}
	if got[0].Count != 4 {
		t.Errorf("Count = %d, want 4", got[0].Count)
	}
	if got[0].Color != red {
		t.Errorf("Color = %+v, want %+v", got[0].Color, red)
	}
}

func TestQuantizeFewerDistinctThanRequested(t *testing.T) {
	pixels := []color.RGBA{
		{R: 255, A: 255},
		{G: 255, A: 255},
		{B: 255, A: 255},
	}

	q := NewWuQuantizer()
	got, err := q.Quantize(pixels, 128)
	if err != nil {
		t.Fatalf("Quantize() error = %v", err)
	}

	if len(got) != 3 {
		t.Errorf("expected 3 clusters for 3 distinct colors, got %d", len(got))
	}
}

func TestQuantizeCap(t *testing.T) {
	// Many distinct colours, small cap.
	rng := rand.New(rand.NewSource(1))
	pixels := make([]color.RGBA, 4096)
	for i := range pixels {
		pixels[i] = color.RGBA{
			R: uint8(rng.Intn(256)),
			G: uint8(rng.Intn(256)),
			B: uint8(rng.Intn(256)),
			A: 255,
		}
	}

	q := NewWuQuantizer()
	for _, maxColors := range []int{1, 4, 16, 128} {
		got, err := q.Quantize(pixels, maxColors)
		if err != nil {
			t.Fatalf("Quantize(%d) error = %v", maxColors, err)
		}
		if len(got) > maxColors {
			t.Errorf("Quantize(%d) returned %d clusters", maxColors, len(got))
		}
	}
}

func TestQuantizePopulationConservation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pixels := make([]color.RGBA, 10000)
	visible := 0
	for i := range pixels {
		a := uint8(rng.Intn(256))
		pixels[i] = color.RGBA{
			R: uint8(rng.Intn(256)),
			G: uint8(rng.Intn(256)),
			B: uint8(rng.Intn(256)),
			A: a,
		}
		if a >= AlphaThreshold {
			visible++
		}
	}

	q := NewWuQuantizer()
	got, err := q.Quantize(pixels, 32)
	if err != nil {
		t.Fatalf("Quantize() error = %v", err)
	}

	sum := 0
	for _, c := range got {
		sum += c.Count
	}
	if sum != visible {
		t.Errorf("count sum = %d, want %d visible pixels", sum, visible)
	}
}

func TestQuantizeOrderedByPopulation(t *testing.T) {
	pixels := make([]color.RGBA, 0, 60)
	for i := 0; i < 40; i++ {
		pixels = append(pixels, color.RGBA{R: 255, A: 255})
	}
	for i := 0; i < 15; i++ {
		pixels = append(pixels, color.RGBA{G: 255, A: 255})
	}
	for i := 0; i < 5; i++ {
		pixels = append(pixels, color.RGBA{B: 255, A: 255})
	}

	q := NewWuQuantizer()
	got, err := q.Quantize(pixels, 8)
	if err != nil {
		t.Fatalf("Quantize() error = %v", err)
	}

	for i := 1; i < len(got); i++ {
		if got[i].Count > got[i-1].Count {
			t.Errorf("result not ordered by population at %d: %d > %d", i, got[i].Count, got[i-1].Count)
		}
	}
	if got[0].Color != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("most populous color = %+v, want red", got[0].Color)
	}
}

func TestQuantizeNoVisiblePixels(t *testing.T) {
	tests := []struct {
		name   string
		pixels []color.RGBA
	}{
		{name: "empty buffer", pixels: nil},
		{
			name: "all transparent",
			pixels: []color.RGBA{
				{R: 255, A: 0},
				{G: 255, A: 10},
				{B: 255, A: AlphaThreshold - 1},
			},
		},
	}

	q := NewWuQuantizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := q.Quantize(tt.pixels, 16)
			if !errors.Is(err, ErrNoVisiblePixels) {
				t.Errorf("error = %v, want ErrNoVisiblePixels", err)
			}
		})
	}
}

func TestQuantizeDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pixels := make([]color.RGBA, 100000) // above the parallel threshold
	for i := range pixels {
		pixels[i] = color.RGBA{
			R: uint8(rng.Intn(256)),
			G: uint8(rng.Intn(256)),
			B: uint8(rng.Intn(256)),
			A: 255,
		}
	}

	q := NewWuQuantizer()
	first, err := q.Quantize(pixels, 128)
	if err != nil {
		t.Fatalf("Quantize() error = %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := q.Quantize(pixels, 128)
		if err != nil {
			t.Fatalf("Quantize() error = %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs from first run", i+2)
		}
	}
}

func TestQuantizeInvalidMaxColors(t *testing.T) {
	q := NewWuQuantizer()
	for _, maxColors := range []int{0, -1, 257} {
		if _, err := q.Quantize([]color.RGBA{{A: 255}}, maxColors); err == nil {
			t.Errorf("Quantize(%d) expected error", maxColors)
		}
	}
}

func TestNewQuantizer(t *testing.T) {
	if _, err := New(AlgorithmWu); err != nil {
		t.Errorf("New(wu) error = %v", err)
	}
	if _, err := New(Algorithm("octree")); err == nil {
		t.Error("New(octree) expected error")
	}
}
