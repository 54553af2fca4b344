package imageio

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// PrescaleWidth is the width wallpapers are downscaled to before colour
// extraction. Quantizing the full image is slow and makes the dominant
// colours swing with fine texture; a small thumbnail keeps extraction
// fast and stable.
const PrescaleWidth = 64

// Prescale resizes img to [PrescaleWidth] keeping the aspect ratio.
// Images at or below the target width are returned unchanged.
func Prescale(img image.Image) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= PrescaleWidth || w == 0 || h == 0 {
		return img
	}

	newH := int(math.Round(float64(h) * PrescaleWidth / float64(w)))
	if newH < 1 {
		newH = 1
	}

	dst := image.NewNRGBA(image.Rect(0, 0, PrescaleWidth, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}

// Pixels flattens an image into straight-alpha RGBA pixels in row-major
// order, the layout the quantizer consumes.
func Pixels(img image.Image) []color.RGBA {
	bounds := img.Bounds()
	pixels := make([]color.RGBA, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			pixels = append(pixels, color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return pixels
}
