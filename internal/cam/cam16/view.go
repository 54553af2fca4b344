// Package cam16 implements the CAM16 colour appearance model, which
// predicts perceived hue, chroma and lightness far better than HSL-style
// geometric transforms of RGB.
package cam16

import (
	"math"

	"github.com/jmylchreest/matugo/internal/cam/cie"
)

// View holds viewing conditions under which a colour is perceived, plus the
// derived factors the CAM16 equations need. The same colour looks different
// under different conditions; all scheme generation here uses [StdView].
type View struct {
	// WhitePoint is the illuminant white point, typically cie.WhiteD65.
	WhitePoint [3]float64

	// AdaptingLuminance is the luminance of the adapting field in cd/m2.
	AdaptingLuminance float64

	// BackgroundLStar is the L* lightness of the background.
	BackgroundLStar float64

	// Surround is the surround brightness, 0 (dark) to 2 (average).
	Surround float64

	// Discounting reports whether the eye is assumed fully adapted to the
	// illuminant rather than partially.
	Discounting bool

	// Derived factors, computed by update.
	N      float64    // background Y to white Y ratio
	AW     float64    // achromatic response to white
	NBB    float64    // brightness induction factor
	NCB    float64    // chromatic induction factor
	C      float64    // exponential nonlinearity
	NC     float64    // chromatic surround induction
	FL     float64    // luminance adaptation factor
	FLRoot float64    // FL to the 1/4 power
	Z      float64    // base exponential nonlinearity
	RGBD   [3]float64 // discounted cone responses to white
}

// stdView caches the standard viewing conditions.
var stdView *View

// StdView returns the standard viewing conditions: D65 white point, average
// surround, background L* of 50 and an adapting luminance derived from a
// 200 lux ambient level. All values are deterministic.
func StdView() *View {
	if stdView == nil {
		stdView = NewView(cie.WhiteD65, 200.0/math.Pi*cie.LToY(50)/100, 50, 2, false)
	}
	return stdView
}

// NewView constructs viewing conditions from the major parameters and
// computes all derived factors.
func NewView(whitePoint [3]float64, adaptingLuminance, backgroundLStar, surround float64, discounting bool) *View {
	vw := &View{
		WhitePoint:        whitePoint,
		AdaptingLuminance: adaptingLuminance,
		BackgroundLStar:   backgroundLStar,
		Surround:          surround,
		Discounting:       discounting,
	}
	vw.update()
	return vw
}

func (vw *View) update() {
	// A pure black background is non-physical; the model degenerates there.
	vw.BackgroundLStar = math.Max(0.1, vw.BackgroundLStar)

	rW, gW, bW := xyzToCone(vw.WhitePoint[0], vw.WhitePoint[1], vw.WhitePoint[2])

	// Scale surround, domain (0, 2), to the CAM16 f factor, domain (0.8, 1.0).
	f := 0.8 + vw.Surround/10
	if f >= 0.9 {
		vw.C = lerp(0.59, 0.69, (f-0.9)*10)
	} else {
		vw.C = lerp(0.525, 0.59, (f-0.8)*10)
	}

	// Degree of adaptation to the illuminant.
	d := 1.0
	if !vw.Discounting {
		d = f * (1 - (1/3.6)*math.Exp((-vw.AdaptingLuminance-42)/92))
	}
	d = clamp(d, 0, 1)

	vw.NC = f

	// Cone responses to the white point, adjusted for discounting. 100 is
	// used rather than the white point's relative luminance; later steps
	// account for scaling relative to the white point.
	vw.RGBD = [3]float64{
		d*(100/rW) + 1 - d,
		d*(100/gW) + 1 - d,
		d*(100/bW) + 1 - d,
	}

	k := 1 / (5*vw.AdaptingLuminance + 1)
	k4 := k * k * k * k
	k4F := 1 - k4
	vw.FL = k4*vw.AdaptingLuminance + 0.1*k4F*k4F*math.Cbrt(5*vw.AdaptingLuminance)
	vw.FLRoot = math.Pow(vw.FL, 0.25)

	vw.N = cie.LToY(vw.BackgroundLStar) / vw.WhitePoint[1]
	vw.Z = 1.48 + math.Sqrt(vw.N)
	vw.NBB = 0.725 / math.Pow(vw.N, 0.2)
	vw.NCB = vw.NBB

	rA := Adapt(vw.FL * vw.RGBD[0] * rW / 100)
	gA := Adapt(vw.FL * vw.RGBD[1] * gW / 100)
	bA := Adapt(vw.FL * vw.RGBD[2] * bW / 100)
	vw.AW = (2*rA + gA + 0.05*bA) * vw.NBB
}

// Adapt applies the CAM16 post-adaptation nonlinearity to a cone response.
func Adapt(component float64) float64 {
	af := math.Pow(math.Abs(component), 0.42)
	return sign(component) * 400 * af / (af + 27.13)
}

// InverseAdapt inverts [Adapt].
func InverseAdapt(adapted float64) float64 {
	adaptedAbs := math.Abs(adapted)
	base := math.Max(0, 27.13*adaptedAbs/(400-adaptedAbs))
	return sign(adapted) * math.Pow(base, 1.0/0.42)
}

// xyzToCone transforms XYZ coordinates into CAM16 cone responses.
func xyzToCone(x, y, z float64) (l, m, s float64) {
	l = 0.401288*x + 0.650173*y - 0.051461*z
	m = -0.250268*x + 1.204414*y + 0.045854*z
	s = -0.002079*x + 0.048952*y + 0.953127*z
	return l, m, s
}

func lerp(start, stop, amount float64) float64 {
	return (1-amount)*start + amount*stop
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func sign(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
