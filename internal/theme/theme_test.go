package theme

import (
	"encoding/json"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/jmylchreest/matugo/internal/matcolor"
	"github.com/jmylchreest/matugo/internal/score"
)

var violetSeed = color.RGBA{R: 103, G: 80, B: 164, A: 255}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    RGB
		wantErr bool
	}{
		{"with hash", "#1a2b3c", RGB{0x1a, 0x2b, 0x3c}, false},
		{"without hash", "1a2b3c", RGB{0x1a, 0x2b, 0x3c}, false},
		{"uppercase", "#AABBCC", RGB{0xaa, 0xbb, 0xcc}, false},
		{"shorthand", "#abc", RGB{0xaa, 0xbb, 0xcc}, false},
		{"whitespace", "  #ffffff ", RGB{255, 255, 255}, false},
		{"too short", "#ab", RGB{}, true},
		{"too long", "#aabbccdd", RGB{}, true},
		{"not hex", "#zzzzzz", RGB{}, true},
		{"empty", "", RGB{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGBFormatting(t *testing.T) {
	c := RGB{R: 0x1a, G: 0x2b, B: 0x3c}
	if got := c.Hex(); got != "#1a2b3c" {
		t.Errorf("Hex() = %q", got)
	}
	if got := c.HexPlain(); got != "1a2b3c" {
		t.Errorf("HexPlain() = %q", got)
	}
	if got := c.String(); got != "rgb(26, 43, 60)" {
		t.Errorf("String() = %q", got)
	}
}

func TestBrighten(t *testing.T) {
	tests := []struct {
		name   string
		in     RGB
		amount float64
		want   RGB
	}{
		{"dim by one percent", RGB{100, 150, 200}, -1, RGB{98, 148, 198}},
		{"brighten by one percent", RGB{100, 150, 200}, 1, RGB{103, 153, 203}},
		{"clamps at zero", RGB{1, 0, 2}, -1, RGB{0, 0, 0}},
		{"clamps at white", RGB{254, 255, 253}, 1, RGB{255, 255, 255}},
		{"zero amount", RGB{10, 20, 30}, 0, RGB{10, 20, 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Brighten(tt.in, tt.amount); got != tt.want {
				t.Errorf("Brighten(%v, %v) = %v, want %v", tt.in, tt.amount, got, tt.want)
			}
		})
	}
}

func TestHSLRoundTrip(t *testing.T) {
	for _, c := range []RGB{
		{255, 0, 0}, {0, 255, 0}, {0, 0, 255},
		{128, 128, 128}, {103, 80, 164}, {250, 245, 230},
	} {
		h, s, l := rgbToHSL(c)
		got := hslToRGB(h, s, l)
		for i, pair := range [][2]uint8{{got.R, c.R}, {got.G, c.G}, {got.B, c.B}} {
			diff := int(pair[0]) - int(pair[1])
			if diff < -1 || diff > 1 {
				t.Errorf("round trip of %v changed channel %d: got %v", c, i, got)
			}
		}
	}
}

func TestFromSeedHasAllRoles(t *testing.T) {
	for _, mode := range []matcolor.Mode{matcolor.Light, matcolor.Dark, matcolor.Amoled} {
		th := FromSeed(violetSeed, mode)
		if th.Mode != mode {
			t.Errorf("Mode = %v, want %v", th.Mode, mode)
		}
		if th.Seed != (RGB{103, 80, 164}) {
			t.Errorf("Seed = %v", th.Seed)
		}
		for _, role := range []string{
			"primary", "on_primary", "surface", "surface_bright",
			"surface_container_highest", "outline", "error", "scrim",
		} {
			if _, ok := th.Colors[role]; !ok {
				t.Errorf("%s theme missing role %q", mode, role)
			}
		}
	}
}

func TestFromSeedPostProcessing(t *testing.T) {
	// Compare themed colours against the raw scheme: dimmed roles should
	// sit exactly 2 below the unprocessed channel values.
	raw := matcolor.SchemeFor(matcolor.NewCorePalette(violetSeed), matcolor.Dark)
	th := FromSeed(violetSeed, matcolor.Dark)

	rawPrimary := ToRGB(raw["primary"])
	want := Brighten(rawPrimary, -1)
	if th.Colors["primary"] != want {
		t.Errorf("primary = %v, want dimmed %v", th.Colors["primary"], want)
	}

	// on_primary is not in the dimmed set and passes through untouched.
	rawOnPrimary := ToRGB(raw["on_primary"])
	if got := th.Colors["on_primary"]; got != rawOnPrimary {
		t.Errorf("on_primary = %v, want untouched %v", got, rawOnPrimary)
	}

	// Dark surface_dim is dimmed twice.
	rawDim := ToRGB(raw["surface_dim"])
	wantDim := Brighten(Brighten(rawDim, -1), -1)
	if th.Colors["surface_dim"] != wantDim {
		t.Errorf("surface_dim = %v, want %v", th.Colors["surface_dim"], wantDim)
	}

	// Dark surface_bright derives from surface, so it must stay close to
	// the surface hue family rather than the tone-24 neutral.
	surface := th.Colors["surface"]
	bright := th.Colors["surface_bright"]
	if bright == surface {
		t.Error("surface_bright should be lighter than surface")
	}
	sum := func(c RGB) int { return int(c.R) + int(c.G) + int(c.B) }
	if sum(bright) <= sum(surface) {
		t.Errorf("surface_bright %v not lighter than surface %v", bright, surface)
	}
}

func TestFromSeedLightSurfaceBright(t *testing.T) {
	raw := matcolor.SchemeFor(matcolor.NewCorePalette(violetSeed), matcolor.Light)
	th := FromSeed(violetSeed, matcolor.Light)

	want := Brighten(Brighten(ToRGB(raw["surface_bright"]), -1), 1)
	if th.Colors["surface_bright"] != want {
		t.Errorf("surface_bright = %v, want %v", th.Colors["surface_bright"], want)
	}
}

func TestSeedFromImageSolidColor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		switch i % 4 {
		case 0:
			img.Pix[i] = 103
		case 1:
			img.Pix[i] = 80
		case 2:
			img.Pix[i] = 164
		case 3:
			img.Pix[i] = 255
		}
	}

	seed, err := SeedFromImage(img)
	if err != nil {
		t.Fatalf("SeedFromImage: %v", err)
	}
	if seed != violetSeed {
		t.Errorf("seed = %v, want %v", seed, violetSeed)
	}
}

func TestSeedFromImageTransparentErrors(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	if _, err := SeedFromImage(img); err == nil {
		t.Fatal("expected an error for a fully transparent image")
	}
}

func TestFromImageDeterministic(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 16), G: uint8(y * 16), B: uint8((x + y) * 8), A: 255,
			})
		}
	}

	first, err := FromImage(img, matcolor.Dark)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	for i := 0; i < 3; i++ {
		next, err := FromImage(img, matcolor.Dark)
		if err != nil {
			t.Fatalf("FromImage run %d: %v", i, err)
		}
		if next.Seed != first.Seed {
			t.Fatalf("seed changed between runs: %v vs %v", next.Seed, first.Seed)
		}
	}
}

func TestRenderFlatJSON(t *testing.T) {
	th := FromSeed(violetSeed, matcolor.Dark)
	out, err := th.Render(FormatJSON)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	var flat map[string]string
	if err := json.Unmarshal(out, &flat); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(flat) != len(th.Colors) {
		t.Errorf("flat JSON has %d entries, want %d", len(flat), len(th.Colors))
	}
	for name, hex := range flat {
		if strings.HasPrefix(hex, "#") {
			t.Errorf("role %s hex %q should not carry a leading #", name, hex)
		}
		if len(hex) != 6 {
			t.Errorf("role %s hex %q is not 6 chars", name, hex)
		}
	}
	if flat["primary"] != th.Colors["primary"].HexPlain() {
		t.Errorf("primary = %q, want %q", flat["primary"], th.Colors["primary"].HexPlain())
	}
}

func TestRenderPrettyJSON(t *testing.T) {
	th := FromSeed(violetSeed, matcolor.Light)
	out, err := th.Render(FormatJSONPretty)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	var doc ThemeJSON
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc.Mode != "light" {
		t.Errorf("mode = %q, want light", doc.Mode)
	}
	if doc.Seed.Hex != "#6750a4" {
		t.Errorf("seed hex = %q, want #6750a4", doc.Seed.Hex)
	}
	if len(doc.Colors) != len(th.Colors) {
		t.Errorf("pretty JSON has %d colors, want %d", len(doc.Colors), len(th.Colors))
	}
	if got := doc.Colors["primary"].RGB; got != th.Colors["primary"] {
		t.Errorf("primary rgb = %v, want %v", got, th.Colors["primary"])
	}
}

func TestRenderDeterministic(t *testing.T) {
	th := FromSeed(violetSeed, matcolor.Dark)
	first, err := th.Render(FormatJSON)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for i := 0; i < 3; i++ {
		next, err := th.Render(FormatJSON)
		if err != nil {
			t.Fatalf("Render run %d: %v", i, err)
		}
		if string(next) != string(first) {
			t.Fatal("Render output changed between runs")
		}
	}
}

func TestParseFormat(t *testing.T) {
	if _, err := ParseFormat("json"); err != nil {
		t.Errorf("ParseFormat(json): %v", err)
	}
	if _, err := ParseFormat("json-pretty"); err != nil {
		t.Errorf("ParseFormat(json-pretty): %v", err)
	}
	if _, err := ParseFormat("yaml"); err == nil {
		t.Error("ParseFormat(yaml) should fail")
	}
}

// Guard against the fallback seed leaking into image themes that do have
// visible pixels.
func TestSeedFromImageNotFallbackForColorfulImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 60, B: 40, A: 255})
		}
	}
	seed, err := SeedFromImage(img)
	if err != nil {
		t.Fatalf("SeedFromImage: %v", err)
	}
	if seed == score.FallbackSeed {
		t.Error("seed should come from the image, not the fallback")
	}
}
