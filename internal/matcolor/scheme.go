package matcolor

import (
	"fmt"
	"image/color"
	"sort"
)

// Mode selects which tone column of the role table a scheme is built from.
type Mode string

const (
	// Light is the standard light scheme.
	Light Mode = "light"
	// Dark is the standard dark scheme.
	Dark Mode = "dark"
	// Amoled is the dark scheme with the surface family pinned to pure
	// black and near-black tones for OLED displays.
	Amoled Mode = "amoled"
)

// ParseMode converts a user-supplied string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case Light, Dark, Amoled:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown scheme mode %q (want light, dark or amoled)", s)
}

// paletteKey names one of the six palettes in a CorePalette.
type paletteKey int

const (
	primary paletteKey = iota
	secondary
	tertiary
	neutral
	neutralVariant
	errorPalette
)

func (p *CorePalette) palette(key paletteKey) *TonalPalette {
	switch key {
	case primary:
		return p.Primary
	case secondary:
		return p.Secondary
	case tertiary:
		return p.Tertiary
	case neutral:
		return p.Neutral
	case neutralVariant:
		return p.NeutralVariant
	default:
		return p.Error
	}
}

// role is one semantic colour role: the palette it samples and the tone
// used per mode. Amoled tones of -1 mean "same as dark".
type role struct {
	name   string
	key    paletteKey
	light  int
	dark   int
	amoled int
}

// roles is the Material Design 3 role table. Order here fixes iteration
// order for [Scheme.Roles].
var roles = []role{
	{"primary", primary, 40, 80, -1},
	{"on_primary", primary, 100, 20, -1},
	{"primary_container", primary, 90, 30, -1},
	{"on_primary_container", primary, 10, 90, -1},
	{"inverse_primary", primary, 80, 40, -1},
	{"primary_fixed", primary, 90, 90, -1},
	{"primary_fixed_dim", primary, 80, 80, -1},
	{"on_primary_fixed", primary, 10, 10, -1},
	{"on_primary_fixed_variant", primary, 30, 30, -1},

	{"secondary", secondary, 40, 80, -1},
	{"on_secondary", secondary, 100, 20, -1},
	{"secondary_container", secondary, 90, 30, -1},
	{"on_secondary_container", secondary, 10, 90, -1},
	{"secondary_fixed", secondary, 90, 90, -1},
	{"secondary_fixed_dim", secondary, 80, 80, -1},
	{"on_secondary_fixed", secondary, 10, 10, -1},
	{"on_secondary_fixed_variant", secondary, 30, 30, -1},

	{"tertiary", tertiary, 40, 80, -1},
	{"on_tertiary", tertiary, 100, 20, -1},
	{"tertiary_container", tertiary, 90, 30, -1},
	{"on_tertiary_container", tertiary, 10, 90, -1},
	{"tertiary_fixed", tertiary, 90, 90, -1},
	{"tertiary_fixed_dim", tertiary, 80, 80, -1},
	{"on_tertiary_fixed", tertiary, 10, 10, -1},
	{"on_tertiary_fixed_variant", tertiary, 30, 30, -1},

	{"error", errorPalette, 40, 80, -1},
	{"on_error", errorPalette, 100, 20, -1},
	{"error_container", errorPalette, 90, 30, -1},
	{"on_error_container", errorPalette, 10, 90, -1},

	{"background", neutral, 99, 10, 0},
	{"on_background", neutral, 10, 90, -1},
	{"surface", neutral, 98, 6, 0},
	{"on_surface", neutral, 10, 90, -1},
	{"surface_variant", neutralVariant, 90, 30, -1},
	{"on_surface_variant", neutralVariant, 30, 80, -1},
	{"surface_dim", neutral, 87, 6, 0},
	{"surface_bright", neutral, 98, 24, 18},
	{"surface_container_lowest", neutral, 100, 4, 0},
	{"surface_container_low", neutral, 96, 10, 4},
	{"surface_container", neutral, 94, 12, 8},
	{"surface_container_high", neutral, 92, 17, 12},
	{"surface_container_highest", neutral, 90, 22, 16},
	{"inverse_surface", neutral, 20, 90, -1},
	{"inverse_on_surface", neutral, 95, 20, -1},

	{"outline", neutralVariant, 50, 60, -1},
	{"outline_variant", neutralVariant, 80, 30, -1},
	{"shadow", neutral, 0, 0, -1},
	{"scrim", neutral, 0, 0, -1},
}

// Scheme maps Material role names to resolved colours for one mode.
type Scheme map[string]color.RGBA

// RoleNames returns every role name the scheme carries, sorted.
func (s Scheme) RoleNames() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SchemeFor resolves every role in the table against the given palette
// for one mode.
func SchemeFor(p *CorePalette, mode Mode) Scheme {
	s := make(Scheme, len(roles))
	for _, r := range roles {
		tone := r.light
		switch mode {
		case Dark:
			tone = r.dark
		case Amoled:
			tone = r.dark
			if r.amoled >= 0 {
				tone = r.amoled
			}
		}
		s[r.name] = p.palette(r.key).Tone(tone)
	}
	return s
}

// Schemes bundles the light and dark renditions of one seed.
type Schemes struct {
	Light Scheme
	Dark  Scheme
}

// NewSchemes builds light and dark schemes from a seed colour.
func NewSchemes(seed color.Color) *Schemes {
	p := NewCorePalette(seed)
	return &Schemes{
		Light: SchemeFor(p, Light),
		Dark:  SchemeFor(p, Dark),
	}
}
