package theme

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Format selects a serialization of a theme.
type Format string

const (
	// FormatJSON is a flat JSON object mapping role names to hex values
	// without a leading "#". This is the interchange form scripts consume.
	FormatJSON Format = "json"
	// FormatJSONPretty is an indented JSON document with hex and rgb
	// renditions per role plus seed and mode metadata.
	FormatJSONPretty Format = "json-pretty"
)

// ParseFormat converts a user-supplied string into a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatJSONPretty:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown output format %q (want json or json-pretty)", s)
}

// ColorJSON is one role colour in the pretty output.
type ColorJSON struct {
	Hex string `json:"hex"`
	RGB RGB    `json:"rgb"`
}

// ThemeJSON is the pretty output document.
type ThemeJSON struct {
	Seed   ColorJSON            `json:"seed"`
	Mode   string               `json:"mode"`
	Colors map[string]ColorJSON `json:"colors"`
}

// Render serializes the theme in the given format. JSON object keys are
// emitted sorted, so output is deterministic for a given seed and mode.
func (t *Theme) Render(format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		flat := make(map[string]string, len(t.Colors))
		for name, c := range t.Colors {
			flat[name] = c.HexPlain()
		}
		return json.Marshal(flat)
	case FormatJSONPretty:
		doc := ThemeJSON{
			Seed:   ColorJSON{Hex: t.Seed.Hex(), RGB: t.Seed},
			Mode:   string(t.Mode),
			Colors: make(map[string]ColorJSON, len(t.Colors)),
		}
		for name, c := range t.Colors {
			doc.Colors[name] = ColorJSON{Hex: c.Hex(), RGB: c}
		}
		return json.MarshalIndent(doc, "", "  ")
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// RoleNames returns every role in the theme, sorted.
func (t *Theme) RoleNames() []string {
	names := make([]string, 0, len(t.Colors))
	for name := range t.Colors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
