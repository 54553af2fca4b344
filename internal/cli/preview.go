package cli

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/matugo/internal/theme"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	swatchWidth  = 8
)

// colourSwatch returns a solid ANSI truecolor block for a colour.
func colourSwatch(c theme.RGB) string {
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", swatchWidth) + ansiReset
}

// renderPreview renders one line per role. On a terminal each line gets
// an ANSI swatch ahead of the role name and hex value; without one the
// roles are laid out as a plain table instead, since escape sequences
// would throw the column math off anyway.
func renderPreview(th *theme.Theme, colour bool) string {
	names := th.RoleNames()

	var b strings.Builder
	fmt.Fprintf(&b, "Seed: %s  Mode: %s\n", th.Seed.Hex(), th.Mode)

	if !colour {
		table := NewTable([]string{"Role", "Hex", "RGB"})
		for _, name := range names {
			c := th.Colors[name]
			table.AddRow([]string{name, c.Hex(), c.String()})
		}
		b.WriteString(table.Render())
		return b.String()
	}

	width := 0
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}
	for _, name := range names {
		c := th.Colors[name]
		b.WriteString(colourSwatch(c))
		b.WriteString("  ")
		fmt.Fprintf(&b, "%-*s  %s\n", width, name, c.Hex())
	}
	return b.String()
}
