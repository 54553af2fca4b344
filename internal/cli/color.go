package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/matugo/internal/theme"
)

// colorCmd represents the color command
var colorCmd = &cobra.Command{
	Use:   "color <hex>",
	Short: "Generate a colour scheme from a seed colour",
	Long: `Generate a Material Design 3 colour scheme from a single seed colour.

The seed is given as a hex colour, with or without a leading '#'.

Examples:
  # Dark scheme (default) from a hex colour
  matugo color '#6750a4'

  # Light scheme
  matugo color --mode light 6750a4

  # Print swatches alongside the JSON
  matugo color --preview '#1b6ef3'`,
	Args: cobra.ExactArgs(1),
	RunE: runColor,
}

func init() {
	addOutputFlags(colorCmd)
}

// runColor executes the color command.
func runColor(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	logFlags(cmd, logger)

	seed, err := theme.ParseHex(args[0])
	if err != nil {
		return err
	}

	mode, format, err := parseOutputFlags()
	if err != nil {
		return err
	}

	th := theme.FromSeed(seed.AsRGBA(), mode)
	logger.Debug("theme generated", "seed", th.Seed.Hex(), "mode", string(th.Mode))

	if err := emitTheme(cmd, th, format); err != nil {
		return fmt.Errorf("failed to emit theme: %w", err)
	}
	return nil
}
