package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/matugo/internal/matcolor"
	"github.com/jmylchreest/matugo/internal/theme"
)

var (
	// Shared output flags for the scheme-generating commands
	outputMode    string
	outputFormat  string
	outputFile    string
	outputPreview bool
)

// addOutputFlags registers the scheme output flags on a command.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputMode, "mode", "m", "dark", "scheme mode (light, dark, amoled)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, json-pretty)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&outputPreview, "preview", false, "show colour swatches in the terminal")
}

// parseOutputFlags validates the mode and format flag values.
func parseOutputFlags() (matcolor.Mode, theme.Format, error) {
	mode, err := matcolor.ParseMode(outputMode)
	if err != nil {
		return "", "", err
	}
	format, err := theme.ParseFormat(outputFormat)
	if err != nil {
		return "", "", err
	}
	return mode, format, nil
}

// emitTheme serializes the theme and writes it to the output file or
// stdout. With --preview, swatches go to stderr so the JSON on stdout
// stays pipeable.
func emitTheme(cmd *cobra.Command, th *theme.Theme, format theme.Format) error {
	out, err := th.Render(format)
	if err != nil {
		return err
	}

	if outputPreview {
		fmt.Fprint(os.Stderr, renderPreview(th, term.IsTerminal(int(os.Stderr.Fd()))))
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, append(out, '\n'), 0o644); err != nil { // #nosec G306 - Scheme files need standard read permissions
			return fmt.Errorf("failed to write output file: %w", err)
		}
		quiet, _ := cmd.Flags().GetBool("quiet")
		if !quiet {
			fmt.Fprintf(os.Stderr, "Wrote %s scheme to %s\n", th.Mode, outputFile)
		}
		return nil
	}

	fmt.Println(string(out))
	return nil
}
