// Package cli provides the command-line interface for matugo.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/matugo/internal/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "matugo",
	Short: "A Material Design 3 colour scheme generator",
	Long: `Matugo generates Material Design 3 colour schemes from a seed colour or a
wallpaper image.

Point it at a wallpaper (file, directory or URL) and it extracts the dominant
theme-worthy colour, expands it into tonal palettes and emits the full set of
Material colour roles as JSON, ready for templating into application configs.`,
	Version:      version.Short(),
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(imageCmd)
	rootCmd.AddCommand(colorCmd)
}

// newLogger returns the command logger, writing to stderr at Debug when
// --verbose is set and discarding everything otherwise.
func newLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "matugo",
			Output: os.Stderr,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "matugo",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}

// logFlags records every explicitly set flag at debug level.
func logFlags(cmd *cobra.Command, logger hclog.Logger) {
	cmd.Flags().Visit(func(f *pflag.Flag) {
		logger.Debug("flag set", "name", f.Name, "value", f.Value.String())
	})
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
