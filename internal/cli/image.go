package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/matugo/internal/imageio"
	"github.com/jmylchreest/matugo/internal/theme"
	"github.com/jmylchreest/matugo/internal/util/imagecache"
)

var imageNoCache bool

// imageCmd represents the image command
var imageCmd = &cobra.Command{
	Use:   "image <path>",
	Short: "Generate a colour scheme from a wallpaper image",
	Long: `Generate a Material Design 3 colour scheme from a wallpaper image.

The image is downscaled, quantized into representative colours and the most
theme-worthy colour is picked as the scheme seed. The path may be a local
file, a directory (a random image inside it is used) or an HTTP(S) URL.
Remote images are cached on disk between runs.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Dark scheme (default) from a wallpaper
  matugo image wallpaper.jpg

  # Light scheme written to a file
  matugo image --mode light --output scheme.json wallpaper.png

  # Pure-black scheme for OLED displays, with terminal swatches
  matugo image --mode amoled --preview wallpaper.jpg

  # Random wallpaper from a directory
  matugo image ~/Pictures/wallpapers

  # Remote wallpaper
  matugo image https://example.com/wallpaper.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runImage,
}

func init() {
	addOutputFlags(imageCmd)
	imageCmd.Flags().BoolVar(&imageNoCache, "no-cache", false, "fetch remote images directly instead of using the on-disk cache")
}

// runImage executes the image command.
func runImage(cmd *cobra.Command, args []string) error {
	imagePath := args[0]
	logger := newLogger(cmd)
	logFlags(cmd, logger)

	if err := imageio.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	mode, format, err := parseOutputFlags()
	if err != nil {
		return err
	}

	// Remote images go through the cache unless disabled.
	if strings.HasPrefix(imagePath, "http://") || strings.HasPrefix(imagePath, "https://") {
		if !imageNoCache {
			logger.Debug("caching remote image", "url", imagePath)
			cached, err := imagecache.DownloadAndCache(context.Background(), imagePath, imagecache.CacheOptions{})
			if err != nil {
				return fmt.Errorf("failed to cache remote image: %w", err)
			}
			logger.Debug("using cached image", "path", cached)
			imagePath = cached
		}
	} else {
		// Directories resolve to a random contained image.
		resolved, err := imageio.ResolveImagePath(imagePath)
		if err != nil {
			return fmt.Errorf("failed to resolve image path: %w", err)
		}
		if resolved != imagePath {
			logger.Debug("selected image from directory", "path", resolved)
		}
		imagePath = resolved
	}

	// Header-only decode, so the size is logged before the full load.
	if w, h, err := imageio.GetImageDimensions(imagePath); err == nil {
		logger.Debug("loading image", "path", imagePath, "width", w, "height", h)
	}

	loader := imageio.NewSmartLoader()
	img, err := loader.Load(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	th, err := theme.FromImage(img, mode)
	if err != nil {
		return fmt.Errorf("failed to generate theme: %w", err)
	}
	logger.Debug("theme generated", "seed", th.Seed.Hex(), "mode", string(th.Mode))

	return emitTheme(cmd, th, format)
}
