package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "imgcore",
	Short: "Pixel-exact raster image pipeline CLI",
	Long: `imgcore — a CLI shell over the imgcore raster pipeline: resampling,
blur/sharpen, geometric transforms, color operators, and compositing,
applied to decoded image bytes and re-encoded as AVIF/WebP/JPEG/PNG.

Also builds content-addressed variant sets with a JSON manifest and
thumbhash placeholders for responsive-image consumers.`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"imgcore %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[imgcore] "+format+"\n", args...)
	}
}
