package cmd

import (
	"fmt"
	"os"

	"github.com/AnyUserName/imgcore/colorop"
	"github.com/AnyUserName/imgcore/internal/codec"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe <image>",
	Short: "Print dimensions, alpha, and dominant color for a single image",
	Args:  cobra.ExactArgs(1),
	RunE:  runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

func runDescribe(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	buf, format, err := codec.Decode(data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", args[0], err)
	}

	dom := colorop.DominantColor(buf)
	// go-colorful wants sRGB channels in [0,1]; used here for the Hcl
	// report, the one place this CLI needs perceptual color math
	// rather than the core's own pixel-exact HSL (spec §4.5 keeps
	// rgbToHsl/hslToRgb stdlib-only for rounding control).
	cf := colorful.Color{
		R: float64(dom.R) / 255,
		G: float64(dom.G) / 255,
		B: float64(dom.B) / 255,
	}
	h, c, l := cf.Hcl()

	fmt.Printf("  format:   %s\n", format)
	fmt.Printf("  size:     %dx%d\n", buf.Width, buf.Height)
	fmt.Printf("  alpha:    %v\n", buf.HasAlpha)
	fmt.Printf("  dominant: %s  (hcl h=%.1f c=%.3f l=%.3f)\n", cf.Hex(), h, c, l)

	return nil
}
