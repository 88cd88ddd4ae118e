package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bosshoggett/concord-cli/pkg/models"
)

// Variables to hold flag values
var (
	imgBrightness int
	imgContrast   int
	imgSaturation int
	imgHue        int
	imgSharpness  int
	imgFlip       int
	imgMirror     int
	imgWDR        int
	imgExposure   string
)

var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "Show image settings",
	Run: func(cmd *cobra.Command, args []string) {
		api := newCamera()

		is, err := api.ImageSettings()
		if err != nil {
			fail("fetching image settings: %v", err)
		}

		if jsonOutput {
			printJSON(is)
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintf(w, "Brightness:\t%d\n", is.Brightness)
		fmt.Fprintf(w, "Contrast:\t%d\n", is.Contrast)
		fmt.Fprintf(w, "Saturation:\t%d\n", is.Saturation)
		fmt.Fprintf(w, "Hue:\t%d\n", is.Hue)
		fmt.Fprintf(w, "Sharpness:\t%d\n", is.Sharpness)
		fmt.Fprintf(w, "Flip:\t%s\n", onOff(is.Flip))
		fmt.Fprintf(w, "Mirror:\t%s\n", onOff(is.Mirror))
		fmt.Fprintf(w, "WDR:\t%s\n", onOff(is.WDR))
		fmt.Fprintf(w, "Exposure Mode:\t%s\n", is.ExposureMode)
		w.Flush()
	},
}

var setImageCmd = &cobra.Command{
	Use:   "set-image",
	Short: "Change image settings",
	Example: `  concord-cli -i 192.168.1.10 set-image --brightness 60 --wdr 1`,
	Run: func(cmd *cobra.Command, args []string) {
		api := newCamera()

		var u models.ImageUpdate
		if cmd.Flags().Changed("brightness") {
			u.Brightness = &imgBrightness
		}
		if cmd.Flags().Changed("contrast") {
			u.Contrast = &imgContrast
		}
		if cmd.Flags().Changed("saturation") {
			u.Saturation = &imgSaturation
		}
		if cmd.Flags().Changed("hue") {
			u.Hue = &imgHue
		}
		if cmd.Flags().Changed("sharpness") {
			u.Sharpness = &imgSharpness
		}
		if cmd.Flags().Changed("flip") {
			u.Flip = &imgFlip
		}
		if cmd.Flags().Changed("mirror") {
			u.Mirror = &imgMirror
		}
		if cmd.Flags().Changed("wdr") {
			u.WDR = &imgWDR
		}
		if cmd.Flags().Changed("exposure-mode") {
			u.ExposureMode = &imgExposure
		}

		if u == (models.ImageUpdate{}) {
			fail("no settings provided, see 'concord-cli set-image --help'")
		}

		if err := api.SetImageSettings(u); err != nil {
			fail("applying image settings: %v", err)
		}
		fmt.Println("Image settings applied.")
	},
}

func init() {
	rootCmd.AddCommand(imageCmd)
	rootCmd.AddCommand(setImageCmd)

	setImageCmd.Flags().IntVar(&imgBrightness, "brightness", 50, "Brightness (0-100)")
	setImageCmd.Flags().IntVar(&imgContrast, "contrast", 50, "Contrast (0-100)")
	setImageCmd.Flags().IntVar(&imgSaturation, "saturation", 50, "Saturation (0-100)")
	setImageCmd.Flags().IntVar(&imgHue, "hue", 50, "Hue (0-100)")
	setImageCmd.Flags().IntVar(&imgSharpness, "sharpness", 50, "Sharpness (0-100)")
	setImageCmd.Flags().IntVar(&imgFlip, "flip", 0, "Flip image vertically (0 or 1)")
	setImageCmd.Flags().IntVar(&imgMirror, "mirror", 0, "Mirror image horizontally (0 or 1)")
	setImageCmd.Flags().IntVar(&imgWDR, "wdr", 0, "Wide Dynamic Range (0 or 1)")
	setImageCmd.Flags().StringVar(&imgExposure, "exposure-mode", "", "Exposure mode (auto or manual)")
}
