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
	motionEnabled     int
	motionSensitivity int
	motionRegions     []string
)

var motionCmd = &cobra.Command{
	Use:   "motion",
	Short: "Show motion detection settings",
	Run: func(cmd *cobra.Command, args []string) {
		api := newCamera()

		md, err := api.MotionDetection()
		if err != nil {
			fail("fetching motion detection settings: %v", err)
		}

		if jsonOutput {
			printJSON(md)
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintf(w, "Enabled:\t%s\n", onOff(md.Enabled))
		fmt.Fprintf(w, "Sensitivity:\t%d\n", md.Sensitivity)
		fmt.Fprintf(w, "Regions:\t%d configured\n", len(md.Regions))
		for i, r := range md.Regions {
			fmt.Fprintf(w, "  Region %d:\t%d,%d %dx%d\n", i, r.X, r.Y, r.Width, r.Height)
		}
		w.Flush()
	},
}

var setMotionCmd = &cobra.Command{
	Use:   "set-motion",
	Short: "Change motion detection settings",
	Long: `Change motion detection settings. Passing --region (repeatable,
format x,y,WxH) replaces the camera's whole region set.`,
	Example: `  concord-cli -i 192.168.1.10 set-motion --enabled 1 --sensitivity 80
  concord-cli -i 192.168.1.10 set-motion --region 0,0,1920x1080 --region 1920,0,1920x1080`,
	Run: func(cmd *cobra.Command, args []string) {
		api := newCamera()

		var u models.MotionUpdate
		if cmd.Flags().Changed("enabled") {
			u.Enabled = &motionEnabled
		}
		if cmd.Flags().Changed("sensitivity") {
			u.Sensitivity = &motionSensitivity
		}
		if cmd.Flags().Changed("region") {
			regions, err := parseRegions(motionRegions)
			if err != nil {
				fail("%v", err)
			}
			u.Regions = regions
		}

		if u.Enabled == nil && u.Sensitivity == nil && u.Regions == nil {
			fail("no settings provided, see 'concord-cli set-motion --help'")
		}

		if err := api.SetMotionDetection(u); err != nil {
			fail("applying motion detection settings: %v", err)
		}
		fmt.Println("Motion detection settings applied.")
	},
}

// parseRegion parses "x,y,WxH" into a detection rectangle.
func parseRegion(s string) (models.MotionRegion, error) {
	var r models.MotionRegion
	n, err := fmt.Sscanf(s, "%d,%d,%dx%d", &r.X, &r.Y, &r.Width, &r.Height)
	if err != nil || n != 4 {
		return models.MotionRegion{}, fmt.Errorf("invalid region %q (expected x,y,WxH, e.g. 0,0,1920x1080)", s)
	}
	if r.Width <= 0 || r.Height <= 0 {
		return models.MotionRegion{}, fmt.Errorf("invalid region %q: width and height must be positive", s)
	}
	return r, nil
}

func parseRegions(specs []string) ([]models.MotionRegion, error) {
	regions := make([]models.MotionRegion, 0, len(specs))
	for _, s := range specs {
		r, err := parseRegion(s)
		if err != nil {
			return nil, err
		}
		regions = append(regions, r)
	}
	return regions, nil
}

func init() {
	rootCmd.AddCommand(motionCmd)
	rootCmd.AddCommand(setMotionCmd)

	setMotionCmd.Flags().IntVar(&motionEnabled, "enabled", 0, "Enable motion detection (0 or 1)")
	setMotionCmd.Flags().IntVar(&motionSensitivity, "sensitivity", 50, "Sensitivity (0-100)")
	setMotionCmd.Flags().StringArrayVar(&motionRegions, "region", nil, "Detection region x,y,WxH (repeatable, replaces all regions)")
}
