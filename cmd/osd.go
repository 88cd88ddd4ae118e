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
	osdShowTime     int
	osdTimePosition string
	osdTimeFormat   string
	osdCameraName   string
	osdShowName     int
	osdNamePosition string
)

var osdCmd = &cobra.Command{
	Use:   "osd",
	Short: "Show OSD (on-screen display) settings",
	Run: func(cmd *cobra.Command, args []string) {
		api := newCamera()

		osd, err := api.OSDSettings()
		if err != nil {
			fail("fetching OSD settings: %v", err)
		}

		if jsonOutput {
			printJSON(osd)
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintf(w, "Time Display:\t%s\n", onOff(osd.TimeEnabled))
		fmt.Fprintf(w, "Time Position:\t%s\n", osd.TimePosition)
		fmt.Fprintf(w, "Time Format:\t%s\n", osd.TimeFormat)
		fmt.Fprintf(w, "Camera Name:\t%s\n", osd.CameraName)
		fmt.Fprintf(w, "Name Display:\t%s\n", onOff(osd.CameraNameEnabled))
		fmt.Fprintf(w, "Name Position:\t%s\n", osd.CameraNamePosition)
		w.Flush()
	},
}

var setOSDCmd = &cobra.Command{
	Use:   "set-osd",
	Short: "Change OSD settings",
	Example: `  concord-cli -i 192.168.1.10 set-osd --camera-name "Front Door" --show-name 1`,
	Run: func(cmd *cobra.Command, args []string) {
		api := newCamera()

		var u models.OSDUpdate
		if cmd.Flags().Changed("show-time") {
			u.TimeEnabled = &osdShowTime
		}
		if cmd.Flags().Changed("time-position") {
			u.TimePosition = &osdTimePosition
		}
		if cmd.Flags().Changed("time-format") {
			u.TimeFormat = &osdTimeFormat
		}
		if cmd.Flags().Changed("camera-name") {
			u.CameraName = &osdCameraName
		}
		if cmd.Flags().Changed("show-name") {
			u.CameraNameEnabled = &osdShowName
		}
		if cmd.Flags().Changed("name-position") {
			u.CameraNamePosition = &osdNamePosition
		}

		if u == (models.OSDUpdate{}) {
			fail("no settings provided, see 'concord-cli set-osd --help'")
		}

		if err := api.SetOSDSettings(u); err != nil {
			fail("applying OSD settings: %v", err)
		}
		fmt.Println("OSD settings applied.")
	},
}

func init() {
	rootCmd.AddCommand(osdCmd)
	rootCmd.AddCommand(setOSDCmd)

	setOSDCmd.Flags().IntVar(&osdShowTime, "show-time", 0, "Show timestamp overlay (0 or 1)")
	setOSDCmd.Flags().StringVar(&osdTimePosition, "time-position", "", "Timestamp position (top_left, top_right, bottom_left, bottom_right)")
	setOSDCmd.Flags().StringVar(&osdTimeFormat, "time-format", "", "Timestamp format string")
	setOSDCmd.Flags().StringVar(&osdCameraName, "camera-name", "", "Camera name text")
	setOSDCmd.Flags().IntVar(&osdShowName, "show-name", 0, "Show camera name overlay (0 or 1)")
	setOSDCmd.Flags().StringVar(&osdNamePosition, "name-position", "", "Camera name position")
}
