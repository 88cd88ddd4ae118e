package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Variables to hold flag values
var (
	snapChannel int
	snapOutput  string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Capture a JPEG snapshot",
	Long: `Capture a JPEG frame over HTTP. This is the reliable way to get an
image out of these cameras; the RTSP stream is broken. Without --output the
raw JPEG bytes go to stdout.`,
	Example: `  concord-cli -i 192.168.1.10 snapshot -o snapshot.jpg
  concord-cli -i 192.168.1.10 snapshot --channel 1 > sub.jpg`,
	Run: func(cmd *cobra.Command, args []string) {
		api := newCamera()

		if snapOutput == "" {
			data, err := api.Snapshot(snapChannel)
			if err != nil {
				fail("capturing snapshot: %v", err)
			}
			if _, err := os.Stdout.Write(data); err != nil {
				fail("writing snapshot to stdout: %v", err)
			}
			return
		}

		if err := api.SaveSnapshot(snapChannel, snapOutput); err != nil {
			fail("capturing snapshot: %v", err)
		}
		fmt.Printf("Snapshot saved to %s\n", snapOutput)
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)

	snapshotCmd.Flags().IntVar(&snapChannel, "channel", 0, "Channel (0=main, 1=sub)")
	snapshotCmd.Flags().StringVarP(&snapOutput, "output", "o", "", "Output filename (default: raw bytes to stdout)")
}
