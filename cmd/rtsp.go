package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bosshoggett/concord-cli/internal/client"
)

// Variables to hold flag values
var (
	rtspChannel int
	rtspNoAuth  bool
)

var rtspURLCmd = &cobra.Command{
	Use:   "rtsp-url",
	Short: "Print the RTSP stream URL",
	Long: `Print the RTSP URL for a stream channel. No network call is made.

The stream itself is known to be broken: it never carries SPS/PPS parameter
sets, so most players cannot decode it. The warning below is printed every
time for that reason.`,
	Run: func(cmd *cobra.Command, args []string) {
		api := newCamera()

		fmt.Println(api.RTSPURL(rtspChannel, !rtspNoAuth))
		fmt.Fprintln(os.Stderr, client.RTSPWarning)
	},
}

func init() {
	rootCmd.AddCommand(rtspURLCmd)

	rtspURLCmd.Flags().IntVar(&rtspChannel, "channel", 1, "Stream channel (1=main 4K, 2=sub 720p)")
	rtspURLCmd.Flags().BoolVar(&rtspNoAuth, "no-auth", false, "Exclude credentials from the URL")
}
