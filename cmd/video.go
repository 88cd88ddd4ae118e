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
	videoChannel    int
	videoCodec      string
	videoResolution string
	videoFPS        int
	videoBitrate    int
	videoBRControl  string
	videoQuality    string
	videoGOP        int
	setVideoChannel int
)

var videoCmd = &cobra.Command{
	Use:   "video",
	Short: "Show video stream settings",
	Run: func(cmd *cobra.Command, args []string) {
		api := newCamera()

		vs, err := api.VideoStream(videoChannel)
		if err != nil {
			fail("fetching video settings: %v", err)
		}

		if jsonOutput {
			printJSON(vs)
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintf(w, "Channel:\t%d\n", vs.Channel)
		fmt.Fprintf(w, "Codec:\t%s\n", vs.Codec)
		fmt.Fprintf(w, "Resolution:\t%s\n", vs.Resolution)
		fmt.Fprintf(w, "FPS:\t%d\n", vs.FPS)
		fmt.Fprintf(w, "Bitrate:\t%d kbps\n", vs.Bitrate)
		fmt.Fprintf(w, "Bitrate Control:\t%s\n", vs.BitrateControl)
		fmt.Fprintf(w, "Quality:\t%s\n", vs.Quality)
		fmt.Fprintf(w, "GOP:\t%d\n", vs.GOP)
		w.Flush()
	},
}

var setVideoCmd = &cobra.Command{
	Use:   "set-video",
	Short: "Change video stream settings",
	Long: `Change encode settings for one channel. Only the flags you pass
are sent; the camera keeps the rest.`,
	Example: `  concord-cli -i 192.168.1.10 set-video --bitrate 4096 --fps 25
  concord-cli -i 192.168.1.10 set-video --channel 1 --resolution 1280x720`,
	Run: func(cmd *cobra.Command, args []string) {
		api := newCamera()

		u := models.VideoStreamUpdate{Channel: setVideoChannel}
		if cmd.Flags().Changed("codec") {
			u.Codec = &videoCodec
		}
		if cmd.Flags().Changed("resolution") {
			u.Resolution = &videoResolution
		}
		if cmd.Flags().Changed("fps") {
			u.FPS = &videoFPS
		}
		if cmd.Flags().Changed("bitrate") {
			u.Bitrate = &videoBitrate
		}
		if cmd.Flags().Changed("bitrate-control") {
			u.BitrateControl = &videoBRControl
		}
		if cmd.Flags().Changed("quality") {
			u.Quality = &videoQuality
		}
		if cmd.Flags().Changed("gop") {
			u.GOP = &videoGOP
		}

		if u == (models.VideoStreamUpdate{Channel: setVideoChannel}) {
			fail("no settings provided, see 'concord-cli set-video --help'")
		}

		if err := api.SetVideoStream(u); err != nil {
			fail("applying video settings: %v", err)
		}
		fmt.Printf("Video settings applied to channel %d.\n", setVideoChannel)
	},
}

func init() {
	rootCmd.AddCommand(videoCmd)
	rootCmd.AddCommand(setVideoCmd)

	videoCmd.Flags().IntVar(&videoChannel, "channel", 0, "Channel (0=main, 1=sub)")

	setVideoCmd.Flags().IntVar(&setVideoChannel, "channel", 0, "Channel (0=main, 1=sub)")
	setVideoCmd.Flags().StringVar(&videoCodec, "codec", "", "Video codec (H264 or H265)")
	setVideoCmd.Flags().StringVar(&videoResolution, "resolution", "", "Resolution (e.g. 3840x2160)")
	setVideoCmd.Flags().IntVar(&videoFPS, "fps", 0, "Frames per second")
	setVideoCmd.Flags().IntVar(&videoBitrate, "bitrate", 0, "Bitrate in kbps")
	setVideoCmd.Flags().StringVar(&videoBRControl, "bitrate-control", "", "Bitrate control mode (CBR or VBR)")
	setVideoCmd.Flags().StringVar(&videoQuality, "quality", "", "Quality preset (low, medium, high)")
	setVideoCmd.Flags().IntVar(&videoGOP, "gop", 0, "Group of pictures size")
}
