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
	audioEnabled    int
	audioCodec      string
	audioBitrate    int
	audioSampleRate int
	audioVolume     int
)

var audioCmd = &cobra.Command{
	Use:   "audio",
	Short: "Show audio settings",
	Run: func(cmd *cobra.Command, args []string) {
		api := newCamera()

		as, err := api.AudioSettings()
		if err != nil {
			fail("fetching audio settings: %v", err)
		}

		if jsonOutput {
			printJSON(as)
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintf(w, "Enabled:\t%s\n", onOff(as.Enabled))
		fmt.Fprintf(w, "Codec:\t%s\n", as.Codec)
		fmt.Fprintf(w, "Bitrate:\t%d kbps\n", as.Bitrate)
		fmt.Fprintf(w, "Sample Rate:\t%d Hz\n", as.SampleRate)
		fmt.Fprintf(w, "Volume:\t%d\n", as.Volume)
		w.Flush()
	},
}

var setAudioCmd = &cobra.Command{
	Use:   "set-audio",
	Short: "Change audio settings",
	Example: `  concord-cli -i 192.168.1.10 set-audio --enabled 1 --volume 80`,
	Run: func(cmd *cobra.Command, args []string) {
		api := newCamera()

		var u models.AudioUpdate
		if cmd.Flags().Changed("enabled") {
			u.Enabled = &audioEnabled
		}
		if cmd.Flags().Changed("codec") {
			u.Codec = &audioCodec
		}
		if cmd.Flags().Changed("bitrate") {
			u.Bitrate = &audioBitrate
		}
		if cmd.Flags().Changed("sample-rate") {
			u.SampleRate = &audioSampleRate
		}
		if cmd.Flags().Changed("volume") {
			u.Volume = &audioVolume
		}

		if u == (models.AudioUpdate{}) {
			fail("no settings provided, see 'concord-cli set-audio --help'")
		}

		if err := api.SetAudioSettings(u); err != nil {
			fail("applying audio settings: %v", err)
		}
		fmt.Println("Audio settings applied.")
	},
}

func init() {
	rootCmd.AddCommand(audioCmd)
	rootCmd.AddCommand(setAudioCmd)

	setAudioCmd.Flags().IntVar(&audioEnabled, "enabled", 0, "Enable audio (0 or 1)")
	setAudioCmd.Flags().StringVar(&audioCodec, "codec", "", "Audio codec (G711A, G711U, AAC)")
	setAudioCmd.Flags().IntVar(&audioBitrate, "bitrate", 0, "Bitrate in kbps")
	setAudioCmd.Flags().IntVar(&audioSampleRate, "sample-rate", 0, "Sample rate in Hz")
	setAudioCmd.Flags().IntVar(&audioVolume, "volume", 50, "Volume (0-100)")
}
