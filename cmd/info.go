package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show system information",
	Long:  `Fetch model, hardware/firmware version, serial number and uptime.`,
	Run: func(cmd *cobra.Command, args []string) {
		api := newCamera()

		info, err := api.SystemInfo()
		if err != nil {
			fail("fetching system info: %v", err)
		}

		if jsonOutput {
			printJSON(info)
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintf(w, "Model:\t%s\n", info.Model)
		fmt.Fprintf(w, "Hardware Version:\t%s\n", info.HardwareVersion)
		fmt.Fprintf(w, "Firmware Version:\t%s\n", info.FirmwareVersion)
		fmt.Fprintf(w, "Serial Number:\t%s\n", info.SerialNumber)
		fmt.Fprintf(w, "Uptime:\t%s\n", formatUptime(info.Uptime))
		fmt.Fprintf(w, "System Time:\t%s\n", info.SystemTime)
		w.Flush()
	},
}

// formatUptime renders seconds-since-boot the way uptime(1) would.
func formatUptime(seconds int64) string {
	d := time.Duration(seconds) * time.Second
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
