package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// Variables to hold flag values
var (
	rebootForce bool
	resetForce  bool
)

var rebootCmd = &cobra.Command{
	Use:   "reboot",
	Short: "Reboot the camera",
	Run: func(cmd *cobra.Command, args []string) {
		api := newCamera()

		if !rebootForce {
			fmt.Print("Are you sure you want to reboot the camera? (yes/no): ")
			if !confirm("yes") {
				fmt.Println("Reboot cancelled.")
				return
			}
		}

		if err := api.Reboot(); err != nil {
			fail("rebooting camera: %v", err)
		}
		fmt.Println("Camera is rebooting. It will be unreachable for a minute or two.")
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Factory reset the camera (erases ALL settings)",
	Long: `Perform a factory reset. All settings including network
configuration and credentials are erased; the camera comes back on DHCP
with the default admin account.`,
	Run: func(cmd *cobra.Command, args []string) {
		api := newCamera()

		if !resetForce {
			fmt.Println("WARNING: this erases ALL camera settings and returns to factory defaults!")
			fmt.Print("Type 'FACTORY RESET' to confirm: ")
			if !confirm("FACTORY RESET") {
				fmt.Println("Factory reset cancelled.")
				return
			}
		}

		if err := api.FactoryReset(); err != nil {
			fail("resetting camera: %v", err)
		}
		fmt.Println("Factory reset started. The camera will come back on DHCP with admin/empty credentials.")
	},
}

// confirm reads one line from stdin and compares it to the expected phrase.
// The reboot prompt is case-insensitive, the reset phrase is not.
func confirm(expected string) bool {
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	line = strings.TrimSpace(line)
	if expected == "yes" {
		return strings.EqualFold(line, expected)
	}
	return line == expected
}

func init() {
	rootCmd.AddCommand(rebootCmd)
	rootCmd.AddCommand(resetCmd)

	rebootCmd.Flags().BoolVar(&rebootForce, "force", false, "Skip the confirmation prompt")
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "Skip the confirmation prompt")
}
