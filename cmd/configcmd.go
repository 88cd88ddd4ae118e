package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bosshoggett/concord-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the saved connection profile",
}

var configSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the current connection flags to the config file",
	Long: `Persist --ip, --username, --password and --port to the config file
so later invocations can omit them. Explicit flags always win over the
saved profile.`,
	Example: `  concord-cli -i 192.168.1.10 -p secret config save`,
	Run: func(cmd *cobra.Command, args []string) {
		if cameraIP == "" {
			fail("camera IP required (--ip)")
		}

		viper.Set("ip", cameraIP)
		viper.Set("username", username)
		viper.Set("password", password)
		viper.Set("port", httpPort)

		if err := config.SaveProfile(); err != nil {
			fail("saving config file: %v", err)
		}
		fmt.Println("Connection profile saved. You can now run commands without connection flags.")
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSaveCmd)
}
