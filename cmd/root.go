package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bosshoggett/concord-cli/internal/auth"
	"github.com/bosshoggett/concord-cli/internal/client"
	"github.com/bosshoggett/concord-cli/internal/config"
)

// Variables to hold global flag values
var (
	cfgFile    string
	cameraIP   string
	username   string
	password   string
	httpPort   int
	timeoutSec int
	authMode   string
	jsonOutput bool
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "concord-cli",
	Short: "Configure Concord / Juan Optical IP cameras over their HTTP API",
	Long: `Read and change settings on Concord CNC81BA-V4 and other Guangzhou
Juan Optical 4K POE cameras through their vendor HTTP API: system info,
network, video, image, motion detection, OSD, audio and snapshots.

Note: these cameras ship a broken RTSP implementation (missing SPS/PPS
headers). This tool configures the camera and captures snapshots; it cannot
fix the stream.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() { config.Init(cfgFile) })

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.concord-cli.yaml)")
	rootCmd.PersistentFlags().StringVarP(&cameraIP, "ip", "i", "", "Camera IP address or hostname")
	rootCmd.PersistentFlags().StringVarP(&username, "username", "u", "admin", "Username (factory default: admin)")
	rootCmd.PersistentFlags().StringVarP(&password, "password", "p", "", "Password (factory default: empty)")
	rootCmd.PersistentFlags().IntVar(&httpPort, "port", 80, "HTTP port")
	rootCmd.PersistentFlags().IntVar(&timeoutSec, "timeout", 10, "Request timeout in seconds")
	rootCmd.PersistentFlags().StringVar(&authMode, "auth", "digest", "Authentication scheme: digest or basic")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging of camera requests")
}

// newCamera builds a client from flags, falling back to the saved profile
// in the config file. Exits when no camera address is known.
func newCamera() *client.Client {
	host := cameraIP
	if host == "" {
		host = viper.GetString("ip")
	}
	if host == "" {
		fail("camera IP required (use --ip or 'concord-cli config save')")
	}

	user := username
	if !rootCmd.PersistentFlags().Changed("username") && viper.IsSet("username") {
		user = viper.GetString("username")
	}
	pass := password
	if !rootCmd.PersistentFlags().Changed("password") && viper.IsSet("password") {
		pass = viper.GetString("password")
	}
	port := httpPort
	if !rootCmd.PersistentFlags().Changed("port") && viper.IsSet("port") {
		port = viper.GetInt("port")
	}

	mode, err := auth.ParseMode(authMode)
	if err != nil {
		fail("%v", err)
	}

	logger := zerolog.Nop()
	if verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	}

	return client.New(client.Config{
		Host:     host,
		Port:     port,
		Username: user,
		Password: pass,
		Timeout:  time.Duration(timeoutSec) * time.Second,
		AuthMode: mode,
		Logger:   logger,
	})
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fail("encoding JSON: %v", err)
	}
}

// fail prints an error to stderr and exits 1.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func onOff(v int) string {
	if v != 0 {
		return "Enabled"
	}
	return "Disabled"
}
