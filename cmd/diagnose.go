package cmd

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bosshoggett/concord-cli/internal/client"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Run connectivity and configuration diagnostics",
	Long: `Test TCP reachability, authentication and every settings endpoint
to help troubleshoot a misbehaving camera. Individual setting failures are
reported and skipped; connectivity or authentication failures abort with a
non-zero exit code.`,
	Run: func(cmd *cobra.Command, args []string) {
		api := newCamera()

		host := cameraIP
		if host == "" {
			host = viper.GetString("ip")
		}
		fmt.Printf("Diagnosing camera at %s\n", host)

		// 1. HTTP port
		fmt.Println("\n1. Network Connectivity")
		if err := probePort(host, httpPort); err != nil {
			fmt.Printf("  FAIL: cannot connect to port %d: %v\n", httpPort, err)
			os.Exit(1)
		}
		fmt.Printf("  OK: port %d reachable\n", httpPort)

		// 2. RTSP port (informational, the stream is broken anyway)
		fmt.Println("\n2. RTSP Port")
		if err := probePort(host, 554); err != nil {
			fmt.Printf("  WARN: port 554 (RTSP) not reachable: %v\n", err)
		} else {
			fmt.Println("  OK: port 554 (RTSP) reachable")
		}

		// 3. Authentication + system info
		fmt.Println("\n3. Authentication")
		info, err := api.SystemInfo()
		if err != nil {
			fmt.Printf("  FAIL: %v\n", err)
			fmt.Println("\nTroubleshooting tips:")
			fmt.Println("  - Verify the camera IP address")
			fmt.Println("  - Try the factory credentials: admin with empty password")
			fmt.Println("  - Try --auth basic (older netsdk firmware)")
			fmt.Println("  - Consider a factory reset")
			os.Exit(1)
		}
		fmt.Println("  OK: authentication successful")

		fmt.Println("\n4. System Information")
		fmt.Printf("  Model: %s\n", info.Model)
		fmt.Printf("  Hardware Version: %s\n", info.HardwareVersion)
		fmt.Printf("  Firmware Version: %s\n", info.FirmwareVersion)
		fmt.Printf("  Serial Number: %s\n", info.SerialNumber)
		fmt.Printf("  Uptime: %s\n", formatUptime(info.Uptime))

		fmt.Println("\n5. Network Settings")
		if ns, err := api.NetworkSettings(); err != nil {
			fmt.Printf("  WARN: %v\n", err)
		} else {
			fmt.Printf("  IP: %s/%s via %s (DHCP %s)\n", ns.IP, ns.Netmask, ns.Gateway, onOff(ns.DHCP))
			fmt.Printf("  DNS: %s, %s\n", ns.DNS1, ns.DNS2)
			fmt.Printf("  Ports: HTTP %d, RTSP %d\n", ns.HTTPPort, ns.RTSPPort)
		}

		fmt.Println("\n6. Video Settings")
		for ch, label := range []string{"Main", "Sub"} {
			vs, err := api.VideoStream(ch)
			if err != nil {
				fmt.Printf("  WARN: %s stream: %v\n", label, err)
				continue
			}
			fmt.Printf("  %s stream: %s %s @ %d fps, %d kbps (%s)\n",
				label, vs.Codec, vs.Resolution, vs.FPS, vs.Bitrate, vs.Quality)
		}

		fmt.Println("\n7. Image Settings")
		if is, err := api.ImageSettings(); err != nil {
			fmt.Printf("  WARN: %v\n", err)
		} else {
			fmt.Printf("  Brightness %d, Contrast %d, Saturation %d, Sharpness %d\n",
				is.Brightness, is.Contrast, is.Saturation, is.Sharpness)
			fmt.Printf("  WDR: %s, Exposure: %s\n", onOff(is.WDR), is.ExposureMode)
		}

		fmt.Println("\n8. Motion Detection")
		if md, err := api.MotionDetection(); err != nil {
			fmt.Printf("  WARN: %v\n", err)
		} else {
			fmt.Printf("  Enabled: %s, Sensitivity: %d, Regions: %d\n",
				onOff(md.Enabled), md.Sensitivity, len(md.Regions))
		}

		fmt.Println("\n9. OSD")
		if osd, err := api.OSDSettings(); err != nil {
			fmt.Printf("  WARN: %v\n", err)
		} else {
			fmt.Printf("  Time: %s, Name: %q (%s)\n",
				onOff(osd.TimeEnabled), osd.CameraName, onOff(osd.CameraNameEnabled))
		}

		fmt.Println("\n10. RTSP Stream URLs")
		fmt.Printf("  Main: %s\n", api.RTSPURL(1, false))
		fmt.Printf("  Sub:  %s\n", api.RTSPURL(2, false))
		fmt.Printf("  %s\n", client.RTSPWarning)

		fmt.Println("\n11. Snapshot Capability")
		if data, err := api.Snapshot(0); err != nil {
			fmt.Printf("  FAIL: %v\n", err)
		} else {
			fmt.Printf("  OK: snapshot captured (%d bytes)\n", len(data))
			fmt.Println("  Tip: use snapshots instead of RTSP for reliable image capture")
		}

		fmt.Println("\nDiagnostics complete.")
	},
}

// probePort checks plain TCP reachability, independent of HTTP auth.
func probePort(host string, port int) error {
	conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, fmt.Sprintf("%d", port)), 5*time.Second)
	if err != nil {
		return err
	}
	return conn.Close()
}

func init() {
	rootCmd.AddCommand(diagnoseCmd)
}
