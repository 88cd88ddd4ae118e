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
	netDHCP     int
	netIP       string
	netNetmask  string
	netGateway  string
	netDNS1     string
	netDNS2     string
	netHTTPPort int
	netRTSPPort int
)

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Show network settings",
	Run: func(cmd *cobra.Command, args []string) {
		api := newCamera()

		ns, err := api.NetworkSettings()
		if err != nil {
			fail("fetching network settings: %v", err)
		}

		if jsonOutput {
			printJSON(ns)
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintf(w, "DHCP:\t%s\n", onOff(ns.DHCP))
		fmt.Fprintf(w, "IP Address:\t%s\n", ns.IP)
		fmt.Fprintf(w, "Netmask:\t%s\n", ns.Netmask)
		fmt.Fprintf(w, "Gateway:\t%s\n", ns.Gateway)
		fmt.Fprintf(w, "DNS1:\t%s\n", ns.DNS1)
		fmt.Fprintf(w, "DNS2:\t%s\n", ns.DNS2)
		fmt.Fprintf(w, "HTTP Port:\t%d\n", ns.HTTPPort)
		fmt.Fprintf(w, "RTSP Port:\t%d\n", ns.RTSPPort)
		w.Flush()
	},
}

var setNetworkCmd = &cobra.Command{
	Use:   "set-network",
	Short: "Change network settings",
	Long: `Change network settings. Only the flags you pass are sent to the
camera; everything else keeps its current value. Changing the IP drops your
connection, reconnect on the new address.`,
	Example: `  concord-cli -i 192.168.1.10 set-network --static-ip 192.168.1.100 --dhcp 0`,
	Run: func(cmd *cobra.Command, args []string) {
		api := newCamera()

		var u models.NetworkUpdate
		if cmd.Flags().Changed("dhcp") {
			u.DHCP = &netDHCP
		}
		if cmd.Flags().Changed("static-ip") {
			u.IP = &netIP
		}
		if cmd.Flags().Changed("netmask") {
			u.Netmask = &netNetmask
		}
		if cmd.Flags().Changed("gateway") {
			u.Gateway = &netGateway
		}
		if cmd.Flags().Changed("dns1") {
			u.DNS1 = &netDNS1
		}
		if cmd.Flags().Changed("dns2") {
			u.DNS2 = &netDNS2
		}
		if cmd.Flags().Changed("http-port") {
			u.HTTPPort = &netHTTPPort
		}
		if cmd.Flags().Changed("rtsp-port") {
			u.RTSPPort = &netRTSPPort
		}

		if u == (models.NetworkUpdate{}) {
			fail("no settings provided, see 'concord-cli set-network --help'")
		}

		if err := api.SetNetworkSettings(u); err != nil {
			fail("applying network settings: %v", err)
		}
		fmt.Println("Network settings applied.")
	},
}

func init() {
	rootCmd.AddCommand(networkCmd)
	rootCmd.AddCommand(setNetworkCmd)

	// --ip is taken by the global connection flag, so the address being
	// written to the camera is --static-ip.
	setNetworkCmd.Flags().IntVar(&netDHCP, "dhcp", 0, "Enable DHCP (0 or 1)")
	setNetworkCmd.Flags().StringVar(&netIP, "static-ip", "", "Static IP address")
	setNetworkCmd.Flags().StringVar(&netNetmask, "netmask", "", "Network mask")
	setNetworkCmd.Flags().StringVar(&netGateway, "gateway", "", "Gateway IP")
	setNetworkCmd.Flags().StringVar(&netDNS1, "dns1", "", "Primary DNS server")
	setNetworkCmd.Flags().StringVar(&netDNS2, "dns2", "", "Secondary DNS server")
	setNetworkCmd.Flags().IntVar(&netHTTPPort, "http-port", 80, "HTTP port")
	setNetworkCmd.Flags().IntVar(&netRTSPPort, "rtsp-port", 554, "RTSP port")
}
