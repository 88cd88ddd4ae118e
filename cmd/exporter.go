package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/kardianos/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/bosshoggett/concord-cli/internal/client"
)

// Variables to hold flag values
var (
	expListenPort string
	serviceAction string // "install", "uninstall", "start", "stop"
)

// --- SERVICE WRAPPER ---

// program implements the kardianos/service interface
type program struct {
	exit   chan struct{}
	server *http.Server
	api    *client.Client
}

func (p *program) Start(s service.Service) error {
	// Start should not block. Do the actual work async.
	p.exit = make(chan struct{})
	go p.run()
	return nil
}

func (p *program) run() {
	registry := prometheus.NewRegistry()
	collector := &CameraCollector{Client: p.api}
	registry.MustRegister(collector)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)

	addr := ":" + expListenPort
	p.server = &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	log.Printf("Concord camera exporter listening on %s", addr)

	if err := p.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("HTTP server error: %v", err)
	}
}

func (p *program) Stop(s service.Service) error {
	// Stop should not block. Signal the app to stop.
	log.Println("Stopping service...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if p.server != nil {
		if err := p.server.Shutdown(ctx); err != nil {
			log.Printf("Server forced to shutdown: %v", err)
		}
	}
	close(p.exit)
	return nil
}

// --- COLLECTOR ---

// CameraCollector scrapes one camera per Prometheus scrape. The mutex keeps
// one in-flight request sequence per client instance.
type CameraCollector struct {
	Client *client.Client
	Mutex  sync.Mutex
}

var (
	upDesc = prometheus.NewDesc(
		"concord_up", "Was the last scrape of the camera successful.", nil, nil,
	)
	scrapeDurationDesc = prometheus.NewDesc(
		"concord_scrape_duration_seconds", "Time taken to scrape the camera API.", nil, nil,
	)
	uptimeDesc = prometheus.NewDesc(
		"concord_uptime_seconds", "Camera uptime in seconds.", []string{"model", "firmware", "serial"}, nil,
	)
	videoBitrateDesc = prometheus.NewDesc(
		"concord_video_bitrate_kbps", "Configured video bitrate per channel.", []string{"channel"}, nil,
	)
	videoFPSDesc = prometheus.NewDesc(
		"concord_video_fps", "Configured frame rate per channel.", []string{"channel"}, nil,
	)
	motionEnabledDesc = prometheus.NewDesc(
		"concord_motion_enabled", "Whether motion detection is enabled.", nil, nil,
	)
)

func (c *CameraCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- upDesc
	ch <- scrapeDurationDesc
	ch <- uptimeDesc
	ch <- videoBitrateDesc
	ch <- videoFPSDesc
	ch <- motionEnabledDesc
}

func (c *CameraCollector) Collect(ch chan<- prometheus.Metric) {
	c.Mutex.Lock()
	defer c.Mutex.Unlock()
	start := time.Now()
	success := 1.0

	// 1. System info
	if info, err := c.Client.SystemInfo(); err == nil {
		ch <- prometheus.MustNewConstMetric(uptimeDesc, prometheus.GaugeValue,
			float64(info.Uptime), info.Model, info.FirmwareVersion, info.SerialNumber)
	} else {
		success = 0.0
		log.Printf("Error scraping system info: %v", err)
	}

	// 2. Video channels; sub stream is absent on some firmware, skip quietly
	for _, channel := range []int{0, 1} {
		vs, err := c.Client.VideoStream(channel)
		if err != nil {
			continue
		}
		label := strconv.Itoa(channel)
		ch <- prometheus.MustNewConstMetric(videoBitrateDesc, prometheus.GaugeValue, float64(vs.Bitrate), label)
		ch <- prometheus.MustNewConstMetric(videoFPSDesc, prometheus.GaugeValue, float64(vs.FPS), label)
	}

	// 3. Motion detection
	if md, err := c.Client.MotionDetection(); err == nil {
		ch <- prometheus.MustNewConstMetric(motionEnabledDesc, prometheus.GaugeValue, float64(md.Enabled))
	}

	ch <- prometheus.MustNewConstMetric(upDesc, prometheus.GaugeValue, success)
	ch <- prometheus.MustNewConstMetric(scrapeDurationDesc, prometheus.GaugeValue, time.Since(start).Seconds())
}

// --- COMMAND ---

var exporterCmd = &cobra.Command{
	Use:   "exporter",
	Short: "Start a Prometheus exporter for the camera",
	Long: `Starts a long-running HTTP server that exposes camera metrics
(uptime, video bitrate/fps, motion detection state) on /metrics.
Can be installed as a system service.`,
	Run: func(cmd *cobra.Command, args []string) {
		api := newCamera()

		svcConfig := &service.Config{
			Name:        "concord-exporter",
			DisplayName: "Concord Camera Prometheus Exporter",
			Description: "Exposes Concord/Juan Optical camera metrics to Prometheus",
			// Arguments passed to the binary when run as a service
			Arguments: []string{
				"exporter",
				"--ip", cameraIP,
				"--username", username,
				"--password", password,
				"--port", strconv.Itoa(httpPort),
				"--timeout", strconv.Itoa(timeoutSec),
				"--auth", authMode,
				"--listen-port", expListenPort,
			},
		}

		prg := &program{api: api}

		s, err := service.New(prg, svcConfig)
		if err != nil {
			log.Fatal(err)
		}

		// Handle service control actions (install, start, stop, uninstall)
		if serviceAction != "" {
			if serviceAction == "install" && cameraIP == "" {
				log.Fatal("Error: --ip is required to install the service.")
			}
			if err := service.Control(s, serviceAction); err != nil {
				log.Fatalf("Failed to %s service: %v", serviceAction, err)
			}
			fmt.Printf("Service action '%s' completed successfully.\n", serviceAction)
			return
		}

		// Run blocking, either under the service manager or interactively
		logger, err := s.Logger(nil)
		if err != nil {
			log.Fatal(err)
		}
		if err = s.Run(); err != nil {
			logger.Error(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(exporterCmd)

	exporterCmd.Flags().StringVar(&expListenPort, "listen-port", "9834", "Port the exporter listens on")
	exporterCmd.Flags().StringVar(&serviceAction, "service", "", "Service action: install, uninstall, start, stop")
}
