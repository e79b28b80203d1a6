// Package daemon runs the battery poll loop, the notification sink, and
// the unix-socket control API.
package daemon

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/battosd/battosd/pkg/config"
	"github.com/battosd/battosd/pkg/dispatch"
	"github.com/battosd/battosd/pkg/events"
	"github.com/battosd/battosd/pkg/monitor"
	"github.com/battosd/battosd/pkg/osd"
	"github.com/battosd/battosd/pkg/sensor"
)

var (
	store  *config.Store
	source sensor.Source
	mon    *monitor.Monitor
	sink   osd.Sink
	sseHub *events.Hub
)

// configuredSource picks the sensor backend from the live config on every
// read, so a SIGHUP reload can switch backend or battery path without a
// restart. Both backends are stateless.
type configuredSource struct {
	store *config.Store
}

func (s *configuredSource) Read() (sensor.Snapshot, error) {
	cfg := s.store.Get()
	if cfg.Sensor == config.SensorSystem {
		return sensor.NewSystemSource().Read()
	}
	return sensor.NewSysfsSource(cfg.BatteryPath).Read()
}

func setupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ginLogger(logrus.StandardLogger()))
	router.GET("/config", getConfig)
	router.GET("/battery", getBattery)
	router.GET("/version", getVersion)
	router.POST("/check", forceCheck)
	router.GET("/events", getEvents)

	return router
}

func Run(configPath string, unixSocketPath string) error {
	store = config.NewStore(configPath)
	logrus.WithFields(store.Get().LogrusFields()).Info("config loaded")

	// Receive SIGHUP to reload config
	go func() {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGHUP)
		for range sigc {
			if err := store.Load(); err != nil {
				logrus.Errorf("failed to reload config: %v", err)
				continue
			}
			logrus.WithFields(store.Get().LogrusFields()).Info("config reloaded")
		}
	}()

	source = &configuredSource{store: store}
	mon = monitor.New(store, source, dispatch.New())
	sink = osd.New()
	sseHub = events.NewHub()

	srv := &http.Server{
		Handler: setupRoutes(),
	}

	// A previous unclean shutdown can leave the socket file behind.
	if err := os.Remove(unixSocketPath); err != nil && !os.IsNotExist(err) {
		logrus.Fatalf("failed to remove stale socket %s: %v", unixSocketPath, err)
	}

	l, err := net.Listen("unix", unixSocketPath)
	if err != nil {
		logrus.Fatal(err)
	}

	go func() {
		logrus.Infof("http server listening on %s", l.Addr().String())
		if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal(err)
		}
	}()

	go func() {
		logrus.Debugln("poll loop starts")

		pollLoop()
	}()

	// Handle common process-killing signals, so we can gracefully shut down:
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigc
	logrus.Infof("caught signal \"%s\": shutting down.", sig)

	logrus.Info("shutting down http server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("failed to shutdown http server: %v", err)
	}
	cancel()

	if err := sink.Hide(); err != nil {
		logrus.Errorf("failed to hide notification before exiting: %v", err)
	}

	if err := os.Remove(unixSocketPath); err != nil && !os.IsNotExist(err) {
		logrus.Errorf("failed to remove socket %s: %v", unixSocketPath, err)
	}

	logrus.Info("exiting")
	return nil
}
