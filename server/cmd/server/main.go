package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/tower-climb/config"
	"github.com/automoto/tower-climb/server/core"
	"github.com/automoto/tower-climb/shared/leveldata"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	configPath := flag.String("config", "", "YAML config overrides (default $TOWER_CONFIG)")
	tickRate := flag.Int("tickrate", 0, "Simulation ticks per second (0 = config)")
	metricsAddr := flag.String("metrics-addr", "", "Serve Prometheus metrics on this address")
	sectionsDir := flag.String("sections", "", "Directory of .tmx files overriding built-in sections")
	pilotName := flag.String("pilot", "wander", "Who plays: idle or wander")
	duration := flag.Duration("duration", 0, "Stop after this long (0 = until interrupted)")
	flag.Parse()

	file, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	file.Apply()
	if *tickRate <= 0 {
		*tickRate = config.Scheduler.TicksPerSecond
	}
	if *metricsAddr == "" {
		*metricsAddr = config.MetricsAddr()
	}

	sections, err := leveldata.Load(*sectionsDir)
	if err != nil {
		log.Fatalf("Failed to load sections: %v", err)
	}

	var pilot core.Pilot
	switch *pilotName {
	case "idle":
		pilot = core.Idle{}
	case "wander":
		pilot = core.NewWanderer()
	default:
		log.Fatalf("Unknown pilot %q", *pilotName)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	server := core.NewServer(sections, *tickRate, pilot, nil, reg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	if *metricsAddr != "" {
		go serveMetrics(ctx, *metricsAddr, reg)
	}

	log.Printf("Starting headless tower (%d sections, tick rate: %d/s, pilot: %s)",
		len(sections), *tickRate, *pilotName)
	server.Run(ctx)

	st := server.Status()
	log.Printf("Stopped after %d frames in %s: %d section changes, %d respawns",
		st.Frame, st.Section, st.SectionChanges, st.Respawns)
}

func serveMetrics(ctx context.Context, addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("Metrics listening on %s/metrics", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("Metrics server error: %v", err)
	}
}
