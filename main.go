package main

import (
	"errors"
	"flag"
	"image"
	"log"
	"net/http"
	"time"

	"github.com/automoto/tower-climb/assets"
	"github.com/automoto/tower-climb/config"
	"github.com/automoto/tower-climb/fonts"
	"github.com/automoto/tower-climb/scenes"
	"github.com/automoto/tower-climb/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(opts scenes.TowerOptions, skipMenu bool) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	if skipMenu {
		g.scene = scenes.NewTowerScene(g, opts)
	} else {
		g.scene = scenes.NewMenuScene(g, opts)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML config overrides (default $TOWER_CONFIG)")
	metricsAddr := flag.String("metrics-addr", "", "Serve Prometheus metrics on this address")
	sectionsDir := flag.String("sections", "", "Directory of .tmx files overriding built-in sections")
	lang := flag.String("lang", "", "Language for in-game text")
	debug := flag.Bool("debug", false, "Draw colliders and the FPS counter")
	skipMenu := flag.Bool("skip-menu", false, "Start in the tower")
	flag.Parse()

	file, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	file.Apply()
	if *debug {
		config.Debug.ShowColliders = true
		config.Debug.ShowFPS = true
	}
	if *lang != "" {
		config.C.Language = *lang
	}
	if err := assets.SetLanguage(config.C.Language); err != nil {
		log.Printf("Warning: %v, using %s", err, assets.DefaultLanguage)
	}

	sections, err := leveldata.Load(*sectionsDir)
	if err != nil {
		log.Fatalf("Failed to load sections: %v", err)
	}
	opts := scenes.TowerOptions{Sections: sections}

	if *metricsAddr == "" {
		*metricsAddr = config.MetricsAddr()
	}
	if *metricsAddr != "" {
		reg := prometheus.NewRegistry()
		opts.Registry = reg
		go serveMetrics(*metricsAddr, reg)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.Scheduler.TicksPerSecond)

	if err := ebiten.RunGame(NewGame(opts, *skipMenu)); err != nil {
		log.Fatal(err)
	}
}

func serveMetrics(addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	log.Printf("Metrics listening on %s/metrics", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("Metrics server error: %v", err)
	}
}
