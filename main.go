package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"rushline/pkg/audio"
	"rushline/pkg/config"
	"rushline/pkg/laptime"
	"rushline/pkg/race"
	"rushline/pkg/render"
	"rushline/pkg/track"
	"rushline/pkg/ui"
)

// Logical resolution. The window scales it up; gameplay never sees the
// outer size.
const (
	screenWidth  = 640
	screenHeight = 480
)

// Screen is one full-window view. The game holds exactly one at a time
// and screens swap themselves out through callbacks.
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Game implements ebiten.Game. The simulation, renderer and lap store
// live here and survive screen switches.
type Game struct {
	sim      *race.Simulation
	renderer *render.Renderer
	hud      *ui.HUD

	screen Screen
}

func (g *Game) Update() error {
	return g.screen.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func (g *Game) showTitle() {
	snap := g.sim.Snapshot()
	g.screen = ui.NewTitleScreen(snap.BestLap, snap.HasBestLap, g.showGameplay)
}

func (g *Game) showGameplay() {
	g.screen = ui.NewGameplayScreen(g.sim, g.renderer, g.hud, g.showTitle)
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(level)
	} else {
		log.Warn().Str("logLevel", cfg.LogLevel).Msg("unknown log level, keeping default")
	}

	store, err := laptime.Open(cfg.DB.Path, log)
	if err != nil {
		// the game runs fine without persistence
		log.Warn().Err(err).Msg("lap store unavailable, times will not persist")
		store = nil
	} else {
		defer store.Close()
	}

	player := audio.NewPlayer(cfg.Audio.Enabled, log)

	seed := cfg.Track.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	log.Info().Int64("seed", seed).Msg("track seed")

	sim := race.NewSimulation(physicsParams(cfg), trackParams(cfg), rng, log)
	if store != nil {
		if best, ok, err := store.Best(); err != nil {
			log.Warn().Err(err).Msg("failed to read best lap")
		} else if ok {
			sim.SetBestLap(best)
		}
	}

	sim.SetEventHandler(func(ev race.Event) {
		switch ev {
		case race.EventObstacleHit:
			player.Play(audio.CueCrash)
		case race.EventBoostCollected:
			player.Play(audio.CueBoost)
		case race.EventFinished:
			player.Play(audio.CueFinish)
			if store != nil {
				if err := store.Record(sim.Snapshot().LastLap); err != nil {
					log.Warn().Err(err).Msg("failed to record lap time")
				}
			}
		}
	})

	g := &Game{
		sim: sim,
		renderer: render.NewRenderer(screenWidth, screenHeight,
			cfg.Render.RoadWidth, cfg.Render.CameraHeight,
			cfg.Render.FieldOfView, cfg.Render.DrawDistance),
		hud: ui.NewHUD(screenWidth, screenHeight),
	}
	g.showTitle()

	ebiten.SetWindowSize(screenWidth*cfg.Window.Scale, screenHeight*cfg.Window.Scale)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}

func physicsParams(cfg *config.Config) race.Params {
	return race.Params{
		MaxSpeed:      cfg.Physics.MaxSpeed,
		Acceleration:  cfg.Physics.Acceleration,
		OffRoadDecel:  cfg.Physics.OffRoadDecel,
		OffRoadLimit:  cfg.Physics.OffRoadLimit,
		BoostFactor:   cfg.Physics.BoostFactor,
		BoostDuration: cfg.Physics.BoostDuration,
		SteerNudge:    cfg.Physics.SteerNudge,
		RoadWidth:     cfg.Render.RoadWidth,
	}
}

func trackParams(cfg *config.Config) track.Params {
	return track.Params{
		SegmentCount:  cfg.Track.SegmentCount,
		SegmentLength: cfg.Track.SegmentLength,
		RumbleLength:  cfg.Track.RumbleLength,
		CurveStrength: cfg.Track.CurveStrength,
		ObstacleEvery: cfg.Track.ObstacleEvery,
		BoostEvery:    cfg.Track.BoostEvery,
		PropEvery:     cfg.Track.PropEvery,
		SafeZone:      cfg.Track.SafeZone,
		HazardSafety:  cfg.Track.HazardSafety,
	}
}
