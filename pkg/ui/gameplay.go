package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"rushline/pkg/race"
	"rushline/pkg/render"
)

// GameplayScreen owns one running race: it is the frame driver that
// computes dt from consecutive frame timestamps and runs exactly one
// physics tick and one render pass per frame.
type GameplayScreen struct {
	sim      *race.Simulation
	renderer *render.Renderer
	hud      *HUD

	now     func() time.Time
	last    time.Time
	haveRef bool

	onExit func()
}

// NewGameplayScreen starts the race and returns the running screen.
// onExit fires when the player leaves for the menu.
func NewGameplayScreen(sim *race.Simulation, renderer *render.Renderer, hud *HUD, onExit func()) *GameplayScreen {
	sim.Start()
	return &GameplayScreen{
		sim:      sim,
		renderer: renderer,
		hud:      hud,
		now:      time.Now,
		onExit:   onExit,
	}
}

// Update advances the simulation by the wall-clock time since the last
// frame. The tick itself clamps oversized gaps.
func (g *GameplayScreen) Update() error {
	now := g.now()
	if !g.haveRef {
		g.last = now
		g.haveRef = true
	}
	dt := now.Sub(g.last).Seconds()
	g.last = now

	switch g.sim.Phase() {
	case race.PhasePlaying:
		// cadence: one steer nudge per held-key frame
		if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
			g.sim.Steer(-1)
		} else if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
			g.sim.Steer(1)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.leave()
			return nil
		}
		g.sim.Tick(dt)

	case race.PhaseFinished:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.sim.Start()
			g.haveRef = false
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.leave()
		}
	}
	return nil
}

// Draw renders the scene and the HUD.
func (g *GameplayScreen) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.sim)

	snap := g.sim.Snapshot()
	g.hud.Draw(screen, snap)
	if snap.Phase == race.PhaseFinished {
		g.hud.DrawFinishOverlay(screen, snap)
	}
}

func (g *GameplayScreen) leave() {
	g.sim.ToMenu()
	if g.onExit != nil {
		g.onExit()
	}
}
