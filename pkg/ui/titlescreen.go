package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TitleScreen is the start menu.
type TitleScreen struct {
	startTime time.Time
	bestLap   float64
	hasBest   bool
	onStart   func()
}

// NewTitleScreen creates the title screen. bestLap is shown when
// hasBest is true.
func NewTitleScreen(bestLap float64, hasBest bool, onStart func()) *TitleScreen {
	return &TitleScreen{
		startTime: time.Now(),
		bestLap:   bestLap,
		hasBest:   hasBest,
		onStart:   onStart,
	}
}

// Update waits for the start action.
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if ts.onStart != nil {
			ts.onStart()
		}
	}
	return nil
}

// Draw renders the title screen.
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{15, 20, 35, 255})

	elapsed := time.Since(ts.startTime).Seconds()
	face := text.NewGoXFace(bitmapfont.Face)
	centerX := float64(width) / 2

	// Pulsing title
	titleScale := 6.0 * (1.0 + 0.06*math.Sin(elapsed*2.0))
	drawCenteredText(screen, face, "RUSHLINE", centerX, float64(height)/3, titleScale,
		color.RGBA{255, 200, 50, 255})

	drawCenteredText(screen, face, "Pseudo-3D Racing", centerX, float64(height)/3+70, 2.0,
		color.RGBA{180, 180, 200, 255})

	if ts.hasBest {
		best := fmt.Sprintf("BEST LAP  %.1fs", ts.bestLap)
		drawCenteredText(screen, face, best, centerX, float64(height)/3+120, 1.5,
			color.RGBA{120, 255, 120, 255})
	}

	// Blink every half second
	if int(elapsed*2)%2 == 0 {
		drawCenteredText(screen, face, "Press ENTER or SPACE to Race", centerX,
			float64(height)-100, 1.5, color.RGBA{150, 200, 255, 255})
	}
}

// drawCenteredText draws scaled text with its horizontal center at x.
func drawCenteredText(screen *ebiten.Image, face text.Face, s string, x, y, scale float64, clr color.RGBA) {
	w := text.Advance(s, face) * scale
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x-w/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}
