package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"rushline/pkg/race"
)

// HUD draws the in-race overlay: speed, progress, time, boost marker.
type HUD struct {
	width  int
	height int
	face   text.Face
}

// NewHUD creates a HUD for the given viewport.
func NewHUD(width, height int) *HUD {
	return &HUD{
		width:  width,
		height: height,
		face:   text.NewGoXFace(bitmapfont.Face),
	}
}

// Draw paints the overlay from the current snapshot.
func (h *HUD) Draw(screen *ebiten.Image, snap race.Snapshot) {
	// speed box, top left
	vector.DrawFilledRect(screen, 10, 10, 150, 60, color.RGBA{20, 20, 30, 200}, false)

	speedColor := color.RGBA{100, 255, 100, 255}
	if snap.Boosted {
		speedColor = color.RGBA{255, 160, 40, 255}
	}
	h.drawText(screen, fmt.Sprintf("%d", snap.DisplaySpeed), 22, 18, 3.0, speedColor)
	h.drawText(screen, "SPEED", 22, 54, 1.0, color.RGBA{200, 200, 200, 255})
	if snap.Boosted {
		h.drawText(screen, "BOOST", 100, 54, 1.0, speedColor)
	}

	// elapsed time, top right
	h.drawText(screen, fmt.Sprintf("%.1fs", snap.ElapsedSeconds),
		float64(h.width)-90, 18, 2.0, color.RGBA{255, 255, 255, 255})

	// progress bar along the top
	barW := float64(h.width) - 200
	vector.DrawFilledRect(screen, 170, 14, float32(barW), 10, color.RGBA{40, 40, 40, 220}, false)
	fill := barW * float64(snap.DistancePercent) / 100
	vector.DrawFilledRect(screen, 170, 14, float32(fill), 10, color.RGBA{255, 215, 0, 255}, false)
}

// DrawFinishOverlay paints the post-race panel on top of the scene.
func (h *HUD) DrawFinishOverlay(screen *ebiten.Image, snap race.Snapshot) {
	w, hh := float64(h.width), float64(h.height)
	vector.DrawFilledRect(screen, float32(w/2-180), float32(hh/2-90), 360, 180,
		color.RGBA{20, 20, 30, 230}, false)

	centerX := w / 2
	drawCenteredText(screen, h.face, "FINISHED", centerX, hh/2-70, 3.0,
		color.RGBA{255, 215, 0, 255})
	drawCenteredText(screen, h.face, fmt.Sprintf("LAP  %.1fs", snap.LastLap),
		centerX, hh/2-20, 2.0, color.RGBA{255, 255, 255, 255})

	if snap.NewBest {
		drawCenteredText(screen, h.face, "NEW BEST!", centerX, hh/2+10, 2.0,
			color.RGBA{120, 255, 120, 255})
	} else if snap.HasBestLap {
		drawCenteredText(screen, h.face, fmt.Sprintf("BEST %.1fs", snap.BestLap),
			centerX, hh/2+10, 1.5, color.RGBA{180, 180, 200, 255})
	}

	drawCenteredText(screen, h.face, "ENTER retry   ESC menu", centerX, hh/2+60, 1.0,
		color.RGBA{150, 200, 255, 255})
}

func (h *HUD) drawText(screen *ebiten.Image, s string, x, y, scale float64, clr color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, h.face, op)
}
