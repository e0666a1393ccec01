package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"rushline/pkg/race"
	"rushline/pkg/track"
)

var (
	groundColor = color.RGBA{0x00, 0x51, 0x08, 0xFF}

	obstacleColor = color.RGBA{0xB0, 0x30, 0x20, 0xFF}
	boostColor    = color.RGBA{0xFF, 0xD7, 0x00, 0xFF}
	propColor     = color.RGBA{0x00, 0x70, 0x20, 0xFF}

	carBodyColor  = color.RGBA{0xDC, 0x14, 0x14, 0xFF}
	carBoostColor = color.RGBA{0xFF, 0x8C, 0x00, 0xFF}
	carRoofColor  = color.RGBA{0x8E, 0x0E, 0x0E, 0xFF}
	carWheelColor = color.RGBA{0x20, 0x20, 0x20, 0xFF}
)

// Textured triangles need a source image; a single white pixel scaled
// by vertex colors covers every flat fill.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Renderer draws one frame of the road scene onto a fixed-size surface.
// It reads the track and car state and never mutates either.
type Renderer struct {
	width, height int
	roadWidth     float64 // world half-width
	cameraHeight  float64
	cameraDepth   float64
	drawDistance  int

	visible []bool // per-walk scratch, indexed by walk step

	backdrop      *ebiten.Image
	carImage      *ebiten.Image
	carBoostImage *ebiten.Image
}

// NewRenderer builds a renderer for a fixed viewport. fov is the
// horizontal field of view in degrees.
func NewRenderer(width, height int, roadWidth, cameraHeight, fov float64, drawDistance int) *Renderer {
	return &Renderer{
		width:        width,
		height:       height,
		roadWidth:    roadWidth,
		cameraHeight: cameraHeight,
		cameraDepth:  1 / math.Tan(fov/2*math.Pi/180),
		drawDistance: drawDistance,
		visible:      make([]bool, drawDistance),
	}
}

// Draw renders the full scene. A nil surface short-circuits with no
// effect.
func (r *Renderer) Draw(screen *ebiten.Image, sim *race.Simulation) {
	if screen == nil {
		return
	}

	tr := sim.Track()
	car := sim.Car()
	w, h := float64(r.width), float64(r.height)

	if r.backdrop == nil {
		r.backdrop = newBackdrop(r.width, r.height, 1)
	}
	screen.DrawImage(r.backdrop, nil)

	base := tr.AtPosition(car.Position)
	basePercent := math.Mod(car.Position, tr.SegmentLength) / tr.SegmentLength
	count := len(tr.Segments)
	trackLength := tr.Length()

	camX := car.PlayerX * r.roadWidth
	camY := r.cameraHeight

	// Walking forward accumulates the per-segment curve into a running
	// horizontal offset; projecting against that offset is what bends
	// the road without any real camera rotation.
	x := 0.0
	dx := -base.Curve * basePercent

	for n := 0; n < r.drawDistance; n++ {
		seg := &tr.Segments[(base.Index+n)%count]

		// segments past the wrap point sit one full track behind
		camZ := car.Position
		if seg.Index < base.Index {
			camZ -= trackLength
		}

		Project(&seg.P1, camX-x, camY, camZ, r.cameraDepth, w, h, r.roadWidth)
		Project(&seg.P2, camX-x-dx, camY, camZ, r.cameraDepth, w, h, r.roadWidth)

		x += dx
		dx += seg.Curve

		behind := seg.P1.Z-camZ <= r.cameraDepth
		backface := seg.P2.ScreenY >= seg.P1.ScreenY
		r.visible[n] = !behind && !backface
		if !r.visible[n] {
			continue
		}
		r.drawSegment(screen, seg, w)
	}

	// Sprites go back to front so nearer ones occlude farther ones.
	for n := r.drawDistance - 1; n >= 0; n-- {
		if !r.visible[n] {
			continue
		}
		seg := &tr.Segments[(base.Index+n)%count]
		for _, sp := range seg.Sprites {
			r.drawSprite(screen, seg, sp)
		}
	}

	r.drawCar(screen, car)
}

func (r *Renderer) drawSegment(screen *ebiten.Image, seg *track.Segment, w float64) {
	p1, p2 := seg.P1, seg.P2
	pal := seg.Palette

	// ground band between the two boundary rows
	vector.DrawFilledRect(screen,
		0, float32(p2.ScreenY), float32(w), float32(p1.ScreenY-p2.ScreenY),
		pal.Grass, false)

	fillTrapezoid(screen,
		p1.ScreenX-p1.ScreenW, p1.ScreenX+p1.ScreenW, p1.ScreenY,
		p2.ScreenX-p2.ScreenW, p2.ScreenX+p2.ScreenW, p2.ScreenY,
		pal.Road)

	// rumble strips on both edges, 10% of the road half-width
	r1, r2 := p1.ScreenW*0.1, p2.ScreenW*0.1
	fillTrapezoid(screen,
		p1.ScreenX-p1.ScreenW-r1, p1.ScreenX-p1.ScreenW, p1.ScreenY,
		p2.ScreenX-p2.ScreenW-r2, p2.ScreenX-p2.ScreenW, p2.ScreenY,
		pal.Rumble)
	fillTrapezoid(screen,
		p1.ScreenX+p1.ScreenW, p1.ScreenX+p1.ScreenW+r1, p1.ScreenY,
		p2.ScreenX+p2.ScreenW, p2.ScreenX+p2.ScreenW+r2, p2.ScreenY,
		pal.Rumble)

	if pal.HasLane {
		l1, l2 := p1.ScreenW*0.02, p2.ScreenW*0.02
		fillTrapezoid(screen,
			p1.ScreenX-l1, p1.ScreenX+l1, p1.ScreenY,
			p2.ScreenX-l2, p2.ScreenX+l2, p2.ScreenY,
			pal.Lane)
	}
}

func (r *Renderer) drawSprite(screen *ebiten.Image, seg *track.Segment, sp track.Sprite) {
	// the host segment's projected near point anchors the sprite
	ratio := seg.P1.ScreenW / r.roadWidth
	destW := sp.Width * ratio
	destH := sp.Height * ratio
	destX := seg.P1.ScreenX + seg.P1.ScreenW*sp.Offset - destW/2
	destY := seg.P1.ScreenY - destH

	switch sp.Kind {
	case track.SpriteObstacle:
		vector.DrawFilledRect(screen, float32(destX), float32(destY), float32(destW), float32(destH), obstacleColor, false)
	case track.SpriteBoost:
		vector.DrawFilledCircle(screen, float32(destX+destW/2), float32(destY+destH/2), float32(destW/2), boostColor, false)
	case track.SpriteProp:
		vector.DrawFilledRect(screen, float32(destX), float32(destY), float32(destW), float32(destH), propColor, false)
	}
}

// drawCar paints the player car as a fixed foreground overlay. It is
// never reprojected; only a small tilt follows the lateral offset.
func (r *Renderer) drawCar(screen *ebiten.Image, car race.Car) {
	img := r.carSprite(car.BoostTimer > 0)
	cw := float64(img.Bounds().Dx())
	ch := float64(img.Bounds().Dy())

	tilt := car.PlayerX * 0.08

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-cw/2, -ch/2)
	op.GeoM.Rotate(tilt)
	op.GeoM.Translate(cw/2, ch/2)
	op.GeoM.Translate(float64(r.width)/2-cw/2, float64(r.height)-ch-20)
	screen.DrawImage(img, op)
}

// carSprite lazily builds the two car images (normal and boosted).
func (r *Renderer) carSprite(boosted bool) *ebiten.Image {
	if r.carImage == nil {
		r.carImage = buildCarImage(carBodyColor)
		r.carBoostImage = buildCarImage(carBoostColor)
	}
	if boosted {
		return r.carBoostImage
	}
	return r.carImage
}

func buildCarImage(body color.RGBA) *ebiten.Image {
	const cw, ch = 96, 52
	img := ebiten.NewImage(cw, ch)

	// wheels poke out under the body
	vector.DrawFilledRect(img, 6, 34, 20, 16, carWheelColor, false)
	vector.DrawFilledRect(img, 70, 34, 20, 16, carWheelColor, false)
	// body and roof
	vector.DrawFilledRect(img, 0, 12, cw, 30, body, false)
	vector.DrawFilledRect(img, 20, 0, 56, 16, carRoofColor, false)
	// rear window
	vector.DrawFilledRect(img, 26, 4, 44, 10, color.RGBA{0x64, 0xB4, 0xDC, 0xFF}, false)
	return img
}

// fillTrapezoid fills the quad spanning a near edge (x1a..x1b at y1)
// and a far edge (x2a..x2b at y2).
func fillTrapezoid(dst *ebiten.Image, x1a, x1b, y1, x2a, x2b, y2 float64, c color.RGBA) {
	var path vector.Path
	path.MoveTo(float32(x1a), float32(y1))
	path.LineTo(float32(x1b), float32(y1))
	path.LineTo(float32(x2b), float32(y2))
	path.LineTo(float32(x2a), float32(y2))
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}
