package render

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// newBackdrop pre-generates the static image behind the road: a sky
// gradient, the sun, and a ridge of distant hills. Generated once per
// renderer, drawn every frame.
func newBackdrop(width, height int, seed int64) *ebiten.Image {
	img := ebiten.NewImage(width, height)
	rng := rand.New(rand.NewSource(seed))

	horizon := height / 2

	top := color.RGBA{0x30, 0x80, 0xC8, 0xFF}
	bottom := color.RGBA{0x90, 0xD8, 0xF0, 0xFF}
	for y := 0; y < horizon; y++ {
		t := float64(y) / float64(horizon)
		band := color.RGBA{
			uint8(float64(top.R) + t*float64(bottom.R-top.R)),
			uint8(float64(top.G) + t*float64(bottom.G-top.G)),
			uint8(float64(top.B) + t*float64(bottom.B-top.B)),
			0xFF,
		}
		vector.DrawFilledRect(img, 0, float32(y), float32(width), 1, band, false)
	}

	vector.DrawFilledCircle(img, float32(width)*0.78, float32(horizon)*0.35, 26,
		color.RGBA{0xFF, 0xF0, 0xA0, 0xFF}, false)

	// hill bumps straddling the horizon line
	hill := color.RGBA{0x20, 0x60, 0x30, 0xFF}
	for x := 0; x < width; x += 30 + rng.Intn(50) {
		radius := 20 + rng.Intn(45)
		vector.DrawFilledCircle(img, float32(x), float32(horizon), float32(radius), hill, false)
	}

	// ground below the horizon; segments repaint most of it per frame
	vector.DrawFilledRect(img, 0, float32(horizon), float32(width), float32(height-horizon),
		groundColor, false)

	return img
}
