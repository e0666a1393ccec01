package track

import "image/color"

// Palette is the color set a segment is drawn with. HasLane marks
// palettes that draw a center lane marker; alternating it every rumble
// band gives the dashed-line illusion.
type Palette struct {
	Road    color.RGBA
	Grass   color.RGBA
	Rumble  color.RGBA
	Lane    color.RGBA
	HasLane bool
}

var (
	paletteLight = Palette{
		Road:    color.RGBA{0x6B, 0x6B, 0x6B, 0xFF},
		Grass:   color.RGBA{0x10, 0xAA, 0x10, 0xFF},
		Rumble:  color.RGBA{0x55, 0x55, 0x55, 0xFF},
		Lane:    color.RGBA{0xCC, 0xCC, 0xCC, 0xFF},
		HasLane: true,
	}
	paletteDark = Palette{
		Road:   color.RGBA{0x69, 0x69, 0x69, 0xFF},
		Grass:  color.RGBA{0x00, 0x9A, 0x00, 0xFF},
		Rumble: color.RGBA{0xBB, 0xBB, 0xBB, 0xFF},
	}
	paletteStart = Palette{
		Road:   color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
		Grass:  color.RGBA{0x10, 0xAA, 0x10, 0xFF},
		Rumble: color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
	}
	paletteFinish = Palette{
		Road:   color.RGBA{0x00, 0x00, 0x00, 0xFF},
		Grass:  color.RGBA{0x10, 0xAA, 0x10, 0xFF},
		Rumble: color.RGBA{0x00, 0x00, 0x00, 0xFF},
	}
)

// paletteFor picks the banding for segment n of total segments: white
// start zone, black finish zone, otherwise light/dark alternating every
// rumbleLength segments.
func paletteFor(n, total, rumbleLength int) Palette {
	switch {
	case n < startZone:
		return paletteStart
	case n >= total-finishZone:
		return paletteFinish
	case (n/rumbleLength)%2 == 0:
		return paletteLight
	default:
		return paletteDark
	}
}
