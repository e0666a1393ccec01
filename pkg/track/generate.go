package track

import "math/rand"

// Banding zone sizes at the two ends of the track.
const (
	startZone  = 10
	finishZone = 10
)

// Curved stretches of the generated course. Segments in (CurveFrom,
// CurveTo) bend one way, segments in the mirrored second range bend the
// other; everything else is straight.
const (
	curveRightFrom = 100
	curveRightTo   = 200
	curveLeftFrom  = 300
	curveLeftTo    = 400
)

// World-unit sizes of the seeded sprites.
const (
	obstacleWidth  = 300
	obstacleHeight = 220
	boostWidth     = 300
	boostHeight    = 160
	propWidth      = 400
	propHeight     = 500
)

// Params configures track generation. Zero values are not usable; start
// from DefaultParams and override.
type Params struct {
	SegmentCount  int
	SegmentLength float64
	RumbleLength  int
	CurveStrength float64 // horizontal drift per curved segment

	ObstacleEvery int
	BoostEvery    int
	PropEvery     int
	SafeZone      int     // leading segments exempt from hazards
	HazardSafety  float64 // hazard offset bound, in road-half-widths (<1)
}

// DefaultParams returns the standard 500x200 course.
func DefaultParams() Params {
	return Params{
		SegmentCount:  500,
		SegmentLength: 200,
		RumbleLength:  3,
		CurveStrength: 3,
		ObstacleEvery: 20,
		BoostEvery:    50,
		PropEvery:     5,
		SafeZone:      20,
		HazardSafety:  0.8,
	}
}

// Generate builds a fresh track. The rng drives hazard placement only;
// curves and banding are deterministic. Passing an identically seeded
// rng reproduces the track exactly.
func Generate(p Params, rng *rand.Rand) *Track {
	t := &Track{
		Segments:      make([]Segment, p.SegmentCount),
		SegmentLength: p.SegmentLength,
	}

	for n := 0; n < p.SegmentCount; n++ {
		seg := Segment{
			Index:   n,
			P1:      Point{Z: float64(n) * p.SegmentLength},
			P2:      Point{Z: float64(n+1) * p.SegmentLength},
			Curve:   curveFor(n, p.CurveStrength),
			Palette: paletteFor(n, p.SegmentCount, p.RumbleLength),
		}
		seedSprites(&seg, n, p, rng)
		t.Segments[n] = seg
	}
	return t
}

func curveFor(n int, strength float64) float64 {
	switch {
	case n > curveRightFrom && n < curveRightTo:
		return strength
	case n > curveLeftFrom && n < curveLeftTo:
		return -strength
	default:
		return 0
	}
}

func seedSprites(seg *Segment, n int, p Params, rng *rand.Rand) {
	// Hazards stay out of the start run-up and the finish zone.
	hazardOK := n >= p.SafeZone && n < p.SegmentCount-finishZone

	if hazardOK && n%p.ObstacleEvery == 0 {
		seg.Sprites = append(seg.Sprites, Sprite{
			Kind:   SpriteObstacle,
			Offset: hazardOffset(p, rng),
			Width:  obstacleWidth,
			Height: obstacleHeight,
		})
	}
	if hazardOK && n%p.BoostEvery == 0 {
		seg.Sprites = append(seg.Sprites, Sprite{
			Kind:   SpriteBoost,
			Offset: hazardOffset(p, rng),
			Width:  boostWidth,
			Height: boostHeight,
		})
	}
	if n%p.PropEvery == 0 {
		// Roadside props sit beyond the drivable edge on both sides.
		left := -(1.2 + rng.Float64()*2)
		right := 1.2 + rng.Float64()*2
		seg.Sprites = append(seg.Sprites,
			Sprite{Kind: SpriteProp, Offset: left, Width: propWidth, Height: propHeight},
			Sprite{Kind: SpriteProp, Offset: right, Width: propWidth, Height: propHeight},
		)
	}
}

// hazardOffset picks a lateral position inside the drivable half-width
// scaled down by the safety factor, so a hazard never blocks the full
// road edge-to-edge.
func hazardOffset(p Params, rng *rand.Rand) float64 {
	return (rng.Float64()*2 - 1) * p.HazardSafety
}
