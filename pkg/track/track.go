package track

import "math"

// SpriteKind is a closed set of track-object kinds. Collision and draw
// sites switch over it exhaustively.
type SpriteKind int

const (
	// SpriteObstacle slows the car on contact and is destroyed.
	SpriteObstacle SpriteKind = iota
	// SpriteBoost raises the speed cap for a short time and is destroyed.
	SpriteBoost
	// SpriteProp is decorative roadside furniture with no collision.
	SpriteProp
)

// Sprite is an object attached to a segment. Offset is in normalized
// road-half-widths: 0 is the road center, ±1 the road edges, beyond ±1
// off-road. Width and Height are world units.
type Sprite struct {
	Kind   SpriteKind
	Offset float64
	Width  float64
	Height float64
}

// Point is a world point plus its last screen projection. The screen
// fields are per-frame scratch, rewritten by the renderer before every
// read; nothing may rely on them surviving a frame.
type Point struct {
	X, Y, Z float64

	ScreenX float64
	ScreenY float64
	ScreenW float64 // projected road half-width at this point
}

// Segment is one fixed-length slice of road. P1 is the near boundary at
// z = Index*L, P2 the far boundary at z = (Index+1)*L. Curve is the
// horizontal drift the road gains across this segment. Everything but
// the sprite list is immutable after generation.
type Segment struct {
	Index   int
	P1, P2  Point
	Curve   float64
	Palette Palette
	Sprites []Sprite
}

// RemoveSprite deletes the sprite at index i. Removal is permanent;
// consumed obstacles and boosts never come back.
func (s *Segment) RemoveSprite(i int) {
	s.Sprites = append(s.Sprites[:i], s.Sprites[i+1:]...)
}

// Track is the full ordered segment sequence for one race. Indexing
// wraps modulo the segment count, so the road loops.
type Track struct {
	Segments      []Segment
	SegmentLength float64
}

// Length returns the total track length in world units.
func (t *Track) Length() float64 {
	return float64(len(t.Segments)) * t.SegmentLength
}

// AtPosition returns the segment containing the given track position.
// Positions outside [0, Length) wrap.
func (t *Track) AtPosition(pos float64) *Segment {
	return &t.Segments[t.IndexAt(pos)]
}

// IndexAt returns the wrapped segment index for a track position.
func (t *Track) IndexAt(pos float64) int {
	i := int(math.Floor(pos/t.SegmentLength)) % len(t.Segments)
	if i < 0 {
		i += len(t.Segments)
	}
	return i
}
