package track

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTrack(t *testing.T, seed int64) *Track {
	t.Helper()
	return Generate(DefaultParams(), rand.New(rand.NewSource(seed)))
}

func TestGenerate_SegmentGeometry(t *testing.T) {
	tr := testTrack(t, 1)
	p := DefaultParams()

	require.Len(t, tr.Segments, p.SegmentCount)
	assert.Equal(t, float64(p.SegmentCount)*p.SegmentLength, tr.Length())

	for i, seg := range tr.Segments {
		assert.Equal(t, i, seg.Index)
		assert.Equal(t, float64(i)*p.SegmentLength, seg.P1.Z)
		assert.Equal(t, float64(i+1)*p.SegmentLength, seg.P2.Z)
		assert.Greater(t, seg.P2.Z, seg.P1.Z)
		if i > 0 {
			assert.Greater(t, seg.P1.Z, tr.Segments[i-1].P1.Z, "z must be strictly increasing")
		}
	}
}

func TestGenerate_CurvePolicy(t *testing.T) {
	tr := testTrack(t, 1)
	p := DefaultParams()

	for _, seg := range tr.Segments {
		n := seg.Index
		switch {
		case n > 100 && n < 200:
			assert.Equal(t, p.CurveStrength, seg.Curve, "segment %d", n)
		case n > 300 && n < 400:
			assert.Equal(t, -p.CurveStrength, seg.Curve, "segment %d", n)
		default:
			assert.Zero(t, seg.Curve, "segment %d", n)
		}
	}
}

func TestGenerate_Banding(t *testing.T) {
	tr := testTrack(t, 1)

	for n := 0; n < 10; n++ {
		assert.Equal(t, paletteStart, tr.Segments[n].Palette, "segment %d", n)
	}
	for n := len(tr.Segments) - 10; n < len(tr.Segments); n++ {
		assert.Equal(t, paletteFinish, tr.Segments[n].Palette, "segment %d", n)
	}
	// rumble banding alternates every RumbleLength segments
	assert.Equal(t, paletteLight, tr.Segments[12].Palette)
	assert.Equal(t, paletteDark, tr.Segments[15].Palette)
}

func TestGenerate_HazardSeeding(t *testing.T) {
	tr := testTrack(t, 7)
	p := DefaultParams()

	for _, seg := range tr.Segments {
		for _, sp := range seg.Sprites {
			switch sp.Kind {
			case SpriteObstacle, SpriteBoost:
				assert.GreaterOrEqual(t, seg.Index, p.SafeZone,
					"hazard in safe start zone at segment %d", seg.Index)
				assert.Less(t, seg.Index, p.SegmentCount-10,
					"hazard in finish zone at segment %d", seg.Index)
				assert.LessOrEqual(t, sp.Offset, p.HazardSafety)
				assert.GreaterOrEqual(t, sp.Offset, -p.HazardSafety)
			case SpriteProp:
				assert.Greater(t, absOffset(sp.Offset), 1.0, "prop must sit off-road")
			}
		}
	}

	// cadence: every 20th eligible segment has an obstacle, every 50th a boost
	for n := p.SafeZone; n < p.SegmentCount-10; n++ {
		if n%p.ObstacleEvery == 0 {
			assert.True(t, hasKind(tr.Segments[n], SpriteObstacle), "segment %d", n)
		}
		if n%p.BoostEvery == 0 {
			assert.True(t, hasKind(tr.Segments[n], SpriteBoost), "segment %d", n)
		}
	}
}

func TestGenerate_SeedReproducible(t *testing.T) {
	a := testTrack(t, 99)
	b := testTrack(t, 99)
	c := testTrack(t, 100)

	require.Equal(t, len(a.Segments), len(b.Segments))
	assert.Equal(t, a.Segments, b.Segments)

	same := true
	for i := range a.Segments {
		if len(a.Segments[i].Sprites) != len(c.Segments[i].Sprites) {
			same = false
			break
		}
		for j := range a.Segments[i].Sprites {
			if a.Segments[i].Sprites[j] != c.Segments[i].Sprites[j] {
				same = false
			}
		}
	}
	assert.False(t, same, "different seeds should place hazards differently")
}

func TestIndexAt_WrapsModulo(t *testing.T) {
	tr := testTrack(t, 1)
	n := len(tr.Segments)
	length := tr.Length()

	cases := []struct {
		pos  float64
		want int
	}{
		{0, 0},
		{199.9, 0},
		{200, 1},
		{length - 1, n - 1},
		{length, 0},
		{length + 200, 1},
		{length * 3, 0},
		{-1, n - 1},
	}
	for _, tc := range cases {
		got := tr.IndexAt(tc.pos)
		assert.Equal(t, tc.want, got, "pos %.1f", tc.pos)
		assert.GreaterOrEqual(t, got, 0)
		assert.Less(t, got, n)
	}
}

func TestRemoveSprite(t *testing.T) {
	seg := Segment{Sprites: []Sprite{
		{Kind: SpriteObstacle, Offset: -0.5},
		{Kind: SpriteBoost, Offset: 0.2},
		{Kind: SpriteProp, Offset: 1.5},
	}}

	seg.RemoveSprite(1)
	require.Len(t, seg.Sprites, 2)
	assert.Equal(t, SpriteObstacle, seg.Sprites[0].Kind)
	assert.Equal(t, SpriteProp, seg.Sprites[1].Kind)
}

func hasKind(seg Segment, k SpriteKind) bool {
	for _, sp := range seg.Sprites {
		if sp.Kind == k {
			return true
		}
	}
	return false
}

func absOffset(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
