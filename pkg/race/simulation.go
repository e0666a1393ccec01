package race

import (
	"math"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"rushline/pkg/track"
)

// maxTick bounds a single simulated step. A suspended window can hand
// us an arbitrarily old timestamp; one second of simulation is the most
// a single tick is allowed to cover.
const maxTick = 1.0

// displaySpeedDivisor converts world units per second into the HUD
// speed readout (120 at the default max speed).
const displaySpeedDivisor = 100.0

// Simulation owns the track and car state for one race and advances
// them tick by tick. It is not safe for concurrent use; the frame
// driver, physics and renderer all run on the one game goroutine.
type Simulation struct {
	params      Params
	trackParams track.Params
	rng         *rand.Rand
	log         zerolog.Logger
	now         func() time.Time

	tr    *track.Track
	car   Car
	phase Phase

	startedAt time.Time
	lastLap   float64
	bestLap   float64
	hasBest   bool
	newBest   bool

	onEvent func(Event)
}

// NewSimulation builds a simulation in the START phase. The rng drives
// track hazard placement; seed it explicitly for reproducible courses.
func NewSimulation(p Params, tp track.Params, rng *rand.Rand, log zerolog.Logger) *Simulation {
	s := &Simulation{
		params:      p,
		trackParams: tp,
		rng:         rng,
		log:         log.With().Str("component", "race").Logger(),
		now:         time.Now,
		phase:       PhaseStart,
	}
	s.ResetTrack()
	return s
}

// SetEventHandler registers the shell callback for race events. Events
// fire synchronously from Tick.
func (s *Simulation) SetEventHandler(fn func(Event)) {
	s.onEvent = fn
}

// SetClock replaces the wall clock, for tests.
func (s *Simulation) SetClock(now func() time.Time) {
	s.now = now
}

// SetBestLap seeds the best-lap record, typically from the persisted
// store at startup.
func (s *Simulation) SetBestLap(seconds float64) {
	s.bestLap = seconds
	s.hasBest = true
}

// Track exposes the current course to the renderer.
func (s *Simulation) Track() *track.Track {
	return s.tr
}

// Car exposes the current car state to the renderer.
func (s *Simulation) Car() Car {
	return s.car
}

// Phase returns the current lifecycle phase.
func (s *Simulation) Phase() Phase {
	return s.phase
}

// ResetTrack throws the old course away, generates a fresh one and
// zeroes the car. Called at race start and on retry.
func (s *Simulation) ResetTrack() {
	s.tr = track.Generate(s.trackParams, s.rng)
	s.car = Car{}
	s.newBest = false
}

// Start begins a race. From FINISHED this is a retry and regenerates
// the course first.
func (s *Simulation) Start() {
	if s.phase == PhaseFinished {
		s.ResetTrack()
	}
	s.phase = PhasePlaying
	s.startedAt = s.now()
	s.log.Info().Float64("trackLength", s.tr.Length()).Msg("race started")
}

// ToMenu returns to the START phase without touching the best lap.
func (s *Simulation) ToMenu() {
	s.phase = PhaseStart
}

// Steer nudges the car sideways. Steering authority scales with speed,
// so a near-stationary car barely turns. The caller repeats the call
// while an input is held; cadence is its business.
func (s *Simulation) Steer(direction int) {
	if s.phase != PhasePlaying {
		return
	}
	s.car.PlayerX += s.params.SteerNudge * (s.car.Speed / s.params.MaxSpeed) * float64(direction)
	s.car.PlayerX = clamp(s.car.PlayerX, -2, 2)
}

// Tick advances the simulation by dt seconds, clamped to one second.
func (s *Simulation) Tick(dt float64) {
	if s.phase != PhasePlaying {
		return
	}
	if dt > maxTick {
		dt = maxTick
	}

	// 1-2. accelerate toward the current cap without overshooting.
	// A cap drop (boost just expired) snaps the speed back to it.
	target := s.params.MaxSpeed
	if s.car.BoostTimer > 0 {
		target *= s.params.BoostFactor
	}
	if s.car.Speed > target {
		s.car.Speed = target
	} else {
		s.car.Speed = math.Min(s.car.Speed+s.params.Acceleration*dt, target)
	}

	// 3. rough terrain drags an off-road car down to the off-road
	// limit, never below it.
	if math.Abs(s.car.PlayerX) > 1 && s.car.Speed > s.params.OffRoadLimit {
		s.car.Speed = math.Max(s.car.Speed-s.params.OffRoadDecel*dt, s.params.OffRoadLimit)
	}
	if s.car.Speed < 0 {
		s.car.Speed = 0
	}

	// 4. advance and detect the finish line.
	s.car.Position += s.car.Speed * dt
	if s.car.Position >= s.tr.Length() {
		s.finish()
	}

	// 5. collisions only matter in the segment under the car.
	s.resolveCollisions()

	// 6. boost countdown; callers only ever test > 0, so no clamp.
	s.car.BoostTimer -= dt
}

func (s *Simulation) finish() {
	s.phase = PhaseFinished
	s.lastLap = s.now().Sub(s.startedAt).Seconds()
	s.log.Info().Float64("lap", s.lastLap).Msg("race finished")
	s.emit(EventFinished)

	if !s.hasBest || s.lastLap < s.bestLap {
		s.bestLap = s.lastLap
		s.hasBest = true
		s.newBest = true
		s.log.Info().Float64("best", s.bestLap).Msg("new best lap")
		s.emit(EventNewBest)
	}
}

func (s *Simulation) resolveCollisions() {
	seg := s.tr.AtPosition(s.car.Position)
	for i := 0; i < len(seg.Sprites); {
		sp := seg.Sprites[i]
		if sp.Kind == track.SpriteProp || !s.overlaps(sp) {
			i++
			continue
		}
		switch sp.Kind {
		case track.SpriteObstacle:
			s.car.Speed *= 0.5
			s.log.Debug().Int("segment", seg.Index).Msg("obstacle hit")
			s.emit(EventObstacleHit)
		case track.SpriteBoost:
			s.car.BoostTimer = s.params.BoostDuration
			s.log.Debug().Int("segment", seg.Index).Msg("boost collected")
			s.emit(EventBoostCollected)
		}
		seg.RemoveSprite(i)
	}
}

// overlaps reports whether the car's lateral position falls within the
// sprite's half-width, both in road-half-width units.
func (s *Simulation) overlaps(sp track.Sprite) bool {
	halfW := sp.Width / 2 / s.params.RoadWidth
	return math.Abs(s.car.PlayerX-sp.Offset) < halfW
}

// Snapshot publishes the UI-facing values for this frame.
func (s *Simulation) Snapshot() Snapshot {
	elapsed := 0.0
	switch s.phase {
	case PhasePlaying:
		elapsed = s.now().Sub(s.startedAt).Seconds()
	case PhaseFinished:
		elapsed = s.lastLap
	}

	pct := int(s.car.Position / s.tr.Length() * 100)
	if pct > 100 {
		pct = 100
	}

	return Snapshot{
		Phase:           s.phase,
		DisplaySpeed:    int(math.Round(s.car.Speed / displaySpeedDivisor)),
		DistancePercent: pct,
		ElapsedSeconds:  math.Round(elapsed*10) / 10,
		Boosted:         s.car.BoostTimer > 0,
		LastLap:         s.lastLap,
		BestLap:         s.bestLap,
		HasBestLap:      s.hasBest,
		NewBest:         s.newBest,
	}
}

func (s *Simulation) emit(ev Event) {
	if s.onEvent != nil {
		s.onEvent(ev)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
