package race

// Phase is the race lifecycle state.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseFinished
	// PhaseGameOver is declared for the screen flow but nothing
	// transitions into it yet; there is no lose condition.
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseFinished:
		return "finished"
	case PhaseGameOver:
		return "gameover"
	}
	return "unknown"
}

// Event is emitted by the simulation when something the shell cares
// about happens (sound cues, persistence).
type Event int

const (
	EventObstacleHit Event = iota
	EventBoostCollected
	EventFinished
	EventNewBest
)

// Car is the player state. Position is an unbounded scalar along the
// track; segment lookups wrap it. PlayerX is in road-half-widths,
// clamped to [-2, 2]; beyond ±1 the car is off-road.
type Car struct {
	Position   float64
	PlayerX    float64
	Speed      float64
	BoostTimer float64
}

// Params is the physics tuning. Speeds and decelerations are world
// units per second.
type Params struct {
	MaxSpeed      float64
	Acceleration  float64
	OffRoadDecel  float64
	OffRoadLimit  float64
	BoostFactor   float64
	BoostDuration float64
	SteerNudge    float64
	RoadWidth     float64 // road half-width, for collision normalization
}

// DefaultParams matches the default 200-unit segment course.
func DefaultParams() Params {
	return Params{
		MaxSpeed:      12000,
		Acceleration:  2400,
		OffRoadDecel:  6000,
		OffRoadLimit:  3000,
		BoostFactor:   1.5,
		BoostDuration: 3,
		SteerNudge:    0.05,
		RoadWidth:     2000,
	}
}

// Snapshot is the immutable per-tick view handed to the presentation
// layer. The shell never reads simulation internals directly.
type Snapshot struct {
	Phase           Phase
	DisplaySpeed    int
	DistancePercent int
	ElapsedSeconds  float64 // one decimal
	Boosted         bool
	LastLap         float64
	BestLap         float64
	HasBestLap      bool
	NewBest         bool
}
