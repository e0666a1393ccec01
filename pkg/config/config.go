package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds every tunable the game reads at startup. All values have
// working defaults; the config file only needs to list overrides.
type Config struct {
	LogLevel string        `mapstructure:"logLevel"`
	Window   WindowConfig  `mapstructure:"window"`
	Track    TrackConfig   `mapstructure:"track"`
	Physics  PhysicsConfig `mapstructure:"physics"`
	Render   RenderConfig  `mapstructure:"render"`
	Audio    AudioConfig   `mapstructure:"audio"`
	DB       DBConfig      `mapstructure:"db"`
}

// WindowConfig controls the OS window. The logical resolution is fixed;
// Scale only multiplies the window size.
type WindowConfig struct {
	Title string `mapstructure:"title"`
	Scale int    `mapstructure:"scale"`
}

// TrackConfig controls track generation.
type TrackConfig struct {
	SegmentCount  int     `mapstructure:"segmentCount"`
	SegmentLength float64 `mapstructure:"segmentLength"`
	RumbleLength  int     `mapstructure:"rumbleLength"`
	CurveStrength float64 `mapstructure:"curveStrength"`
	ObstacleEvery int     `mapstructure:"obstacleEvery"`
	BoostEvery    int     `mapstructure:"boostEvery"`
	PropEvery     int     `mapstructure:"propEvery"`
	SafeZone      int     `mapstructure:"safeZone"`
	HazardSafety  float64 `mapstructure:"hazardSafety"`
	Seed          int64   `mapstructure:"seed"` // 0 = random per run
}

// PhysicsConfig controls car dynamics. Speeds are world units per second.
type PhysicsConfig struct {
	MaxSpeed      float64 `mapstructure:"maxSpeed"`
	Acceleration  float64 `mapstructure:"acceleration"`
	OffRoadDecel  float64 `mapstructure:"offRoadDecel"`
	OffRoadLimit  float64 `mapstructure:"offRoadLimit"`
	BoostFactor   float64 `mapstructure:"boostFactor"`
	BoostDuration float64 `mapstructure:"boostDuration"`
	SteerNudge    float64 `mapstructure:"steerNudge"`
}

// RenderConfig controls the camera and road geometry.
type RenderConfig struct {
	RoadWidth    float64 `mapstructure:"roadWidth"` // half-width in world units
	CameraHeight float64 `mapstructure:"cameraHeight"`
	FieldOfView  float64 `mapstructure:"fieldOfView"` // degrees
	DrawDistance int     `mapstructure:"drawDistance"`
}

// AudioConfig controls sound output.
type AudioConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// DBConfig controls the best-lap store.
type DBConfig struct {
	Path string `mapstructure:"path"`
}

// Load reads rushline.cfg.json from configDir on top of the defaults.
// A missing config file is not an error; a malformed one is.
func Load(configDir string) (*Config, error) {
	setDefaults()

	viper.SetConfigName("rushline.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("window.title", "Rushline")
	viper.SetDefault("window.scale", 2)

	viper.SetDefault("track.segmentCount", 500)
	viper.SetDefault("track.segmentLength", 200.0)
	viper.SetDefault("track.rumbleLength", 3)
	viper.SetDefault("track.curveStrength", 3.0)
	viper.SetDefault("track.obstacleEvery", 20)
	viper.SetDefault("track.boostEvery", 50)
	viper.SetDefault("track.propEvery", 5)
	viper.SetDefault("track.safeZone", 20)
	viper.SetDefault("track.hazardSafety", 0.8)
	viper.SetDefault("track.seed", 0)

	viper.SetDefault("physics.maxSpeed", 12000.0)
	viper.SetDefault("physics.acceleration", 2400.0)
	viper.SetDefault("physics.offRoadDecel", 6000.0)
	viper.SetDefault("physics.offRoadLimit", 3000.0)
	viper.SetDefault("physics.boostFactor", 1.5)
	viper.SetDefault("physics.boostDuration", 3.0)
	viper.SetDefault("physics.steerNudge", 0.05)

	viper.SetDefault("render.roadWidth", 2000.0)
	viper.SetDefault("render.cameraHeight", 1000.0)
	viper.SetDefault("render.fieldOfView", 100.0)
	viper.SetDefault("render.drawDistance", 300)

	viper.SetDefault("audio.enabled", true)

	viper.SetDefault("db.path", "rushline.db")
}
