package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "Rushline", cfg.Window.Title)
	assert.Equal(t, 500, cfg.Track.SegmentCount)
	assert.Equal(t, 200.0, cfg.Track.SegmentLength)
	assert.Equal(t, 3, cfg.Track.RumbleLength)
	assert.Equal(t, int64(0), cfg.Track.Seed)
	assert.Equal(t, 12000.0, cfg.Physics.MaxSpeed)
	assert.Equal(t, cfg.Physics.MaxSpeed/4, cfg.Physics.OffRoadLimit)
	assert.Equal(t, 1.5, cfg.Physics.BoostFactor)
	assert.Equal(t, 3.0, cfg.Physics.BoostDuration)
	assert.Equal(t, 0.05, cfg.Physics.SteerNudge)
	assert.Equal(t, 2000.0, cfg.Render.RoadWidth)
	assert.Equal(t, 300, cfg.Render.DrawDistance)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, "rushline.db", cfg.DB.Path)
}

func TestLoad_WithConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	raw := `{
		"logLevel": "debug",
		"track": { "segmentCount": 120, "seed": 42 },
		"physics": { "maxSpeed": 9000 },
		"audio": { "enabled": false }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rushline.cfg.json"), []byte(raw), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 120, cfg.Track.SegmentCount)
	assert.Equal(t, int64(42), cfg.Track.Seed)
	assert.Equal(t, 9000.0, cfg.Physics.MaxSpeed)
	assert.False(t, cfg.Audio.Enabled)

	// untouched keys keep their defaults
	assert.Equal(t, 200.0, cfg.Track.SegmentLength)
	assert.Equal(t, 2400.0, cfg.Physics.Acceleration)
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rushline.cfg.json"), []byte("{not json"), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}
