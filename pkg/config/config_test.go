package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	setDefaults()
	t.Cleanup(viper.Reset)
}

func TestDefaults(t *testing.T) {
	resetViper(t)

	assert.Equal(t, 8080, viper.GetInt("server.port"))
	assert.Equal(t, "./data/sceneflow.db", viper.GetString("database.path"))
	assert.InDelta(t, 6.0, viper.GetFloat64("playback.image_segment_duration"), 0.001)
	assert.Equal(t, 2, viper.GetInt("processing.workers"))
	assert.Equal(t, 2*time.Second, viper.GetDuration("processing.poll_interval"))
	assert.Equal(t, "./data/render-specs", viper.GetString("storage.export_dir"))
	assert.Equal(t, "1080p", viper.GetString("render.resolution"))
	assert.Equal(t, 24, viper.GetInt("render.fps"))
	assert.True(t, viper.GetBool("rate_limiting.enabled"))
}

func TestEnvironmentOverride(t *testing.T) {
	resetViper(t)

	t.Setenv("SCENEFLOW_SERVER_PORT", "9090")
	t.Setenv("SCENEFLOW_RENDER_RESOLUTION", "720p")

	viper.SetEnvPrefix("SCENEFLOW")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	assert.Equal(t, 9090, viper.GetInt("server.port"))
	assert.Equal(t, "720p", viper.GetString("render.resolution"))
}

func TestValidateCorrectsBadValues(t *testing.T) {
	resetViper(t)

	viper.Set("processing.workers", 0)
	viper.Set("playback.image_segment_duration", -1)
	viper.Set("render.fps", 0)

	require.NoError(t, validate())

	assert.Equal(t, 2, viper.GetInt("processing.workers"))
	assert.InDelta(t, 6.0, viper.GetFloat64("playback.image_segment_duration"), 0.001)
	assert.Equal(t, 24, viper.GetInt("render.fps"))
}

func TestValidateRejectsBadPort(t *testing.T) {
	resetViper(t)

	viper.Set("server.port", 0)
	assert.Error(t, validate())

	viper.Set("server.port", 70000)
	assert.Error(t, validate())
}

func TestConfigStructUnmarshal(t *testing.T) {
	resetViper(t)

	cfg, err := GetConfig()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.InDelta(t, 6.0, cfg.Playback.ImageSegmentDuration, 0.001)
	assert.Equal(t, 120, cfg.RateLimiting.RequestsPerMinute)
	assert.True(t, cfg.Security.EnableCORS)
	require.NoError(t, cfg.Validate())
}

func TestConfigStructValidate(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Validate())

	cfg.Server.Port = 8080
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 2, cfg.Processing.Workers)
	assert.InDelta(t, 6.0, cfg.Playback.ImageSegmentDuration, 0.001)
}
