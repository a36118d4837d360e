package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "placekeeper.db", c.DatabasePath)
	assert.Equal(t, "https://nominatim.openstreetmap.org", c.GeocoderBaseURL)
	assert.Equal(t, "https://router.project-osrm.org", c.RouterBaseURL)
	assert.Equal(t, 10*time.Second, c.HTTPTimeout)
	assert.Equal(t, "not_determined", c.LocationStatus)
	assert.Empty(t, c.S3Bucket, "backups are off until a bucket is configured")
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "placekeeper.db", cfg.DatabasePath)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
}

func TestHasPosition(t *testing.T) {
	var c Config
	assert.False(t, c.HasPosition())

	c.Latitude = 56.9496
	c.Longitude = 24.1052
	assert.True(t, c.HasPosition())
}
