package config

import "time"

// Config holds runtime settings for the PlaceKeeper CLI.
//
// Fields:
//   - DatabasePath: path of the embedded SQLite file.
//   - GeocoderBaseURL / RouterBaseURL: base URLs of the Nominatim- and
//     OSRM-compatible services used for lookups and walking routes.
//   - HTTPTimeout: per-request timeout for geo HTTP calls.
//   - LocationStatus: location-permission state ("not_determined", "denied",
//     "restricted", "when_in_use", "always").
//   - Latitude/Longitude: the configured current position. Both zero means
//     no position is configured.
//   - S3*: optional photo-backup bucket settings; an empty S3Bucket disables
//     backups.
type Config struct {
	DatabasePath    string
	GeocoderBaseURL string
	RouterBaseURL   string
	HTTPTimeout     time.Duration
	LocationStatus  string
	Latitude        float64
	Longitude       float64
	S3Endpoint      string
	S3Region        string
	S3Bucket        string
	S3AccessKey     string
	S3SecretKey     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "placekeeper.db"
	c.GeocoderBaseURL = "https://nominatim.openstreetmap.org"
	c.RouterBaseURL = "https://router.project-osrm.org"
	c.HTTPTimeout = 10 * time.Second
	c.LocationStatus = "not_determined"
	c.S3Region = "us-east-1"
}

// HasPosition reports whether a current position is configured.
func (c *Config) HasPosition() bool {
	return c.Latitude != 0 || c.Longitude != 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
