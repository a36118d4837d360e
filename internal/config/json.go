package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/placekeeper/internal/flagx"
	"github.com/dmitrijs2005/placekeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify the timeout either as a
// string like "10s" or as integer nanoseconds. After parsing, values are
// copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	DatabasePath    string         `json:"database_path"`
	GeocoderBaseURL string         `json:"geocoder_base_url"`
	RouterBaseURL   string         `json:"router_base_url"`
	HTTPTimeout     timex.Duration `json:"http_timeout"`
	LocationStatus  string         `json:"location_status"`
	Latitude        float64        `json:"latitude"`
	Longitude       float64        `json:"longitude"`
	S3Endpoint      string         `json:"s3_endpoint"`
	S3Region        string         `json:"s3_region"`
	S3Bucket        string         `json:"s3_bucket"`
	S3AccessKey     string         `json:"s3_access_key"`
	S3SecretKey     string         `json:"s3_secret_key"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the JSON into JsonConfig.
//   - Copies set fields into the provided Config; omitted fields keep their
//     earlier values.
//   - Panics on read or unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	// Resolve file path from flags.
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.GeocoderBaseURL != "" {
		cfg.GeocoderBaseURL = jc.GeocoderBaseURL
	}
	if jc.RouterBaseURL != "" {
		cfg.RouterBaseURL = jc.RouterBaseURL
	}
	if jc.HTTPTimeout.Duration != 0 {
		cfg.HTTPTimeout = time.Duration(jc.HTTPTimeout.Duration)
	}
	if jc.LocationStatus != "" {
		cfg.LocationStatus = jc.LocationStatus
	}
	if jc.Latitude != 0 || jc.Longitude != 0 {
		cfg.Latitude = jc.Latitude
		cfg.Longitude = jc.Longitude
	}
	if jc.S3Endpoint != "" {
		cfg.S3Endpoint = jc.S3Endpoint
	}
	if jc.S3Region != "" {
		cfg.S3Region = jc.S3Region
	}
	if jc.S3Bucket != "" {
		cfg.S3Bucket = jc.S3Bucket
	}
	if jc.S3AccessKey != "" {
		cfg.S3AccessKey = jc.S3AccessKey
	}
	if jc.S3SecretKey != "" {
		cfg.S3SecretKey = jc.S3SecretKey
	}
}
