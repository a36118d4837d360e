// Package config loads runtime configuration for the PlaceKeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path to the SQLite database file
//	-g string   base URL of the geocoding service
//	-r string   base URL of the routing service
//	-t int      HTTP timeout for geo requests (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so it can be either a
// string like "10s" or integer nanoseconds:
//
//	{
//	  "database_path": "placekeeper.db",
//	  "geocoder_base_url": "https://nominatim.openstreetmap.org",
//	  "router_base_url": "https://router.project-osrm.org",
//	  "http_timeout": "10s",
//	  "location_status": "not_determined",
//	  "latitude": 56.9496,
//	  "longitude": 24.1052,
//	  "s3_endpoint": "http://127.0.0.1:9000",
//	  "s3_region": "us-east-1",
//	  "s3_bucket": "placekeeper",
//	  "s3_access_key": "...",
//	  "s3_secret_key": "..."
//	}
//
// Primary API
//
//   - type Config                     — holds all runtime settings
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
