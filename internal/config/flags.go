package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/placekeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the SQLite database file (default from Config)
//	-g string   base URL of the geocoding service (default from Config)
//	-r string   base URL of the routing service (default from Config)
//	-t int      HTTP timeout for geo requests in seconds (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-g", "-r", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the database file")
	fs.StringVar(&cfg.GeocoderBaseURL, "g", cfg.GeocoderBaseURL, "geocoding service base URL")
	fs.StringVar(&cfg.RouterBaseURL, "r", cfg.RouterBaseURL, "routing service base URL")
	httpTimeout := fs.Int("t", int(cfg.HTTPTimeout.Seconds()), "geo request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.HTTPTimeout = time.Duration(*httpTimeout) * time.Second
}
