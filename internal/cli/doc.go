// Package cli provides the interactive PlaceKeeper command-line client.
//
// It wires configuration, the embedded place store, the geocoding and routing
// clients, and an interactive REPL. Typical flow: open the database, print a
// prompt showing the current sort order, and execute user commands.
//
// Key features:
//   - Add / Edit places through a form (save requires a name)
//   - List / Sort / Search / Show / Delete places
//   - Locate an address on the map, show the current location
//   - Walking directions to a destination
//   - Photo backup to an S3-compatible bucket
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
