package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Sort(ctx context.Context) error
	Search(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	Show(ctx context.Context) error
	Locate(ctx context.Context) error
	WhereAmI(ctx context.Context) error
	Route(ctx context.Context) error
	Backup(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the PlaceKeeper CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//   - help           — show available commands
//   - list | l       — list places in the current sort order
//   - sort           — change the sort order
//   - search         — filter places by name or location
//   - add            — add a place
//   - edit           — edit a place (interactive ID prompt)
//   - delete         — delete a place
//   - show           — show a single place
//   - locate         — look an address up on the map
//   - whereami       — show the current location
//   - route          — walking directions to a destination
//   - backup         — push place photos to the configured bucket
//   - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("pk> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn("Available commands: (l)ist, sort, search, add, edit, delete, show, locate, whereami, route, backup, exit")

		case "l", "list":
			_ = a.List(ctx)

		case "sort":
			_ = a.Sort(ctx)

		case "search":
			_ = a.Search(ctx)

		case "add":
			_ = a.Add(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "show":
			_ = a.Show(ctx)

		case "locate":
			_ = a.Locate(ctx)

		case "whereami":
			_ = a.WhereAmI(ctx)

		case "route":
			_ = a.Route(ctx)

		case "backup":
			_ = a.Backup(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
