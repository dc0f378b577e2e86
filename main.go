package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// Version holds the build-time version string.
var Version = "unknown" // nolint:gochecknoglobals

func main() {
	flag.Parse()

	switch flag.Arg(0) { // nolint, TODO
	case "serve":
		if err := serve(); err != nil {
			log.Fatal(err)
		}
	case "migrate":
		if err := applyMigrations(); err != nil {
			log.Fatal(err)
		}
	case "version":
		fmt.Fprintf(os.Stdout, "PadelRanking %s\n", Version)
	case "dev:fixtures":
		if err := loadFixtures(); err != nil {
			log.Fatal(err)
		}
	case "help":
		fmt.Fprint(os.Stdout, help())
		return
	default:
		fmt.Fprint(os.Stderr, help())
		os.Exit(1)
	}
}

func help() string {
	return fmt.Sprintf(`
PadelRanking serves the TrueSkill padel leaderboard: it keeps local
snapshots of the rating backend in sync and renders them as standings,
charts, and game-entry forms.

Usage: %[1]s COMMAND [ARGS…]

COMMANDS
    serve        sync from the rating backend and run the web frontend
    migrate      create or upgrade the local snapshot cache schema
    dev:fixtures push default players and games for quick testing
    help         display this help
    version      display the current version
`,
		os.Args[0],
	)
}
