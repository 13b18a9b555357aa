// Command circulation-api serves the library circulation HTTP API on top of the Postgres event store.
//
//	circulation-api migrate   creates the events table and its indexes
//	circulation-api serve     starts the HTTP server
//
// Settings come from flags, the environment and optional .env files, see config.NewViper.
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
