package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/samueljsb/gh-notifs/internal/cli"
)

func main() {
	// stdout is the render sink; diagnostics go to stderr only.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cli.Execute()
}
