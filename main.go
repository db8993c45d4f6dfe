package main

import (
	"os"

	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := newRootCommand(logger).Execute(); err != nil {
		logger.Error().Err(err).Msg("xladdr")
		os.Exit(1)
	}
}
