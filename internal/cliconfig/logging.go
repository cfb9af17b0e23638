package cliconfig

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/seqsift/seqsift/pkg/log"
)

// Logger builds the CLI logger: human-readable console output on stderr,
// debug level when verbose is set.
func Logger(verbose bool) log.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	zl := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return log.NewZerologAdapterWithLogger(zl)
}
