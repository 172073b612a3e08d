package main

import (
	"os"

	"github.com/go-kit/kit/log"
)

func main() {
	// Logger domain.
	var logger log.Logger
	{
		logger = log.NewLogfmtLogger(os.Stderr)
		logger = log.With(logger, "ts", log.DefaultTimestampUTC)
		logger = log.With(logger, "caller", log.DefaultCaller)
	}

	rootCmd := newRoot(logger).Command()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
