package main

import (
	"fmt"
	"os"

	"github.com/rohanthewiz/logger"
)

func main() {
	// Initialize logger; the configured level is applied once config loads
	logger.SetLogLevel("info")

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
