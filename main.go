package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/fmuoria/resume-insight/cmd"
)

func main() {
	// Missing .env is fine, configuration falls back to env vars and flags.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
