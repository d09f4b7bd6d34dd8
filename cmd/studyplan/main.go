// Command studyplan is the terminal client for the study plan service.
package main

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Iron-Ham/studyplan/internal/cmd"
)

func main() {
	// A .env file is optional; STUDYPLAN_* values in it seed the config.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning: could not read .env: %v", err)
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
