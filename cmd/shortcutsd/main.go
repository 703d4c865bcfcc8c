package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/wrenlabs/shortcuts/internal/app"
)

func main() {
	// Best effort: local development reads settings from a .env file.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ shortcutsd failed to start: %v", err)
	}
}
