package main

import (
	"log"
	"os"

	"github.com/ethanbaker/names/internal/api"
	"github.com/ethanbaker/names/pkg/utils"
)

// Start the names API server
func main() {
	// Find env file
	envFile := ".env"
	if os.Getenv("ENV_FILE") != "" {
		envFile = os.Getenv("ENV_FILE")
	}

	// Load global config
	cfg := utils.NewConfigFromEnv(envFile)

	// Start
	if err := api.Start(cfg); err != nil {
		log.Fatal("[API-MAIN]: ", err)
	}
}
