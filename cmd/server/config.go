package main

import (
	"fmt"

	"github.com/phrazzld/task-api/internal/config"
)

// loadAppConfig loads the application configuration from the environment,
// an optional .env file and an optional config.yaml.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
