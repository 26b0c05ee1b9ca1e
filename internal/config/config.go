// Package config provides environment-backed configuration for the decision
// engine service.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the service configuration. All values come from the
// environment; the entrypoint loads a .env file first when present.
type Config struct {
	Port              int
	DatabaseURL       string // optional; no persistence when empty
	GuardrailsEnabled bool   // staged-rollout flag for the whole engine
}

// Load reads service configuration from the environment.
// PORT defaults to 8080. GUARDRAILS_ENABLED defaults to true; set it to
// "false" to roll the engine out dark (every evaluation returns an empty
// bundle without invoking a detector).
func Load() (*Config, error) {
	cfg := &Config{
		Port:              8080,
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		GuardrailsEnabled: true,
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %w", err)
		}
		if port < 1 || port > 65535 {
			return nil, fmt.Errorf("PORT out of range: %d", port)
		}
		cfg.Port = port
	}

	if enabledStr := os.Getenv("GUARDRAILS_ENABLED"); enabledStr != "" {
		enabled, err := strconv.ParseBool(enabledStr)
		if err != nil {
			return nil, fmt.Errorf("invalid GUARDRAILS_ENABLED: %w", err)
		}
		cfg.GuardrailsEnabled = enabled
	}

	return cfg, nil
}
