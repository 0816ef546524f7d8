package config

import "time"

// Config holds all application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Store  StoreConfig  `mapstructure:"store"  validate:"required"`
	Docs   DocsConfig   `mapstructure:"docs"   validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gte=1,lte=300"`
}

// ShutdownTimeout returns the graceful shutdown budget as a time.Duration.
func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// StoreConfig contains settings for the in-memory task collection.
type StoreConfig struct {
	// IDStrategy is "length" (id = collection size + 1) or "sequence"
	// (monotonic counter, ids never reused).
	IDStrategy string `mapstructure:"id_strategy" validate:"required,oneof=length sequence"`
	// Seed preloads the five starter tasks.
	Seed bool `mapstructure:"seed"`
}

// DocsConfig contains settings for the generated API documentation.
// Load strips trailing slashes from Path, so "/api-docs/" becomes "/api-docs".
type DocsConfig struct {
	Path string `mapstructure:"path" validate:"required,startswith=/"`
}
