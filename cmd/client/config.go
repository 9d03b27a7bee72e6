package main

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ServerAddr string `envconfig:"SERVER_ADDR" default:"localhost:8080"`
	// PINGLY_COLOURS enables colorized output for better readability
	Colours       bool          `envconfig:"PINGLY_COLOURS" default:"true"`
	LogLevel      string        `envconfig:"LOG_LEVEL" default:"WARN"`
	ReconnectWait time.Duration `envconfig:"RECONNECT_WAIT" default:"2s"`
	// Exclude users you already talk to from directory search results
	ExcludeKnownPeers bool `envconfig:"DIRECTORY_EXCLUDE_KNOWN_PEERS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
