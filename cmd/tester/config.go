package main

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ServerURL string `envconfig:"SERVER_URL" default:"http://localhost:8080"`
	Room      string `envconfig:"TESTER_ROOM" default:"testRoom"`
	// TESTER_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"TESTER_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
