package config

import (
	"time"
)

type Config struct {
	Interface string // empty means resolve from the detected platform
	Channel   int
	Settle    time.Duration

	Hop         bool
	HopInterval time.Duration

	Output OutputConfig
	Log    LogConfig
}

type OutputConfig struct {
	SightingsFile string
	NoUI          bool
}

type LogConfig struct {
	Level string
	File  string
}

func DefaultConfig() *Config {
	return &Config{
		Channel:     6,
		Settle:      500 * time.Millisecond,
		HopInterval: 250 * time.Millisecond,
		Output: OutputConfig{
			SightingsFile: "./ridwatch-sightings.json",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
