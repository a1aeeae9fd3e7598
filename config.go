package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/secretnumber/internal/console"
)

// Config holds the ambient settings read from the environment.
// Game rules are fixed and not configurable.
type Config struct {
	LogLevel zerolog.Level // LOG_LEVEL, default warn
	Delay    time.Duration // ANIMATION_DELAY, default 50ms
}

func loadConfig() Config {
	cfg := Config{LogLevel: zerolog.WarnLevel, Delay: console.DefaultDelay}

	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "warn")); err == nil {
		cfg.LogLevel = lvl
	}

	raw := getEnv("ANIMATION_DELAY", "")
	if raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d < 0 {
			log.Warn().Str("value", raw).Msg("invalid ANIMATION_DELAY, using default")
		} else {
			cfg.Delay = d
		}
	}
	return cfg
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" { return v }
	return def
}
