package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is loaded from BTL_* environment variables. Everything has a
// sensible default so the app runs with no configuration at all.
type Config struct {
	// DBPath overrides the database location. Empty means the default
	// under the user's home directory.
	DBPath string `env:"BTL_DB"`

	// Audio enables spoken narration of quests and encouragement.
	Audio bool `env:"BTL_AUDIO" envDefault:"true"`

	// SpeechCmd is the external TTS command ("espeak", "say").
	SpeechCmd string `env:"BTL_SPEECH_CMD" envDefault:"espeak"`

	// SpeechRate is the narration speed in words per minute.
	SpeechRate int `env:"BTL_SPEECH_RATE" envDefault:"150"`

	// Debug switches on verbose structured logging to stderr.
	Debug bool `env:"BTL_DEBUG"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
