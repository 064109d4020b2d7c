package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"

	"github.com/dayanaadylkhanova/randomiser/internal/entity"
)

type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
	Locale    string `env:"RANDOMISER_LOCALE" envDefault:"en-US"`

	MaxListItems int `env:"MAX_LIST_ITEMS" envDefault:"10000"`
	MinQuantity  int `env:"MIN_QUANTITY" envDefault:"1"`
	MaxQuantity  int `env:"MAX_QUANTITY" envDefault:"100"`
	MinBound     int `env:"MIN_BOUND" envDefault:"-10000000"`
	MaxBound     int `env:"MAX_BOUND" envDefault:"10000000"`
}

// Parse loads configuration from environment variables.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MinQuantity > cfg.MaxQuantity {
		return Config{}, fmt.Errorf("MIN_QUANTITY %d exceeds MAX_QUANTITY %d", cfg.MinQuantity, cfg.MaxQuantity)
	}
	if cfg.MinBound > cfg.MaxBound {
		return Config{}, fmt.Errorf("MIN_BOUND %d exceeds MAX_BOUND %d", cfg.MinBound, cfg.MaxBound)
	}
	return cfg, nil
}

func (c Config) Limits() entity.Limits {
	return entity.Limits{
		MaxListItems: c.MaxListItems,
		MinQuantity:  c.MinQuantity,
		MaxQuantity:  c.MaxQuantity,
		MinBound:     c.MinBound,
		MaxBound:     c.MaxBound,
	}
}

// Language parses Locale, falling back to English when it is not a valid tag.
func (c Config) Language() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}
