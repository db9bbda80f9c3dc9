package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load arma la Config por capas:
//  1. defaults (Default())
//  2. archivo YAML si PETS_CONFIG está seteado
//  3. env con prefijo PETS_ (PETS_ADDR, PETS_DB_DSN, ...)
func Load() (*Config, error) {
	base := Default()

	k := koanf.New(".")

	if path := os.Getenv("PETS_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// PETS_DB_DSN -> db_dsn (claves planas, underscores preservados
	// para matchear los tags koanf del struct).
	envProvider := env.Provider("PETS_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "pets_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.Addr == "" {
		return nil, errors.New("addr must not be empty")
	}
	if cfg.ReadTimeoutSec <= 0 || cfg.WriteTimeoutSec <= 0 {
		return nil, errors.New("timeouts must be positive")
	}
	return &cfg, nil
}
