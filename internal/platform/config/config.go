// Package config define la configuración del proceso y su carga.
// Capas (de menor a mayor precedencia): defaults, archivo YAML
// opcional (PETS_CONFIG), variables de entorno con prefijo PETS_.
package config

import "pet-health-records/internal/platform/logger"

type Config struct {
	// Addr es la dirección de escucha HTTP, ej ":8080".
	Addr string `koanf:"addr"`

	// DBDSN: si viene, se usa Postgres; si no, repos en memoria.
	DBDSN string `koanf:"db_dsn"`

	LogLevel  string `koanf:"log_level"`  // debug|info|warn|error
	LogFormat string `koanf:"log_format"` // text|json
	AppName   string `koanf:"app_name"`

	ReadTimeoutSec  int `koanf:"read_timeout_sec"`
	WriteTimeoutSec int `koanf:"write_timeout_sec"`
}

// Default devuelve la configuración por defecto del servicio.
func Default() *Config {
	return &Config{
		Addr:            ":8080",
		DBDSN:           "",
		LogLevel:        "info",
		LogFormat:       "text",
		AppName:         "pet-health-records",
		ReadTimeoutSec:  5,
		WriteTimeoutSec: 10,
	}
}

// LoggerOptions traduce la config a opciones del logger.
func (c *Config) LoggerOptions() logger.Options {
	return logger.Options{
		Level:  logger.ParseLevel(c.LogLevel),
		Format: logger.ParseFormat(c.LogFormat),
		App:    c.AppName,
	}
}
