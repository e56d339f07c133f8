package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App     App
	HTTP    HTTP
	Probe   Probe
	Metrics Metrics
	Meter   Meter
}

type App struct {
	Name      string `env:"APP_NAME"       envDefault:"passmeter"`
	Version   string `env:"APP_VERSION"    envDefault:"dev"`
	LogLevel  string `env:"APP_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"APP_LOG_FORMAT" envDefault:"text"`
}

type Probe struct {
	ListenAddress string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
}

type Metrics struct {
	ListenAddress string `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
}

// Load reads an optional .env file, then the process environment, which
// wins over the file.
func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
