package config

import "time"

// HTTP configures the API listener. APIToken, when set, is required as a
// bearer token on every API call.
type HTTP struct {
	ListenAddress     string        `env:"HTTP_LISTEN_ADDRESS"      envDefault:":8080"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT"    envDefault:"10s"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	LogFieldMaxLen    int           `env:"HTTP_LOG_FIELD_MAX_LEN"   envDefault:"4096"`
	APIToken          string        `env:"HTTP_API_TOKEN"           json:"-"`
}
