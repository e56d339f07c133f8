package config

import "time"

type Meter struct {
	SuggestionCount     int           `env:"METER_SUGGESTION_COUNT"     envDefault:"3"`
	SuggestionThreshold int           `env:"METER_SUGGESTION_THRESHOLD" envDefault:"60"`
	MaxAttempts         int           `env:"METER_MAX_ATTEMPTS"         envDefault:"1000"`
	CacheTTL            time.Duration `env:"METER_CACHE_TTL"            envDefault:"30s"`
	ReferenceEnabled    bool          `env:"METER_REFERENCE_ENABLED"    envDefault:"true"`
	WeakWords           []string      `env:"METER_WEAK_WORDS"           envSeparator:","`
}
