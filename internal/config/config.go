// Package config holds the runtime settings for the aggregator, parsed
// from THEORY_EVENTS_* environment variables with sensible defaults.
// Command-line flags override individual values where a flag exists.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the full runtime configuration.
//
// The UTC offset is a fixed number of hours and does not track
// daylight saving; the calendar feed publishes wall-clock times and
// historical outputs depend on the constant shift. The speaker
// heuristics (name length cutoff, denylist) are empirically tuned
// against the live sources.
type Config struct {
	DataDir     string `env:"THEORY_EVENTS_DATA_DIR" envDefault:"~/.local/share/theory-events"`
	CatalogPath string `env:"THEORY_EVENTS_CATALOG"`
	ManualPath  string `env:"THEORY_EVENTS_MANUAL" envDefault:"manual/events.yaml"`

	WindowYears    int `env:"THEORY_EVENTS_WINDOW_YEARS" envDefault:"2"`
	UTCOffsetHours int `env:"THEORY_EVENTS_UTC_OFFSET_HOURS" envDefault:"-5"`

	HTTPTimeout time.Duration `env:"THEORY_EVENTS_HTTP_TIMEOUT" envDefault:"30s"`
	UserAgent   string        `env:"THEORY_EVENTS_USER_AGENT" envDefault:"BostonTheoryEvents/1.0 (academic seminar aggregator)"`
	CacheTTL    time.Duration `env:"THEORY_EVENTS_CACHE_TTL" envDefault:"0s"`

	MaxNameLen      int      `env:"THEORY_EVENTS_MAX_NAME_LEN" envDefault:"50"`
	SpeakerDenylist []string `env:"THEORY_EVENTS_SPEAKER_DENYLIST" envSeparator:"," envDefault:"coffee welcome,lunch break,star room,hewlett room"`
	SpeakerMax      int      `env:"THEORY_EVENTS_SPEAKER_MAX" envDefault:"3"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
