package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/garrettladley/deadline/internal/xslog"
)

const Prefix = "DEADLINE_"

type Config struct {
	Timeout      time.Duration `env:"TIMEOUT"        envDefault:"30s"`
	Concurrency  int           `env:"CONCURRENCY"    envDefault:"4"`
	MaxBodyBytes int64         `env:"MAX_BODY_BYTES" envDefault:"10485760"`
	LogLevel     xslog.Level   `env:"LOG_LEVEL"      envDefault:"info"`
	LogFile      string        `env:"LOG_FILE"`
}

func Read() (Config, error) {
	return env.ParseAsWithOptions[Config](env.Options{Prefix: Prefix})
}
