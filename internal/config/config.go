package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	envtype "github.com/garrettladley/healthion/internal/env"
	"github.com/garrettladley/healthion/internal/xslog"
)

const DefaultAPIURL = "http://localhost:8000"

type Config struct {
	Env      envtype.Environment `env:"HEALTHION_ENV" envDefault:"production"`
	LogLevel xslog.Level         `env:"LOG_LEVEL" envDefault:"info"`
	API      API
	Auth     Auth
}

type API struct {
	URL         string        `env:"HEALTHION_API_URL" envDefault:"http://localhost:8000"`
	Token       string        `env:"HEALTHION_TOKEN"`
	Timeout     time.Duration `env:"HEALTHION_TIMEOUT" envDefault:"30s"`
	RedirectURI string        `env:"HEALTHION_REDIRECT_URI"`
}

// Auth configures refreshing stored credentials. Refresh is disabled unless
// both fields are set.
type Auth struct {
	TokenURL string `env:"HEALTHION_AUTH_TOKEN_URL"`
	ClientID string `env:"HEALTHION_AUTH_CLIENT_ID"`
}

func (a Auth) RefreshEnabled() bool {
	return a.TokenURL != "" && a.ClientID != ""
}

func Read() (Config, error) {
	return env.ParseAs[Config]()
}

// EffectiveLogLevel forces debug logging for development builds.
func (c Config) EffectiveLogLevel() xslog.Level {
	if c.Env.IsDevelopment() {
		return xslog.LevelDebug
	}
	return c.LogLevel
}
