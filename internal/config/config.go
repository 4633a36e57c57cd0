package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the storefront service configuration.
type Config struct {
	HTTP      HTTPConfig      `mapstructure:"http"`
	Session   SessionConfig   `mapstructure:"session"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Ban       BanConfig       `mapstructure:"ban"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Log       LogConfig       `mapstructure:"log"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`

	// TrustProxy takes the client IP from X-Forwarded-For and friends. Enable
	// only behind a proxy that overwrites those headers.
	TrustProxy bool `mapstructure:"trust_proxy"`
}

type SessionConfig struct {
	Secret string `mapstructure:"secret"`

	// TTL is the idle timeout of a session.
	TTL time.Duration `mapstructure:"ttl"`

	// TokenTTL is an absolute token lifetime; zero leaves expiry to the
	// session idle timeout.
	TokenTTL time.Duration `mapstructure:"token_ttl"`
}

type CatalogConfig struct {
	PriceStep int `mapstructure:"price_step"`

	// PriceCeiling overrides the ceiling derived from the catalog when non-zero.
	PriceCeiling int `mapstructure:"price_ceiling"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

type BanConfig struct {
	Strikes  int           `mapstructure:"strikes"`
	Window   time.Duration `mapstructure:"window"`
	Duration time.Duration `mapstructure:"duration"`
}

// RedisConfig selects the ban store; an empty Addr keeps bans in memory.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.trust_proxy", false)
	v.SetDefault("session.secret", "")
	v.SetDefault("session.ttl", 30*time.Minute)
	v.SetDefault("session.token_ttl", time.Duration(0))
	v.SetDefault("catalog.price_step", 100)
	v.SetDefault("catalog.price_ceiling", 0)
	v.SetDefault("ratelimit.rps", 5.0)
	v.SetDefault("ratelimit.burst", 10)
	v.SetDefault("ban.strikes", 5)
	v.SetDefault("ban.window", time.Minute)
	v.SetDefault("ban.duration", 15*time.Minute)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

// Load reads configuration from defaults, an optional config file and
// STOREFRONT_* environment variables, in increasing precedence. An empty
// path looks for config.yaml in the working directory.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that have no usable fallback.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Session.Secret) == "" {
		return errors.New("session.secret is required")
	}
	if c.Catalog.PriceStep <= 0 {
		return errors.New("catalog.price_step must be greater than zero")
	}
	if c.Catalog.PriceCeiling < 0 {
		return errors.New("catalog.price_ceiling cannot be negative")
	}
	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 {
		return errors.New("ratelimit.rps and ratelimit.burst must be greater than zero")
	}
	if c.Session.TTL < 0 || c.Session.TokenTTL < 0 {
		return errors.New("session.ttl and session.token_ttl cannot be negative")
	}
	if c.Ban.Strikes <= 0 {
		return errors.New("ban.strikes must be greater than zero")
	}
	if c.Ban.Window <= 0 || c.Ban.Duration <= 0 {
		return errors.New("ban.window and ban.duration must be greater than zero")
	}
	return nil
}
