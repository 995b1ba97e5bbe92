package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	SessionDriverMemory = "memory"
	SessionDriverRedis  = "redis"
)

type Config struct {
	App struct {
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"app"`
	Session struct {
		Driver     string        `mapstructure:"driver"`
		TTL        time.Duration `mapstructure:"ttl"`
		CookieName string        `mapstructure:"cookie_name"`
	} `mapstructure:"session"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`
	Assets struct {
		Dir string `mapstructure:"dir"`
	} `mapstructure:"assets"`
}

// LoadConfig reads .env, then config.yaml from the given paths (default "."),
// then the environment. Later sources win.
func LoadConfig(paths ...string) (cfg Config, err error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	for _, p := range paths {
		if loadErr := godotenv.Load(strings.TrimSuffix(p, "/") + "/.env"); loadErr == nil {
			break
		}
	}

	v := viper.New()
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if readErr := v.ReadInConfig(); readErr != nil {
		log.Printf("note: config.yaml not found, using defaults and environment. Error: %v", readErr)
	}

	v.SetDefault("app.port", "8080")
	v.SetDefault("app.env", "development")
	v.SetDefault("session.driver", SessionDriverMemory)
	v.SetDefault("session.ttl", 30*time.Minute)
	v.SetDefault("session.cookie_name", "portfolio_session")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("assets.dir", "./assets")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("app.port", "APP_PORT")
	v.BindEnv("app.env", "APP_ENV")
	v.BindEnv("session.driver", "SESSION_DRIVER")
	v.BindEnv("session.ttl", "SESSION_TTL")
	v.BindEnv("session.cookie_name", "SESSION_COOKIE_NAME")
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("redis.db", "REDIS_DB")
	v.BindEnv("assets.dir", "ASSETS_DIR")

	if err = v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	err = cfg.validate()
	return
}

func (c Config) validate() error {
	switch c.Session.Driver {
	case SessionDriverMemory, SessionDriverRedis:
	default:
		return fmt.Errorf("unsupported session driver %q", c.Session.Driver)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session ttl must be positive, got %s", c.Session.TTL)
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("session cookie name is required")
	}
	return nil
}
