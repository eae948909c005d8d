package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type API struct {
	BaseURL string        `yaml:"base_url" env:"API_BASE_URL" env-default:"http://localhost:4000"`
	Timeout time.Duration `yaml:"timeout" env:"API_TIMEOUT" env-default:"15s"`
}

type CacheConfig struct {
	Backend    string        `yaml:"backend" env:"CACHE_BACKEND" env-default:"memory"`
	DefaultTTL time.Duration `yaml:"default_ttl" env:"CACHE_DEFAULT_TTL" env-default:"5m"`
}

type RedisConnect struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Username string `yaml:"username" env:"REDIS_USER" env-default:""`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type Config struct {
	Env              string        `yaml:"env" env:"ENV" env-default:"production"`
	DefaultLanguage  string        `yaml:"default_language" env:"DEFAULT_LANGUAGE" env-default:"en"`
	StatePath        string        `yaml:"state_path" env:"STATE_PATH"`
	DebounceInterval time.Duration `yaml:"debounce_interval" env:"DEBOUNCE_INTERVAL" env-default:"300ms"`
	API              API           `yaml:"api"`
	Cache            CacheConfig   `yaml:"cache"`
	Redis            RedisConnect  `yaml:"redis"`
}

// MustLoad reads configuration from CONFIG_PATH when set, falling back to
// environment variables and defaults otherwise. The CLI must work with zero
// configuration against a local backend.
func MustLoad() *Config {
	return MustLoadPath(os.Getenv("CONFIG_PATH"))
}

// MustLoadPath is MustLoad with an explicit config file path, used by the
// CLI's -config flag.
func MustLoadPath(configPath string) *Config {

	var cfg Config

	if configPath != "" {

		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			log.Fatalf("config file does not exist: %s", configPath)
		}

		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			log.Fatalf("can not read config file: %s", err.Error())
		}

	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("can not read config from environment: %s", err.Error())
	}

	if cfg.StatePath == "" {
		cfg.StatePath = defaultStatePath()
	}

	return &cfg
}

func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "concierge-state.json"
	}

	return filepath.Join(dir, "concierge", "state.json")
}
