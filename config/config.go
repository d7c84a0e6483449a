package config

import (
	"fmt"
	"strings"
	"time"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log        Logger     `mapstructure:"logger" validate:"required"`
	API        API        `mapstructure:"api" validate:"required"`
	ScanEngine ScanEngine `mapstructure:"scan_engine" validate:"required"`
	Cache      Cache      `mapstructure:"cache"`
	RateLimit  RateLimit  `mapstructure:"rate_limit"`
}

type Logger struct {
	Level    string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Encoding string `mapstructure:"encoding" validate:"oneof=json console"`
}

type API struct {
	Port int `mapstructure:"port" validate:"gt=0,lte=65535"`
}

// ScanEngine points at the external service that computes buy/sell signals.
type ScanEngine struct {
	BaseURL          string        `mapstructure:"base_url" validate:"required,http_url"`
	ScanPath         string        `mapstructure:"scan_path" validate:"required,startswith=/"`
	Timeout          time.Duration `mapstructure:"timeout" validate:"gte=0"`
	MaxSymbolsPerMin int           `mapstructure:"max_symbols_per_min" validate:"gte=0"`
	ProbeCron        string        `mapstructure:"probe_cron"`
}

type Cache struct {
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
}

type RateLimit struct {
	RequestsPerSecond float64       `mapstructure:"requests_per_second" validate:"gte=0"`
	Burst             int           `mapstructure:"burst" validate:"gte=0"`
	ExpiresIn         time.Duration `mapstructure:"expires_in"`
}

// ScanURL is the absolute address the proxy forwards scans to.
func (s ScanEngine) ScanURL() string {
	return strings.TrimRight(s.BaseURL, "/") + s.ScanPath
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("api.port", 3000)
	v.SetDefault("scan_engine.base_url", "http://localhost:5000")
	v.SetDefault("scan_engine.scan_path", "/api/scan")
	v.SetDefault("scan_engine.timeout", time.Duration(0))
	v.SetDefault("scan_engine.max_symbols_per_min", 0)
	v.SetDefault("scan_engine.probe_cron", "@every 1m")
	v.SetDefault("cache.default_expiration", 30*time.Minute)
	v.SetDefault("cache.cleanup_interval", 10*time.Minute)
	v.SetDefault("rate_limit.requests_per_second", 10)
	v.SetDefault("rate_limit.burst", 30)
	v.SetDefault("rate_limit.expires_in", 3*time.Minute)
}

// Load reads config.yaml from the working directory (if any) and lets
// environment variables override it, e.g. SCAN_ENGINE_BASE_URL.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file loaded:", err)
	}
	return LoadFrom(".")
}

func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AddConfigPath(path)
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		fmt.Println("No config file loaded:", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := goValidator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
