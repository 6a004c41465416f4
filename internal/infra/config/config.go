package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yanqian/cosmic-rhythm/internal/domain/caldate"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	App       AppConfig       `yaml:"app"`
	HTTP      HTTPConfig      `yaml:"http"`
	Biorhythm BiorhythmConfig `yaml:"biorhythm"`
	Maya      MayaConfig      `yaml:"maya"`
	Dress     DressConfig     `yaml:"dress"`
	History   HistoryConfig   `yaml:"history"`
	Cache     CacheConfig     `yaml:"cache"`
}

// AppConfig holds process wide settings.
type AppConfig struct {
	// Timezone decides which calendar day "today" is. Empty means the host zone.
	Timezone string `yaml:"timezone"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// BiorhythmConfig bounds range queries and sizes forecasts.
type BiorhythmConfig struct {
	MaxRangeDays int `yaml:"maxRangeDays"`
	ForecastDays int `yaml:"forecastDays"`
}

// MayaConfig pins the Tzolk'in count.
type MayaConfig struct {
	AnchorDate   string `yaml:"anchorDate"`
	AnchorKin    int    `yaml:"anchorKin"`
	MaxRangeDays int    `yaml:"maxRangeDays"`
}

// DressConfig bounds dress advice ranges.
type DressConfig struct {
	MaxRangeDays int `yaml:"maxRangeDays"`
}

// HistoryConfig sizes the recent-query lists.
type HistoryConfig struct {
	Capacity int `yaml:"capacity"`
}

// CacheConfig controls the Maya day reading cache.
// Capacity bounds the in-process store used when Valkey is off or down.
type CacheConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Addr     string        `yaml:"addr"`
	TTL      time.Duration `yaml:"ttl"`
	Prefix   string        `yaml:"prefix"`
	Capacity int           `yaml:"capacity"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("APP_TIMEZONE"); v != "" {
		cfg.App.Timezone = v
	}
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("BIORHYTHM_MAX_RANGE_DAYS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Biorhythm.MaxRangeDays = parsed
		}
	}
	if v := os.Getenv("MAYA_ANCHOR_DATE"); v != "" {
		cfg.Maya.AnchorDate = v
	}
	if v := os.Getenv("MAYA_ANCHOR_KIN"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Maya.AnchorKin = parsed
		}
	}
	if v := os.Getenv("HISTORY_CAPACITY"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.History.Capacity = parsed
		}
	}
	if v := os.Getenv("CACHE_ENABLED"); v != "" {
		cfg.Cache.Enabled = parseBool(v)
	}
	if v := os.Getenv("CACHE_ADDR"); v != "" {
		cfg.Cache.Addr = v
	}
	if v := os.Getenv("CACHE_CAPACITY"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Cache.Capacity = parsed
		}
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Cache.TTL = parsed
		}
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 120,
				Burst:             30,
			},
		},
		Biorhythm: BiorhythmConfig{
			MaxRangeDays: 366,
			ForecastDays: 7,
		},
		Maya: MayaConfig{
			AnchorDate:   "2012-12-21",
			AnchorKin:    260,
			MaxRangeDays: 366,
		},
		Dress: DressConfig{
			MaxRangeDays: 366,
		},
		History: HistoryConfig{
			Capacity: 6,
		},
		Cache: CacheConfig{
			TTL:      24 * time.Hour,
			Prefix:   "maya",
			Capacity: 1024,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.Biorhythm.MaxRangeDays <= 0 {
		return errors.New("biorhythm.maxRangeDays must be positive")
	}
	if c.Biorhythm.ForecastDays <= 0 {
		return errors.New("biorhythm.forecastDays must be positive")
	}
	if _, err := caldate.Parse(c.Maya.AnchorDate); err != nil {
		return fmt.Errorf("maya.anchorDate: %w", err)
	}
	if c.Maya.AnchorKin < 1 || c.Maya.AnchorKin > 260 {
		return errors.New("maya.anchorKin must be within 1..260")
	}
	if c.Maya.MaxRangeDays <= 0 {
		return errors.New("maya.maxRangeDays must be positive")
	}
	if c.Dress.MaxRangeDays <= 0 {
		return errors.New("dress.maxRangeDays must be positive")
	}
	if c.History.Capacity <= 0 {
		return errors.New("history.capacity must be positive")
	}
	if c.Cache.TTL < 0 {
		return errors.New("cache.ttl cannot be negative")
	}
	if c.Cache.Capacity <= 0 {
		return errors.New("cache.capacity must be positive")
	}
	if c.Cache.Enabled && strings.TrimSpace(c.Cache.Addr) == "" {
		return errors.New("cache.addr cannot be empty when the cache is enabled")
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("app.timezone: %w", err)
	}
	return nil
}
