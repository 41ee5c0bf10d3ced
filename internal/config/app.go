package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type HolidaysConfig struct {
	// Базовый URL, год добавляется в конец пути.
	APIURL   string        `yaml:"api_url"`
	Timeout  time.Duration `yaml:"timeout"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
	// Расписание джобы блокировки праздников (cron, 5 полей).
	SyncCron string `yaml:"sync_cron"`
}

type PlansConfig struct {
	// Лимит активных будущих событий на бесплатном плане.
	FreeEventsLimit int `yaml:"free_events_limit"`
}

type Config struct {
	GRPCAddr  string `yaml:"grpc_addr"`
	HTTPAddr  string `yaml:"http_addr"`
	JWTSecret string `yaml:"jwt_secret"`
	LogLevel  string `yaml:"log_level"`

	DB       DBConfig       `yaml:"db"`
	Holidays HolidaysConfig `yaml:"holidays"`
	Plans    PlansConfig    `yaml:"plans"`
}

func Default() Config {
	return Config{
		GRPCAddr: ":50051",
		HTTPAddr: ":8080",
		LogLevel: "info",
		DB:       defaultDBConfig(),
		Holidays: HolidaysConfig{
			APIURL:   "https://brasilapi.com.br/api/feriados/v1",
			Timeout:  5 * time.Second,
			CacheTTL: 24 * time.Hour,
			SyncCron: "0 3 * * *",
		},
		Plans: PlansConfig{FreeEventsLimit: 20},
	}
}

// Load: дефолты, затем YAML из CONFIG_FILE (если задан), затем env.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.GRPCAddr = getEnv("GRPC_ADDR", c.GRPCAddr)
	c.HTTPAddr = getEnv("HTTP_ADDR", c.HTTPAddr)
	c.JWTSecret = getEnv("JWT_SECRET", c.JWTSecret)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)

	c.Holidays.APIURL = getEnv("HOLIDAYS_API_URL", c.Holidays.APIURL)
	c.Holidays.Timeout = getEnvDuration("HOLIDAYS_TIMEOUT", c.Holidays.Timeout)
	c.Holidays.CacheTTL = getEnvDuration("HOLIDAYS_CACHE_TTL", c.Holidays.CacheTTL)
	c.Holidays.SyncCron = getEnv("HOLIDAYS_SYNC_CRON", c.Holidays.SyncCron)

	c.Plans.FreeEventsLimit = getEnvInt("PLAN_FREE_EVENTS_LIMIT", c.Plans.FreeEventsLimit)

	c.DB.applyEnv()
}

func (c *Config) Validate() error {
	if c.GRPCAddr == "" && c.HTTPAddr == "" {
		return fmt.Errorf("invalid config: at least one of grpc_addr/http_addr is required")
	}
	if c.HTTPAddr != "" && c.JWTSecret == "" {
		return fmt.Errorf("invalid config: JWT_SECRET is required for the HTTP gateway")
	}
	if c.Plans.FreeEventsLimit < 0 {
		return fmt.Errorf("invalid config: free_events_limit must be >= 0")
	}
	if c.Holidays.Timeout <= 0 {
		c.Holidays.Timeout = 5 * time.Second
	}
	return c.DB.validate()
}
