package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type DBConfig struct {
	// postgres | sqlite
	Driver string `yaml:"driver"`
	// Путь к файлу для sqlite; ":memory:" для тестов.
	SQLitePath string `yaml:"sqlite_path"`

	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	User            string `yaml:"user"`
	Password        string `yaml:"password"`
	Name            string `yaml:"name"`
	SSLMode         string `yaml:"sslmode"`
	TimeZone        string `yaml:"timezone"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifeTime int    `yaml:"conn_max_lifetime_min"` // минут
}

func defaultDBConfig() DBConfig {
	return DBConfig{
		Driver:          "postgres",
		SQLitePath:      "agenda.db",
		Host:            "postgres",
		Port:            5432,
		User:            "agenda",
		Password:        "agenda",
		Name:            "agenda_db",
		SSLMode:         "disable",
		TimeZone:        "America/Sao_Paulo",
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifeTime: 30,
	}
}

// applyEnv: переменные окружения перекрывают файл и дефолты.
func (c *DBConfig) applyEnv() {
	c.Driver = getEnv("DB_DRIVER", c.Driver)
	c.SQLitePath = getEnv("DB_SQLITE_PATH", c.SQLitePath)
	c.Host = getEnv("DB_HOST", c.Host)
	c.User = getEnv("DB_USER", c.User)
	c.Password = getEnv("DB_PASSWORD", c.Password)
	c.Name = getEnv("DB_NAME", c.Name)
	c.SSLMode = getEnv("DB_SSLMODE", c.SSLMode)
	c.TimeZone = getEnv("DB_TIMEZONE", c.TimeZone)
	c.Port = getEnvInt("DB_PORT", c.Port)
	c.MaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", c.MaxOpenConns)
	c.MaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", c.MaxIdleConns)
	c.ConnMaxLifeTime = getEnvInt("DB_CONN_MAX_LIFETIME_MIN", c.ConnMaxLifeTime)
}

func (c *DBConfig) validate() error {
	switch c.Driver {
	case "postgres":
		if c.Host == "" || c.User == "" || c.Name == "" {
			return fmt.Errorf("invalid DB config: host/user/name must not be empty")
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return fmt.Errorf("invalid DB config: sqlite path must not be empty")
		}
	default:
		return fmt.Errorf("invalid DB config: unknown driver %q", c.Driver)
	}
	return nil
}

// LoadDBConfig читает только настройки БД из env.
func LoadDBConfig() (*DBConfig, error) {
	cfg := defaultDBConfig()
	cfg.applyEnv()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return def
}
