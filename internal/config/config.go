package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

var (
	// ErrReadConfig возвращается, если файл конфигурации не удалось прочитать
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается, если значения конфигурации некорректны
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Redis      RedisConfig      `toml:"redis"`
	Scheduling SchedulingConfig `toml:"scheduling"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// URL возвращает строку подключения в формате URL (для golang-migrate)
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пусто - только stdout
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      int    `toml:"ttl"` // секунды
}

// TTLDuration возвращает TTL кеша настроек
func (r RedisConfig) TTLDuration() time.Duration {
	return time.Duration(r.TTL) * time.Second
}

type SchedulingConfig struct {
	StartHour       int    `toml:"start_hour"`
	EndHour         int    `toml:"end_hour"`
	SlotStepMinutes int    `toml:"slot_step_minutes"`
	Timezone        string `toml:"timezone"`
}

// BusinessHours возвращает сетку рабочего дня
func (s SchedulingConfig) BusinessHours() domain.BusinessHours {
	return domain.BusinessHours{
		StartHour:       s.StartHour,
		EndHour:         s.EndHour,
		SlotStepMinutes: s.SlotStepMinutes,
	}.WithDefaults()
}

// Location возвращает часовой пояс барбершопов; ошибка проверяется в validate
func (s SchedulingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load читает конфигурацию из TOML файла
// Перед чтением подгружается .env (если есть), секреты из окружения перекрывают файл
func Load(path string) (*Config, error) {
	// .env опционален
	_ = godotenv.Load()

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "barber-service",
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
			TTL:  300,
		},
		Scheduling: SchedulingConfig{
			StartHour:       domain.DefaultStartHour,
			EndHour:         domain.DefaultEndHour,
			SlotStepMinutes: domain.DefaultSlotStepMinutes,
			Timezone:        "UTC",
		},
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}

	s := c.Scheduling
	if s.StartHour < 0 || s.EndHour > 24 || s.StartHour >= s.EndHour {
		return fmt.Errorf("%w: scheduling hours must satisfy 0 <= start_hour < end_hour <= 24, got %d..%d",
			ErrInvalidConfig, s.StartHour, s.EndHour)
	}
	if s.SlotStepMinutes <= 0 || 60%s.SlotStepMinutes != 0 {
		return fmt.Errorf("%w: scheduling.slot_step_minutes must divide 60, got %d", ErrInvalidConfig, s.SlotStepMinutes)
	}
	if _, err := time.LoadLocation(s.Timezone); err != nil {
		return fmt.Errorf("%w: scheduling.timezone: %v", ErrInvalidConfig, err)
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required when redis is enabled", ErrInvalidConfig)
	}

	return nil
}
