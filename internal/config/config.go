package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	RabbitMQ   RabbitMQConfig   `mapstructure:"rabbitmq"`
	Scheduling SchedulingConfig `mapstructure:"scheduling"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type DatabaseConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	Name           string `mapstructure:"database"`
	MigrationsPath string `mapstructure:"migrations_path"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type RabbitMQConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	VHost    string `mapstructure:"vhost"`
}

// SchedulingConfig holds the slot-generation policy. The 30-minute
// width and capacity of 10 are defaults, not protocol constants.
type SchedulingConfig struct {
	SlotMinutes     int `mapstructure:"slot_minutes"`
	DefaultCapacity int `mapstructure:"default_capacity"`
	HorizonDays     int `mapstructure:"horizon_days"`
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("server.port", 3000)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.migrations_path", "migrations")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("rabbitmq.port", 5672)
	v.SetDefault("rabbitmq.vhost", "/")
	v.SetDefault("scheduling.slot_minutes", 30)
	v.SetDefault("scheduling.default_capacity", 10)
	v.SetDefault("scheduling.horizon_days", 7)

	v.SetEnvPrefix("FOODTRUCK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Database.Host == "" {
		return nil, fmt.Errorf("invalid config: missing database host")
	}
	if cfg.Scheduling.SlotMinutes <= 0 || cfg.Scheduling.DefaultCapacity < 1 || cfg.Scheduling.HorizonDays < 1 {
		return nil, fmt.Errorf("invalid config: scheduling values must be positive")
	}
	return &cfg, nil
}
