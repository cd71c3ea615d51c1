package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// NLU engine specifics
	Engine  EngineConfig
	Domains DomainsConfig

	// Rate limiting
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// EngineConfig controls session lifecycle inside the dialogue engine.
type EngineConfig struct {
	// SessionTTL is the idle lifetime of a session. Any turn refreshes it.
	SessionTTL time.Duration

	// SweepInterval is how often expired sessions are evicted in the
	// background. Expiry is also checked on read, so this only bounds memory.
	SweepInterval time.Duration
}

// DomainsConfig locates the domain schema files.
type DomainsConfig struct {
	Dir string
}

// RateLimitConfig throttles the public API per client IP.
type RateLimitConfig struct {
	RequestsPerMin int
	MaxClients     int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Engine
	cfg.Engine.SessionTTL = viper.GetDuration("engine.session_ttl")
	cfg.Engine.SweepInterval = viper.GetDuration("engine.sweep_interval")
	cfg.Domains.Dir = viper.GetString("domains.dir")

	// Rate limiting
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.MaxClients = viper.GetInt("rate_limit.max_clients")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Engine.SessionTTL <= 0 {
		return fmt.Errorf("engine.session_ttl must be positive, got %s", cfg.Engine.SessionTTL)
	}
	if cfg.Engine.SweepInterval <= 0 {
		return fmt.Errorf("engine.sweep_interval must be positive, got %s", cfg.Engine.SweepInterval)
	}
	if cfg.Domains.Dir == "" {
		return fmt.Errorf("domains.dir is required")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("engine.session_ttl", "5m")
	viper.SetDefault("engine.sweep_interval", "1m")
	viper.SetDefault("domains.dir", "./config/domains")

	viper.SetDefault("rate_limit.requests_per_min", 120)
	viper.SetDefault("rate_limit.max_clients", 1000)
}
