package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Environment variable keys
const (
	Port = "PORT"
	Host = "HOST"

	APIBaseURL = "API_BASE_URL"
	APITimeout = "API_TIMEOUT"

	LogLevel  = "LOG_LEVEL"
	LogFormat = "LOG_FORMAT"

	TemplatesGlob = "TEMPLATES_GLOB"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Logging LoggingConfig
}

// ServerConfig holds the HTTP listener configuration
type ServerConfig struct {
	Port          string
	Host          string
	TemplatesGlob string
}

// BackendConfig holds the remote API configuration
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables and an optional
// .envrc file.
func Load() (*Config, error) {
	viper.SetConfigName(".envrc")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// A missing config file is fine, environment variables still apply.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:          viper.GetString(Port),
			Host:          viper.GetString(Host),
			TemplatesGlob: viper.GetString(TemplatesGlob),
		},
		Backend: BackendConfig{
			BaseURL: viper.GetString(APIBaseURL),
			Timeout: viper.GetDuration(APITimeout),
		},
		Logging: LoggingConfig{
			Level:  viper.GetString(LogLevel),
			Format: viper.GetString(LogFormat),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault(Port, "3000")
	viper.SetDefault(Host, "")

	viper.SetDefault(APIBaseURL, "http://localhost:8080")
	viper.SetDefault(APITimeout, "10s")

	viper.SetDefault(LogLevel, "info")
	viper.SetDefault(LogFormat, "json")

	viper.SetDefault(TemplatesGlob, "web/templates/*.html")
}

// Validate checks the configuration for required values
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("backend API base URL is required")
	}
	if strings.HasSuffix(c.Backend.BaseURL, "/") {
		c.Backend.BaseURL = strings.TrimRight(c.Backend.BaseURL, "/")
	}
	return nil
}

// ListenAddr builds the host:port address the HTTP server binds to
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
