package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"
)

// globalConfig stores the configuration loaded with command-line overrides.
// This allows other packages to access the same configuration that was
// loaded by the client entrypoint.
var (
	globalConfig *Config
	configMutex  sync.Mutex
)

// Config holds the application configuration.
type Config struct {
	Server  ServerConfig  `json:"server"`
	Client  ClientConfig  `json:"client"`
	Capture CaptureConfig `json:"capture"`
	Logging LoggingConfig `json:"logging"`
}

// LoadOptions holds command-line override options.
type LoadOptions struct {
	Host             string
	Port             string
	Username         string
	LogLevel         string
	CapabilityString string
	CaptureDir       string
	DedupCaptures    bool
}

// ServerConfig holds the connection target.
type ServerConfig struct {
	Host string `json:"host" env:"SERVER_HOST" default:""`
	Port string `json:"port" env:"SERVER_PORT" default:"6556"`
}

// ClientConfig holds client-identity and handshake configuration.
type ClientConfig struct {
	Username                string        `json:"username" env:"USERNAME" default:""`
	JoinTimeout             time.Duration `json:"joinTimeout" env:"JOIN_TIMEOUT_MS" default:"10000ms"`
	CapabilityString        string        `json:"capabilityString" env:"CAPABILITY_STRING" default:"+Freeciv.Devel-3.4-2025.Nov.29"`
	ShutdownOnUnknownPacket bool          `json:"shutdownOnUnknownPacket" env:"SHUTDOWN_ON_UNKNOWN_PACKET" default:"true"`
}

// CaptureConfig holds optional raw-frame capture configuration.
type CaptureConfig struct {
	Dir           string `json:"dir" env:"PACKET_CAPTURE_DIR" default:""`
	DedupCaptures bool   `json:"dedupCaptures" env:"PACKET_CAPTURE_DEDUP" default:"false"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `json:"level" env:"LOG_LEVEL" default:"info"`
}

// Load loads configuration from environment variables with defaults.
func Load() (*Config, error) {
	return LoadWithOverrides(LoadOptions{})
}

// LoadWithOverrides loads configuration with command-line overrides.
func LoadWithOverrides(opts LoadOptions) (*Config, error) {
	cfg := &Config{}

	cfg.Server.Host = getOverrideOrEnv(opts.Host, "SERVER_HOST", "")
	cfg.Server.Port = getOverrideOrEnv(opts.Port, "SERVER_PORT", "6556")

	cfg.Client.Username = getOverrideOrEnv(opts.Username, "USERNAME", "")
	cfg.Client.JoinTimeout = getDurationWithDefault("JOIN_TIMEOUT_MS", 10*time.Second)
	cfg.Client.CapabilityString = getOverrideOrEnv(opts.CapabilityString, "CAPABILITY_STRING", "+Freeciv.Devel-3.4-2025.Nov.29")
	cfg.Client.ShutdownOnUnknownPacket = getBoolWithDefault("SHUTDOWN_ON_UNKNOWN_PACKET", true)

	cfg.Capture.Dir = getOverrideOrEnv(opts.CaptureDir, "PACKET_CAPTURE_DIR", "")
	cfg.Capture.DedupCaptures = opts.DedupCaptures || getBoolWithDefault("PACKET_CAPTURE_DEDUP", false)

	cfg.Logging.Level = getOverrideOrEnv(opts.LogLevel, "LOG_LEVEL", "info")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	configMutex.Lock()
	globalConfig = cfg
	configMutex.Unlock()

	return cfg, nil
}

// GetGlobalConfig returns the globally stored configuration.
func GetGlobalConfig() *Config {
	configMutex.Lock()
	defer configMutex.Unlock()
	return globalConfig
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Host == "" {
		return fmt.Errorf("server host cannot be empty")
	}

	if c.Server.Port == "" {
		return fmt.Errorf("server port cannot be empty")
	}

	if port, err := strconv.Atoi(c.Server.Port); err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid server port: %s", c.Server.Port)
	}

	if c.Client.Username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if c.Client.JoinTimeout <= 0 {
		return fmt.Errorf("join timeout must be positive")
	}

	if c.Client.CapabilityString == "" {
		return fmt.Errorf("capability string cannot be empty")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	return nil
}

// Helper functions for environment variable parsing.

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolWithDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		// JOIN_TIMEOUT_MS is documented in milliseconds (spec.md §6.3);
		// accept a bare integer as milliseconds alongside Go duration syntax.
		if ms, err := strconv.Atoi(value); err == nil {
			return time.Duration(ms) * time.Millisecond
		}
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getOverrideOrEnv returns command-line override value, env value, or default.
func getOverrideOrEnv(override, envKey, defaultValue string) string {
	if override != "" {
		return override
	}
	return getEnvWithDefault(envKey, defaultValue)
}
