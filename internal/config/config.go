package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Player  PlayerConfig  `mapstructure:"player"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds catalog API configuration
type APIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// PlayerConfig holds audio backend configuration
type PlayerConfig struct {
	Command string `mapstructure:"command"` // mpv binary, empty for PATH lookup
}

// UIConfig holds UI configuration
type UIConfig struct {
	PageSize int  `mapstructure:"page_size"`
	DarkMode bool `mapstructure:"dark_mode"` // default; the persisted toggle wins
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "https://podcast-api.netlify.app",
			TimeoutSeconds: 30,
		},
		Player: PlayerConfig{
			Command: "mpv",
		},
		UI: UIConfig{
			PageSize: 8,
			DarkMode: true,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "castwave", "castwave.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "castwave", "castwave.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "castwave")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "castwave")
	}
}

// DefaultDataPath returns the directory holding the persistence database
func DefaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "castwave")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "castwave")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides
	viper.SetEnvPrefix("CASTWAVE")
	viper.AutomaticEnv()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the current configuration to file
func SaveConfig(cfg *Config) error {
	configPath := defaultConfigPath()

	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.Set("api.base_url", cfg.API.BaseURL)
	viper.Set("api.timeout_seconds", cfg.API.TimeoutSeconds)
	viper.Set("player.command", cfg.Player.Command)
	viper.Set("ui.page_size", cfg.UI.PageSize)
	viper.Set("ui.dark_mode", cfg.UI.DarkMode)
	viper.Set("logging.file", cfg.Logging.File)
	viper.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
