package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/repohist/repohist-go/internal/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration settings
type Config struct {
	// Repository access
	Repo RepoConfig `yaml:"repo" mapstructure:"repo"`

	// Analysis defaults
	Analysis AnalysisConfig `yaml:"analysis" mapstructure:"analysis"`

	// Logging settings
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

type RepoConfig struct {
	// Path is the working tree (or any path inside it) to resolve.
	Path string `yaml:"path" mapstructure:"path"`

	// GitPath is the git executable to invoke.
	GitPath string `yaml:"git_path" mapstructure:"git_path"`

	// CommandTimeout bounds a single git invocation. Zero means no
	// caller-side timeout; cancellation still flows from the context.
	CommandTimeout time.Duration `yaml:"command_timeout" mapstructure:"command_timeout"`
}

type AnalysisConfig struct {
	HistoryLimit int `yaml:"history_limit" mapstructure:"history_limit"` // default commit count for history queries
	RelatedLimit int `yaml:"related_limit" mapstructure:"related_limit"` // default entry count for co-change queries
}

type LoggingConfig struct {
	Level      string `yaml:"level" mapstructure:"level"`   // "debug", "info", "warn", "error"
	Format     string `yaml:"format" mapstructure:"format"` // "text" or "json"
	AddSource  bool   `yaml:"add_source" mapstructure:"add_source"`
	OutputFile string `yaml:"output_file" mapstructure:"output_file"`
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Repo: RepoConfig{
			Path:           ".",
			GitPath:        "git",
			CommandTimeout: 0,
		},
		Analysis: AnalysisConfig{
			HistoryLimit: 10,
			RelatedLimit: 5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from file
func Load(path string) (*Config, error) {
	// Load .env files first (in order of precedence)
	loadEnvFiles()

	v := viper.New()
	v.SetConfigType("yaml")

	// Set defaults
	cfg := Default()
	v.SetDefault("repo", cfg.Repo)
	v.SetDefault("analysis", cfg.Analysis)
	v.SetDefault("logging", cfg.Logging)

	// Load from environment variables
	v.SetEnvPrefix("REPOHIST")
	v.AutomaticEnv()

	// Try to find config file
	if path != "" {
		v.SetConfigFile(path)
	} else {
		// Search for config in standard locations
		v.SetConfigName("config")
		v.AddConfigPath(".repohist")
		v.AddConfigPath(".")
		homeDir, _ := os.UserHomeDir()
		v.AddConfigPath(filepath.Join(homeDir, ".repohist"))
	}

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	// Unmarshal into struct
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	if result := cfg.Validate(); result.HasErrors() {
		return nil, errors.ConfigError(result.Error())
	}

	return cfg, nil
}

// loadEnvFiles loads .env files in order of precedence
func loadEnvFiles() {
	envFiles := []string{
		".env.local", // Local overrides (highest precedence)
		".env",       // Main environment file
	}

	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			godotenv.Load(file)
		}
	}

	// Also try loading from home directory
	homeDir, _ := os.UserHomeDir()
	homeEnvFile := filepath.Join(homeDir, ".repohist", ".env")
	if _, err := os.Stat(homeEnvFile); err == nil {
		godotenv.Load(homeEnvFile)
	}
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	// Repository configuration
	if path := os.Getenv("REPOHIST_REPO_PATH"); path != "" {
		cfg.Repo.Path = expandPath(path)
	}
	if gitPath := os.Getenv("REPOHIST_GIT_PATH"); gitPath != "" {
		cfg.Repo.GitPath = gitPath
	}
	if timeout := os.Getenv("REPOHIST_COMMAND_TIMEOUT_MS"); timeout != "" {
		if ms, err := strconv.Atoi(timeout); err == nil && ms >= 0 {
			cfg.Repo.CommandTimeout = time.Duration(ms) * time.Millisecond
		}
	}

	// Analysis configuration
	if limit := os.Getenv("REPOHIST_HISTORY_LIMIT"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n > 0 {
			cfg.Analysis.HistoryLimit = n
		}
	}
	if limit := os.Getenv("REPOHIST_RELATED_LIMIT"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n > 0 {
			cfg.Analysis.RelatedLimit = n
		}
	}

	// Logging configuration
	if level := os.Getenv("REPOHIST_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if format := os.Getenv("REPOHIST_LOG_FORMAT"); format != "" {
		cfg.Logging.Format = format
	}
	if file := os.Getenv("REPOHIST_LOG_FILE"); file != "" {
		cfg.Logging.OutputFile = expandPath(file)
	}
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if path == "" {
		return path
	}
	if path[0] == '~' {
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, path[1:])
	}
	return path
}

// Save saves configuration to file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
