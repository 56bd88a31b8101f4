// Package config holds hamsieve configuration, loaded from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hamsieve/spam-classifier/pkg/storage"
)

// Config represents hamsieve configuration.
type Config struct {
	// Model storage settings
	Model ModelConfig `yaml:"model"`

	// Training settings
	Training TrainingConfig `yaml:"training"`

	// Classification settings
	Classify ClassifyConfig `yaml:"classify"`
}

// ModelConfig selects and configures the model storage backend.
type ModelConfig struct {
	// Backend selection: "file" or "redis"
	Backend string `yaml:"backend"`

	// File-based backend settings
	File FileBackendConfig `yaml:"file"`

	// Redis-based backend settings
	Redis RedisBackendConfig `yaml:"redis"`
}

// FileBackendConfig contains file-based model storage settings.
type FileBackendConfig struct {
	// Model file path
	Path string `yaml:"path"`
}

// RedisBackendConfig contains Redis-based model storage settings.
type RedisBackendConfig struct {
	RedisURL    string `yaml:"redis_url"`
	KeyPrefix   string `yaml:"key_prefix"`
	DatabaseNum int    `yaml:"database_num"`
	BatchSize   int    `yaml:"batch_size"`

	// Name under which the model is stored
	ModelName string `yaml:"model_name"`
}

// TrainingConfig contains training and validation run settings.
type TrainingConfig struct {
	// Worker goroutines for corpus ingestion; 0 = NumCPU
	Workers int `yaml:"workers"`
}

// ClassifyConfig contains scoring thresholds.
type ClassifyConfig struct {
	// Probability at or above which a text counts as spam
	SpamThreshold float64 `yaml:"spam_threshold"`

	// Probability at or below which a text counts as ham
	HamThreshold float64 `yaml:"ham_threshold"`
}

// DefaultConfig returns hamsieve default configuration.
func DefaultConfig() *Config {
	return &Config{
		Model: ModelConfig{
			Backend: "file",
			File: FileBackendConfig{
				Path: "hamsieve-model.json",
			},
			Redis: RedisBackendConfig{
				RedisURL:    "redis://localhost:6379",
				KeyPrefix:   "hamsieve:model",
				DatabaseNum: 0,
				BatchSize:   500,
				ModelName:   "default",
			},
		},
		Training: TrainingConfig{
			Workers: 0,
		},
		Classify: ClassifyConfig{
			SpamThreshold: 0.8,
			HamThreshold:  0.2,
		},
	}
}

// LoadConfig loads configuration from a YAML file. An empty path yields the
// defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %v", err)
	}
	return cfg, nil
}

// SaveConfig writes the configuration to a YAML file.
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %v", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %v", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}
	return nil
}

// Validate checks the configuration for logical errors.
func (c *Config) Validate() error {
	switch c.Model.Backend {
	case "file":
		if c.Model.File.Path == "" {
			return fmt.Errorf("model.file.path must not be empty")
		}
	case "redis":
		if c.Model.Redis.RedisURL == "" {
			return fmt.Errorf("model.redis.redis_url must not be empty")
		}
		if c.Model.Redis.ModelName == "" {
			return fmt.Errorf("model.redis.model_name must not be empty")
		}
	default:
		return fmt.Errorf("unknown model backend %q (want \"file\" or \"redis\")", c.Model.Backend)
	}

	if c.Training.Workers < 0 {
		return fmt.Errorf("training.workers must not be negative")
	}

	ct := c.Classify
	if ct.SpamThreshold < 0 || ct.SpamThreshold > 1 {
		return fmt.Errorf("classify.spam_threshold must be within [0,1]")
	}
	if ct.HamThreshold < 0 || ct.HamThreshold > 1 {
		return fmt.Errorf("classify.ham_threshold must be within [0,1]")
	}
	if ct.HamThreshold > ct.SpamThreshold {
		return fmt.Errorf("classify.ham_threshold must not exceed classify.spam_threshold")
	}

	return nil
}

// RedisStoreConfig converts the Redis backend section into a store config.
func (c *Config) RedisStoreConfig() *storage.RedisConfig {
	return &storage.RedisConfig{
		RedisURL:    c.Model.Redis.RedisURL,
		KeyPrefix:   c.Model.Redis.KeyPrefix,
		DatabaseNum: c.Model.Redis.DatabaseNum,
		BatchSize:   c.Model.Redis.BatchSize,
	}
}
