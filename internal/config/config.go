// Package config loads the training run configuration from YAML and
// applies the pipeline defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"intentrain/internal/dataset"
	"intentrain/internal/model"
)

// Config controls one training session. A Seed of 0 means unset and
// selects the default 42; a literal zero seed is not expressible.
type Config struct {
	DatasetPath    string   `yaml:"dataset_path"`
	OutputDir      string   `yaml:"output_dir"`
	TestFraction   float64  `yaml:"test_fraction"`
	Seed           int64    `yaml:"seed"`
	MaxFeatures    int      `yaml:"max_features"`
	Algorithms     []string `yaml:"algorithms"`
	IncludeIntents []string `yaml:"include_intents"`
	ExcludeIntents []string `yaml:"exclude_intents"`
	Verbose        bool     `yaml:"verbose"`
}

// Load reads a config from YAML, applies defaults, and validates it.
// Relative paths resolve against the config file's directory.
func Load(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config yaml: %w", err)
	}

	cfg.ApplyDefaults()
	cfg.resolvePaths(filepath.Dir(path))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyDefaults fills unset fields with the pipeline defaults.
func (cfg *Config) ApplyDefaults() {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.TestFraction == 0 {
		cfg.TestFraction = dataset.DefaultTestFraction
	}
	if cfg.Seed == 0 {
		cfg.Seed = dataset.DefaultSeed
	}
	if cfg.MaxFeatures == 0 {
		cfg.MaxFeatures = model.DefaultMaxFeatures
	}
	if len(cfg.Algorithms) == 0 {
		for _, alg := range model.AllAlgorithms() {
			cfg.Algorithms = append(cfg.Algorithms, string(alg))
		}
	}
}

// Validate checks the config for values the pipeline cannot run with.
func (cfg *Config) Validate() error {
	if cfg.DatasetPath == "" {
		return errors.New("config: dataset_path is required")
	}
	if cfg.TestFraction <= 0 || cfg.TestFraction >= 1 {
		return fmt.Errorf("config: test_fraction must be in (0,1), got %v", cfg.TestFraction)
	}
	if cfg.MaxFeatures < 1 {
		return fmt.Errorf("config: max_features must be positive, got %d", cfg.MaxFeatures)
	}
	if len(cfg.Algorithms) == 0 {
		return errors.New("config: at least one algorithm is required")
	}
	return nil
}

func (cfg *Config) resolvePaths(configDir string) {
	if cfg.DatasetPath != "" && !filepath.IsAbs(cfg.DatasetPath) {
		cfg.DatasetPath = filepath.Join(configDir, cfg.DatasetPath)
	}
	if !filepath.IsAbs(cfg.OutputDir) {
		cfg.OutputDir = filepath.Join(configDir, cfg.OutputDir)
	}
}
