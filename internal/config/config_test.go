package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "train.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "dataset_path: data/comprehensive_dataset.json\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.TestFraction != 0.2 {
		t.Fatalf("test fraction = %v, want 0.2", cfg.TestFraction)
	}
	if cfg.Seed != 42 {
		t.Fatalf("seed = %d, want 42", cfg.Seed)
	}
	if cfg.MaxFeatures != 5000 {
		t.Fatalf("max features = %d, want 5000", cfg.MaxFeatures)
	}
	if len(cfg.Algorithms) != 2 {
		t.Fatalf("algorithms = %v, want both defaults", cfg.Algorithms)
	}
	if !filepath.IsAbs(cfg.DatasetPath) {
		t.Fatalf("dataset path not resolved: %q", cfg.DatasetPath)
	}
	if !strings.HasSuffix(cfg.DatasetPath, filepath.Join("data", "comprehensive_dataset.json")) {
		t.Fatalf("dataset path resolved oddly: %q", cfg.DatasetPath)
	}
}

func TestLoadExplicitValues(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, strings.Join([]string{
		"dataset_path: /data/set.json",
		"output_dir: /out",
		"test_fraction: 0.3",
		"seed: 7",
		"max_features: 100",
		"algorithms:",
		"  - logistic_regression",
		"verbose: true",
	}, "\n"))
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TestFraction != 0.3 || cfg.Seed != 7 || cfg.MaxFeatures != 100 {
		t.Fatalf("explicit values not kept: %+v", cfg)
	}
	if len(cfg.Algorithms) != 1 || cfg.Algorithms[0] != "logistic_regression" {
		t.Fatalf("algorithms = %v", cfg.Algorithms)
	}
	if !cfg.Verbose {
		t.Fatalf("verbose not kept")
	}
	if cfg.OutputDir != "/out" {
		t.Fatalf("absolute output dir rewritten: %q", cfg.OutputDir)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "missing dataset path", content: "output_dir: /out\n"},
		{
			name:    "fraction out of range",
			content: "dataset_path: /d.json\ntest_fraction: 1.5\n",
		},
		{
			name:    "negative max features",
			content: "dataset_path: /d.json\nmax_features: -3\n",
		},
		{name: "bad yaml", content: "dataset_path: [unterminated\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Fatalf("expected error for %s", tt.name)
			}
		})
	}
}
