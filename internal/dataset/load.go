package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/gobwas/glob"
)

// Load error sentinels, distinguishable with errors.Is.
var (
	ErrDatasetMissing   = errors.New("training data file not found")
	ErrDatasetMalformed = errors.New("malformed training data")
)

// LoadOptions filters records by intent at load time. Patterns are
// globs matched against the intent label; empty Include means include
// everything.
type LoadOptions struct {
	IncludeIntents []string
	ExcludeIntents []string
}

type document struct {
	TrainingDataset *struct {
		Data []Sample `json:"data"`
	} `json:"training_dataset"`
}

// Load reads labeled samples from the JSON document at path. The
// document wraps its records under training_dataset.data. A missing
// file wraps ErrDatasetMissing; any structural problem wraps
// ErrDatasetMalformed.
func Load(path string, opts LoadOptions) ([]Sample, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDatasetMissing, path)
		}
		return nil, fmt.Errorf("read training data: %w", err)
	}

	var doc document
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatasetMalformed, err)
	}
	if doc.TrainingDataset == nil || doc.TrainingDataset.Data == nil {
		return nil, fmt.Errorf("%w: missing training_dataset.data", ErrDatasetMalformed)
	}

	include, err := compilePatterns(opts.IncludeIntents)
	if err != nil {
		return nil, fmt.Errorf("include pattern: %w", err)
	}
	exclude, err := compilePatterns(opts.ExcludeIntents)
	if err != nil {
		return nil, fmt.Errorf("exclude pattern: %w", err)
	}

	samples := make([]Sample, 0, len(doc.TrainingDataset.Data))
	for i, sample := range doc.TrainingDataset.Data {
		if sample.Intent == "" {
			return nil, fmt.Errorf("%w: record %d has no intent", ErrDatasetMalformed, i)
		}
		if !matchesAny(include, sample.Intent, true) {
			continue
		}
		if matchesAny(exclude, sample.Intent, false) {
			continue
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

func compilePatterns(patterns []string) ([]glob.Glob, error) {
	out := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		compiled, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("compile %q: %w", pattern, err)
		}
		out = append(out, compiled)
	}
	return out, nil
}

func matchesAny(patterns []glob.Glob, intent string, emptyMatches bool) bool {
	if len(patterns) == 0 {
		return emptyMatches
	}
	for _, pattern := range patterns {
		if pattern.Match(intent) {
			return true
		}
	}
	return false
}
