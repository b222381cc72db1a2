// Package dataset holds the labeled training records, their derived
// statistics, and the stratified train/test split.
package dataset

import (
	"sort"

	"intentrain/internal/textnorm"
)

// Sample is one labeled training record. Immutable once loaded;
// identity is positional within the dataset.
type Sample struct {
	Query    string `json:"query"`
	Response string `json:"response"`
	Intent   string `json:"intent"`
}

// View is an ordered, exclusively-owned sequence of samples plus one
// normalized query per sample in the same order.
type View struct {
	samples    []Sample
	normalized []string
}

// FromSamples copies samples into a new View and derives the
// normalized query column with the given normalizer.
func FromSamples(samples []Sample, normalizer *textnorm.Normalizer) *View {
	owned := make([]Sample, len(samples))
	copy(owned, samples)

	normalized := make([]string, len(owned))
	for i, sample := range owned {
		normalized[i] = normalizer.Normalize(sample.Query)
	}
	return &View{samples: owned, normalized: normalized}
}

// Len returns the number of samples in the view.
func (v *View) Len() int {
	return len(v.samples)
}

// Sample returns the sample at index i.
func (v *View) Sample(i int) Sample {
	return v.samples[i]
}

// NormalizedQuery returns the derived normalized query at index i.
func (v *View) NormalizedQuery(i int) string {
	return v.normalized[i]
}

// Intents returns the distinct intent labels in ascending order.
func (v *View) Intents() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, sample := range v.samples {
		if _, ok := seen[sample.Intent]; ok {
			continue
		}
		seen[sample.Intent] = struct{}{}
		out = append(out, sample.Intent)
	}
	sort.Strings(out)
	return out
}

// Summary captures dataset-level statistics for reporting.
type Summary struct {
	TotalSamples      int            `json:"total_samples"`
	UniqueIntents     int            `json:"unique_intents"`
	IntentCounts      map[string]int `json:"intent_distribution"`
	UniqueQueries     int            `json:"unique_queries"`
	AvgQueryLength    float64        `json:"avg_query_length"`
	AvgResponseLength float64        `json:"avg_response_length"`
}

// Summarize computes dataset statistics. Length means are 0 on an
// empty view.
func (v *View) Summarize() Summary {
	counts := make(map[string]int)
	queries := make(map[string]struct{})
	queryChars := 0
	responseChars := 0
	for _, sample := range v.samples {
		counts[sample.Intent]++
		queries[sample.Query] = struct{}{}
		queryChars += len(sample.Query)
		responseChars += len(sample.Response)
	}

	summary := Summary{
		TotalSamples:  len(v.samples),
		UniqueIntents: len(counts),
		IntentCounts:  counts,
		UniqueQueries: len(queries),
	}
	if len(v.samples) > 0 {
		summary.AvgQueryLength = float64(queryChars) / float64(len(v.samples))
		summary.AvgResponseLength = float64(responseChars) / float64(len(v.samples))
	}
	return summary
}
