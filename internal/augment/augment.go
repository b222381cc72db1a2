// Package augment generates synthetic query variants for an intent.
// It is an offline utility off the main training path: results are
// returned to the caller, never merged into the dataset automatically.
package augment

import (
	"sort"
	"strings"
)

var questionWords = []string{
	"how", "what", "where", "when", "why", "can", "could", "would",
}

// Generate produces question-form, politeness, and informal variants
// of each base query, deduplicated and sorted. A positive count caps
// the number of variants returned.
func Generate(intent string, baseQueries []string, count int) []string {
	seen := make(map[string]struct{})
	for _, query := range baseQueries {
		if strings.TrimSpace(query) == "" {
			continue
		}
		for _, variant := range variants(query) {
			seen[variant] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for variant := range seen {
		out = append(out, variant)
	}
	sort.Strings(out)
	if count > 0 && len(out) > count {
		out = out[:count]
	}
	return out
}

func variants(query string) []string {
	out := make([]string, 0, 7)
	if !startsWithQuestionWord(query) {
		out = append(out,
			"How "+query,
			"Can you "+query,
			"Could you "+query,
		)
	}

	out = append(out,
		"Please "+query,
		query+" please",
	)

	for _, sub := range []struct{ from, to string }{
		{from: "you", to: "u"},
		{from: "your", to: "ur"},
	} {
		informal := strings.ReplaceAll(query, sub.from, sub.to)
		if informal != query {
			out = append(out, informal)
		}
	}
	return out
}

func startsWithQuestionWord(query string) bool {
	lower := strings.ToLower(query)
	for _, word := range questionWords {
		if strings.HasPrefix(lower, word) {
			return true
		}
	}
	return false
}
