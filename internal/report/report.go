// Package report synthesizes dataset statistics, model comparison
// results, and data-quality recommendations into one structured
// training report.
package report

import (
	"time"

	"intentrain/internal/dataset"
)

// Recommendation heuristic thresholds.
const (
	imbalanceRatioLimit    = 3.0
	minHealthySamples      = 100
	minQueryDiversityRatio = 0.8
)

// Recommendation messages, in the fixed order the heuristics are
// evaluated.
const (
	recImbalance = "Data imbalance detected. Consider adding more samples for underrepresented intents."
	recVolume    = "Limited training data. Consider collecting more samples for better performance."
	recDiversity = "Low query diversity. Consider adding more varied examples for each intent."
	recHealthy   = "Training data looks good! Continue monitoring model performance."
)

// Report is the terminal training-session output. It is built fresh
// each call and never mutated after construction. The field set is the
// public contract dashboards rely on.
type Report struct {
	Timestamp        string             `json:"timestamp"`
	DataSummary      dataset.Summary    `json:"data_summary"`
	ModelPerformance map[string]float64 `json:"model_performance"`
	Recommendations  []string           `json:"recommendations"`
}

// Recommend evaluates the data-quality heuristics against the summary.
// Each heuristic is independent; all that trigger are included, in
// fixed order. When none trigger, a single affirmative message is
// returned.
func Recommend(summary dataset.Summary) []string {
	out := make([]string, 0, 3)

	if minCount, maxCount := countBounds(summary.IntentCounts); minCount > 0 &&
		float64(maxCount)/float64(minCount) > imbalanceRatioLimit {
		out = append(out, recImbalance)
	}
	if summary.TotalSamples < minHealthySamples {
		out = append(out, recVolume)
	}
	if summary.TotalSamples > 0 &&
		float64(summary.UniqueQueries)/float64(summary.TotalSamples) < minQueryDiversityRatio {
		out = append(out, recDiversity)
	}

	if len(out) == 0 {
		out = append(out, recHealthy)
	}
	return out
}

// Build assembles a report carrying its creation timestamp.
func Build(summary dataset.Summary, performance map[string]float64, recommendations []string) Report {
	return Report{
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
		DataSummary:      summary,
		ModelPerformance: performance,
		Recommendations:  recommendations,
	}
}

func countBounds(counts map[string]int) (int, int) {
	minCount, maxCount := 0, 0
	first := true
	for _, count := range counts {
		if first {
			minCount, maxCount = count, count
			first = false
			continue
		}
		if count < minCount {
			minCount = count
		}
		if count > maxCount {
			maxCount = count
		}
	}
	return minCount, maxCount
}
