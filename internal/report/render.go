package report

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
)

// Markdown renders the report as a human-readable markdown document.
// Model rows and intent rows are sorted by name so the rendering is
// deterministic.
func Markdown(r Report) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "# Training Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", r.Timestamp)

	fmt.Fprintf(&b, "## Data Summary\n\n")
	fmt.Fprintf(&b, "- Total samples: %d\n", r.DataSummary.TotalSamples)
	fmt.Fprintf(&b, "- Unique intents: %d\n", r.DataSummary.UniqueIntents)
	fmt.Fprintf(&b, "- Unique queries: %d\n", r.DataSummary.UniqueQueries)
	fmt.Fprintf(&b, "- Mean query length: %.1f chars\n", r.DataSummary.AvgQueryLength)
	fmt.Fprintf(&b, "- Mean response length: %.1f chars\n\n", r.DataSummary.AvgResponseLength)

	if len(r.DataSummary.IntentCounts) > 0 {
		fmt.Fprintf(&b, "| Intent | Samples |\n|---|---|\n")
		for _, intent := range sortedKeys(r.DataSummary.IntentCounts) {
			fmt.Fprintf(&b, "| %s | %d |\n", intent, r.DataSummary.IntentCounts[intent])
		}
		fmt.Fprintf(&b, "\n")
	}

	fmt.Fprintf(&b, "## Model Performance\n\n")
	if len(r.ModelPerformance) == 0 {
		fmt.Fprintf(&b, "No models trained.\n\n")
	} else {
		fmt.Fprintf(&b, "| Model | Accuracy |\n|---|---|\n")
		names := make([]string, 0, len(r.ModelPerformance))
		for name := range r.ModelPerformance {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "| %s | %.4f |\n", name, r.ModelPerformance[name])
		}
		fmt.Fprintf(&b, "\n")
	}

	fmt.Fprintf(&b, "## Recommendations\n\n")
	for _, rec := range r.Recommendations {
		fmt.Fprintf(&b, "- %s\n", rec)
	}
	return []byte(b.String())
}

// RenderHTML converts the markdown rendering to HTML for dashboard
// consumption.
func RenderHTML(markdown []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("render report html: %w", err)
	}
	return buf.Bytes(), nil
}

func sortedKeys(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for key := range m {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
