// Package viz renders evaluation data as image files. It is a
// best-effort sink: callers log failures and continue, so nothing here
// may panic or abort a training session.
package viz

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Heatmap cell geometry in pixels.
const (
	cellSize   = 48
	labelSpace = 120
)

// ConfusionSVGPath returns the deterministic plot path for an
// algorithm inside dir.
func ConfusionSVGPath(dir string, algorithm string) string {
	return filepath.Join(dir, fmt.Sprintf("confusion_matrix_%s.svg", algorithm))
}

// WriteConfusionSVG renders the confusion matrix as an SVG heatmap at
// the deterministic path for the algorithm. Rows are true labels,
// columns predicted, both in the given order.
func WriteConfusionSVG(dir string, algorithm string, labels []string, matrix [][]int) error {
	if len(labels) == 0 || len(matrix) != len(labels) {
		return fmt.Errorf("confusion svg: %d labels for %d matrix rows", len(labels), len(matrix))
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("confusion svg: %w", err)
	}

	path := ConfusionSVGPath(dir, algorithm)
	if err := os.WriteFile(path, render(algorithm, labels, matrix), 0o644); err != nil {
		return fmt.Errorf("confusion svg: %w", err)
	}
	return nil
}

func render(algorithm string, labels []string, matrix [][]int) []byte {
	n := len(labels)
	width := labelSpace + n*cellSize
	height := labelSpace + n*cellSize

	maxCount := 0
	for _, row := range matrix {
		for _, count := range row {
			if count > maxCount {
				maxCount = count
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`+"\n",
		width, height)
	fmt.Fprintf(&b,
		`<text x="%d" y="20" font-family="sans-serif" font-size="14">Confusion Matrix - %s</text>`+"\n",
		labelSpace, escape(algorithm))

	for i, row := range matrix {
		y := labelSpace + i*cellSize
		fmt.Fprintf(&b,
			`<text x="%d" y="%d" text-anchor="end" font-family="sans-serif" font-size="11">%s</text>`+"\n",
			labelSpace-6, y+cellSize/2+4, escape(labels[i]))
		for j, count := range row {
			x := labelSpace + j*cellSize
			fmt.Fprintf(&b,
				`<rect x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="#ffffff"/>`+"\n",
				x, y, cellSize, cellSize, fill(count, maxCount))
			fmt.Fprintf(&b,
				`<text x="%d" y="%d" text-anchor="middle" font-family="sans-serif" font-size="12">%d</text>`+"\n",
				x+cellSize/2, y+cellSize/2+4, count)
		}
	}

	for j, label := range labels {
		x := labelSpace + j*cellSize
		fmt.Fprintf(&b,
			`<text x="%d" y="%d" text-anchor="end" font-family="sans-serif" font-size="11" transform="rotate(-45 %d %d)">%s</text>`+"\n",
			x+cellSize/2, labelSpace-6, x+cellSize/2, labelSpace-6, escape(label))
	}

	b.WriteString("</svg>\n")
	return []byte(b.String())
}

// fill maps a cell count to a white-to-blue shade.
func fill(count int, maxCount int) string {
	if maxCount == 0 {
		return "#f7fbff"
	}
	intensity := float64(count) / float64(maxCount)
	r := int(247 - intensity*(247-8))
	g := int(251 - intensity*(251-48))
	b := int(255 - intensity*(255-107))
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func escape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return replacer.Replace(s)
}
