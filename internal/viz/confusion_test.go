package viz

import (
	"os"
	"strings"
	"testing"
)

func TestWriteConfusionSVG(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	labels := []string{"billing", "greeting"}
	matrix := [][]int{{8, 1}, {0, 9}}

	if err := WriteConfusionSVG(dir, "logistic_regression", labels, matrix); err != nil {
		t.Fatalf("WriteConfusionSVG: %v", err)
	}

	content, err := os.ReadFile(ConfusionSVGPath(dir, "logistic_regression"))
	if err != nil {
		t.Fatalf("read plot: %v", err)
	}
	svg := string(content)

	for _, want := range []string{
		"<svg", "</svg>",
		"Confusion Matrix - logistic_regression",
		"billing", "greeting",
		">8<", ">9<",
	} {
		if !strings.Contains(svg, want) {
			t.Fatalf("svg missing %q:\n%s", want, svg)
		}
	}
}

func TestWriteConfusionSVGDeterministic(t *testing.T) {
	t.Parallel()

	labels := []string{"a", "b"}
	matrix := [][]int{{1, 0}, {0, 1}}

	first := t.TempDir()
	second := t.TempDir()
	if err := WriteConfusionSVG(first, "random_forest", labels, matrix); err != nil {
		t.Fatalf("WriteConfusionSVG: %v", err)
	}
	if err := WriteConfusionSVG(second, "random_forest", labels, matrix); err != nil {
		t.Fatalf("WriteConfusionSVG: %v", err)
	}

	left, err := os.ReadFile(ConfusionSVGPath(first, "random_forest"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	right, err := os.ReadFile(ConfusionSVGPath(second, "random_forest"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(left) != string(right) {
		t.Fatalf("renders differ across identical inputs")
	}
}

func TestWriteConfusionSVGRejectsShapeMismatch(t *testing.T) {
	t.Parallel()

	err := WriteConfusionSVG(t.TempDir(), "x", []string{"a", "b"}, [][]int{{1, 0}})
	if err == nil {
		t.Fatalf("expected shape mismatch error")
	}
}
