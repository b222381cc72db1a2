// Package eval computes predictive-quality metrics for a trained
// pipeline against a held-out split. It is pure computation: results
// are returned as data and never drawn or written here.
package eval

import (
	"sort"

	"intentrain/internal/model"
)

// ClassMetrics holds the one-vs-rest metrics for a single intent.
type ClassMetrics struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
	Support   int     `json:"support"`
}

// Result is the full evaluation of one pipeline. Labels orders the
// confusion matrix axes: the sorted union of labels appearing in truth
// or predictions. Matrix rows are true labels, columns predicted.
type Result struct {
	Accuracy float64                 `json:"accuracy"`
	PerClass map[string]ClassMetrics `json:"per_class_metrics"`
	Labels   []string                `json:"labels"`
	Matrix   [][]int                 `json:"confusion_matrix"`
}

// Evaluate scores the pipeline on the held-out features and labels.
func Evaluate(pipeline *model.Pipeline, testFeatures []string, testLabels []string) (Result, error) {
	predictions, err := pipeline.Predict(testFeatures)
	if err != nil {
		return Result{}, err
	}

	matches := 0
	for i, label := range testLabels {
		if predictions[i] == label {
			matches++
		}
	}
	accuracy := 0.0
	if len(testLabels) > 0 {
		accuracy = float64(matches) / float64(len(testLabels))
	}

	labels := labelUnion(testLabels, predictions)
	index := make(map[string]int, len(labels))
	for i, label := range labels {
		index[label] = i
	}

	matrix := make([][]int, len(labels))
	for i := range matrix {
		matrix[i] = make([]int, len(labels))
	}
	for i, truth := range testLabels {
		matrix[index[truth]][index[predictions[i]]]++
	}

	return Result{
		Accuracy: accuracy,
		PerClass: perClassMetrics(testLabels, predictions),
		Labels:   labels,
		Matrix:   matrix,
	}, nil
}

// perClassMetrics computes precision/recall/F1/support for each label
// observed in the truth set.
func perClassMetrics(truth []string, predictions []string) map[string]ClassMetrics {
	observed := make(map[string]struct{})
	for _, label := range truth {
		observed[label] = struct{}{}
	}

	out := make(map[string]ClassMetrics, len(observed))
	for label := range observed {
		tp, fp, fn := 0, 0, 0
		for i := range truth {
			switch {
			case truth[i] == label && predictions[i] == label:
				tp++
			case truth[i] != label && predictions[i] == label:
				fp++
			case truth[i] == label && predictions[i] != label:
				fn++
			}
		}

		precision := ratio(tp, tp+fp)
		recall := ratio(tp, tp+fn)
		f1 := 0.0
		if precision+recall > 0 {
			f1 = 2 * precision * recall / (precision + recall)
		}
		out[label] = ClassMetrics{
			Precision: precision,
			Recall:    recall,
			F1:        f1,
			Support:   tp + fn,
		}
	}
	return out
}

func labelUnion(truth []string, predictions []string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, label := range truth {
		if _, ok := seen[label]; !ok {
			seen[label] = struct{}{}
			out = append(out, label)
		}
	}
	for _, label := range predictions {
		if _, ok := seen[label]; !ok {
			seen[label] = struct{}{}
			out = append(out, label)
		}
	}
	sort.Strings(out)
	return out
}

func ratio(num int, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
