package model

import (
	"math"
	"math/rand"
	"sort"
)

// Logistic regression training constants. Fixed so that training is
// deterministic for a given seed.
const (
	logisticEpochs       = 100
	logisticLearningRate = 0.5
)

// LogisticModel is a multinomial logistic regression classifier.
// Classes are sorted; Weights holds one dense weight vector per class.
type LogisticModel struct {
	Classes []string    `json:"classes"`
	Weights [][]float64 `json:"weights"`
	Bias    []float64   `json:"bias"`
}

func trainLogistic(vectors []Vector, labels []string, features int, seed int64) *LogisticModel {
	classes := sortedClasses(labels)
	classIndex := make(map[string]int, len(classes))
	for i, class := range classes {
		classIndex[class] = i
	}

	m := &LogisticModel{
		Classes: classes,
		Weights: make([][]float64, len(classes)),
		Bias:    make([]float64, len(classes)),
	}
	for c := range m.Weights {
		m.Weights[c] = make([]float64, features)
	}

	order := make([]int, len(vectors))
	for i := range order {
		order[i] = i
	}

	rng := rand.New(rand.NewSource(seed))
	scores := make([]float64, len(classes))
	for epoch := 0; epoch < logisticEpochs; epoch++ {
		rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
		for _, i := range order {
			vec := vectors[i]
			target := classIndex[labels[i]]
			m.scoresInto(vec, scores)
			softmaxInPlace(scores)
			for c := range scores {
				gradient := scores[c]
				if c == target {
					gradient -= 1
				}
				step := logisticLearningRate * gradient
				for _, f := range vec {
					m.Weights[c][f.Index] -= step * f.Value
				}
				m.Bias[c] -= step
			}
		}
	}
	return m
}

func (m *LogisticModel) scoresInto(vec Vector, scores []float64) {
	for c := range m.Classes {
		score := m.Bias[c]
		weights := m.Weights[c]
		for _, f := range vec {
			score += weights[f.Index] * f.Value
		}
		scores[c] = score
	}
}

func (m *LogisticModel) predict(vec Vector) string {
	scores := make([]float64, len(m.Classes))
	m.scoresInto(vec, scores)
	best := 0
	for c := 1; c < len(scores); c++ {
		if scores[c] > scores[best] {
			best = c
		}
	}
	return m.Classes[best]
}

func softmaxInPlace(scores []float64) {
	max := scores[0]
	for _, s := range scores[1:] {
		if s > max {
			max = s
		}
	}
	sum := 0.0
	for i, s := range scores {
		scores[i] = math.Exp(s - max)
		sum += scores[i]
	}
	for i := range scores {
		scores[i] /= sum
	}
}

func sortedClasses(labels []string) []string {
	seen := make(map[string]struct{})
	classes := make([]string, 0)
	for _, label := range labels {
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		classes = append(classes, label)
	}
	sort.Strings(classes)
	return classes
}
