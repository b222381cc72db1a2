package dataset

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Split defaults matching the training pipeline contract.
const (
	DefaultTestFraction = 0.2
	DefaultSeed         = 42
)

// Split error sentinels.
var (
	ErrEmptyDataset     = errors.New("dataset is empty")
	ErrInsufficientData = errors.New("insufficient data for stratified split")
)

// Split is a stratified train/test partition of a View. The four
// feature/label slices are parallel; TrainIndices and TestIndices
// record the original view positions and are disjoint.
type Split struct {
	TrainFeatures []string
	TrainLabels   []string
	TestFeatures  []string
	TestLabels    []string
	TrainIndices  []int
	TestIndices   []int
}

// NewSplit partitions the view so that each intent class contributes
// round(testFraction x classCount) samples to the test side, clamped so
// both sides keep at least one sample per class. The per-class choice
// is a seeded shuffle, so the same view and seed reproduce the same
// partition. Classes with fewer than two samples cannot be stratified
// and fail with ErrInsufficientData.
func NewSplit(view *View, testFraction float64, seed int64) (*Split, error) {
	if view.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	if testFraction <= 0 || testFraction >= 1 {
		testFraction = DefaultTestFraction
	}

	byIntent := make(map[string][]int)
	for i := 0; i < view.Len(); i++ {
		intent := view.Sample(i).Intent
		byIntent[intent] = append(byIntent[intent], i)
	}

	intents := make([]string, 0, len(byIntent))
	for intent := range byIntent {
		intents = append(intents, intent)
	}
	sort.Strings(intents)

	for _, intent := range intents {
		if len(byIntent[intent]) < 2 {
			return nil, fmt.Errorf("%w: intent %q has %d sample(s), need at least 2",
				ErrInsufficientData, intent, len(byIntent[intent]))
		}
	}

	rng := rand.New(rand.NewSource(seed))
	split := &Split{}
	for _, intent := range intents {
		indices := byIntent[intent]
		rng.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})

		testCount := int(math.Round(testFraction * float64(len(indices))))
		if testCount < 1 {
			testCount = 1
		}
		if testCount > len(indices)-1 {
			testCount = len(indices) - 1
		}

		for _, idx := range indices[:testCount] {
			split.TestFeatures = append(split.TestFeatures, view.NormalizedQuery(idx))
			split.TestLabels = append(split.TestLabels, view.Sample(idx).Intent)
			split.TestIndices = append(split.TestIndices, idx)
		}
		for _, idx := range indices[testCount:] {
			split.TrainFeatures = append(split.TrainFeatures, view.NormalizedQuery(idx))
			split.TrainLabels = append(split.TrainLabels, view.Sample(idx).Intent)
			split.TrainIndices = append(split.TrainIndices, idx)
		}
	}
	return split, nil
}
