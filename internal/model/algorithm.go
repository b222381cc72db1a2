// Package model trains intent classifiers over a TF-IDF text
// representation and keeps the trained pipelines in a registry.
package model

import "fmt"

// Algorithm identifies a supported classifier construction recipe.
type Algorithm string

// Supported algorithms.
const (
	AlgorithmLogisticRegression Algorithm = "logistic_regression"
	AlgorithmRandomForest       Algorithm = "random_forest"
)

// AllAlgorithms returns every supported algorithm.
func AllAlgorithms() []Algorithm {
	return []Algorithm{
		AlgorithmLogisticRegression,
		AlgorithmRandomForest,
	}
}

// UnsupportedAlgorithmError reports a training request for an unknown
// algorithm id. Training is never attempted for such requests.
type UnsupportedAlgorithmError struct {
	ID string
}

func (e *UnsupportedAlgorithmError) Error() string {
	return fmt.Sprintf("unsupported algorithm %q", e.ID)
}

// ParseAlgorithm maps an algorithm id to its Algorithm, or fails with
// an UnsupportedAlgorithmError naming the offending id.
func ParseAlgorithm(id string) (Algorithm, error) {
	for _, alg := range AllAlgorithms() {
		if string(alg) == id {
			return alg, nil
		}
	}
	return "", &UnsupportedAlgorithmError{ID: id}
}
