package model

import (
	"errors"
	"fmt"
)

// BundleFormatVersion tags serialized pipeline bundles.
const BundleFormatVersion = "1.0"

// ErrNotTrained reports prediction on an untrained pipeline. This is a
// programming error and always fatal to the call.
var ErrNotTrained = errors.New("pipeline is not trained")

type classifier interface {
	predict(vec Vector) string
}

// Pipeline is a trained feature extractor plus classifier, usable as
// one unit. It is immutable after training; retraining produces a new
// instance.
type Pipeline struct {
	algorithm  Algorithm
	vectorizer *Vectorizer
	classifier classifier
}

// TrainOptions tunes a training call. The zero value selects the
// defaults (seed 42, vocabulary capped at DefaultMaxFeatures).
// A Seed of 0 means unset and is replaced by 42; a literal zero seed
// is not expressible.
type TrainOptions struct {
	Seed        int64
	MaxFeatures int
}

// Train fits a fresh vectorizer on the training features and then the
// classifier selected by alg. Stochastic components draw from a
// generator seeded by opts.Seed, so training is deterministic.
func Train(alg Algorithm, features []string, labels []string, opts TrainOptions) (*Pipeline, error) {
	if len(features) == 0 {
		return nil, errors.New("train: no training features")
	}
	if len(features) != len(labels) {
		return nil, fmt.Errorf("train: %d features but %d labels", len(features), len(labels))
	}
	seed := opts.Seed
	if seed == 0 {
		seed = 42
	}

	vectorizer := FitVectorizer(features, opts.MaxFeatures)
	vectors := vectorizer.TransformAll(features)

	var c classifier
	switch alg {
	case AlgorithmLogisticRegression:
		c = trainLogistic(vectors, labels, vectorizer.Features(), seed)
	case AlgorithmRandomForest:
		c = trainForest(vectors, labels, vectorizer.Features(), seed)
	default:
		return nil, &UnsupportedAlgorithmError{ID: string(alg)}
	}

	return &Pipeline{algorithm: alg, vectorizer: vectorizer, classifier: c}, nil
}

// Algorithm returns the algorithm this pipeline was trained with.
func (p *Pipeline) Algorithm() Algorithm {
	return p.algorithm
}

// Predict maps normalized feature strings to intent labels. It fails
// with ErrNotTrained on an untrained pipeline.
func (p *Pipeline) Predict(features []string) ([]string, error) {
	if p == nil || p.vectorizer == nil || p.classifier == nil {
		return nil, ErrNotTrained
	}
	out := make([]string, len(features))
	for i, feature := range features {
		out[i] = p.classifier.predict(p.vectorizer.Transform(feature))
	}
	return out, nil
}

// Bundle is the serialized form of a trained pipeline. Exactly one of
// Logistic and Forest is set, matching Algorithm.
type Bundle struct {
	FormatVersion string         `json:"format_version"`
	Algorithm     Algorithm      `json:"algorithm"`
	Vectorizer    *Vectorizer    `json:"vectorizer"`
	Logistic      *LogisticModel `json:"logistic,omitempty"`
	Forest        *ForestModel   `json:"forest,omitempty"`
}

// Bundle returns the serializable form of the pipeline.
func (p *Pipeline) Bundle() (Bundle, error) {
	if p == nil || p.vectorizer == nil || p.classifier == nil {
		return Bundle{}, ErrNotTrained
	}
	b := Bundle{
		FormatVersion: BundleFormatVersion,
		Algorithm:     p.algorithm,
		Vectorizer:    p.vectorizer,
	}
	switch c := p.classifier.(type) {
	case *LogisticModel:
		b.Logistic = c
	case *ForestModel:
		b.Forest = c
	default:
		return Bundle{}, fmt.Errorf("bundle: unknown classifier type %T", p.classifier)
	}
	return b, nil
}

// FromBundle reconstructs a pipeline of the same shape from its
// serialized form.
func FromBundle(b Bundle) (*Pipeline, error) {
	if b.Vectorizer == nil {
		return nil, errors.New("bundle: missing vectorizer")
	}
	p := &Pipeline{algorithm: b.Algorithm, vectorizer: b.Vectorizer}
	switch b.Algorithm {
	case AlgorithmLogisticRegression:
		if b.Logistic == nil {
			return nil, errors.New("bundle: missing logistic model")
		}
		p.classifier = b.Logistic
	case AlgorithmRandomForest:
		if b.Forest == nil {
			return nil, errors.New("bundle: missing forest model")
		}
		p.classifier = b.Forest
	default:
		return nil, &UnsupportedAlgorithmError{ID: string(b.Algorithm)}
	}
	return p, nil
}
