package model

import (
	"math"
	"sort"
	"strings"
)

// DefaultMaxFeatures caps the TF-IDF vocabulary size.
const DefaultMaxFeatures = 5000

// Vectorizer maps normalized text to a sparse TF-IDF vector over a
// bounded unigram+bigram vocabulary. It is fit on the training split
// only; the held-out split never influences vocabulary selection.
type Vectorizer struct {
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
	Documents  int            `json:"documents"`
}

// FitVectorizer builds a vocabulary from the training documents: the
// maxFeatures terms of highest document frequency, ties broken by
// ascending term order. IDF is smoothed so unseen terms stay finite.
func FitVectorizer(docs []string, maxFeatures int) *Vectorizer {
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxFeatures
	}

	df := make(map[string]int)
	for _, doc := range docs {
		for term := range termSet(doc) {
			df[term]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if df[terms[i]] != df[terms[j]] {
			return df[terms[i]] > df[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}
	sort.Strings(terms)

	v := &Vectorizer{
		Vocabulary: make(map[string]int, len(terms)),
		IDF:        make([]float64, len(terms)),
		Documents:  len(docs),
	}
	for i, term := range terms {
		v.Vocabulary[term] = i
		v.IDF[i] = math.Log(float64(1+len(docs))/float64(1+df[term])) + 1
	}
	return v
}

// Features returns the vocabulary size.
func (v *Vectorizer) Features() int {
	return len(v.IDF)
}

// Feature is one component of a sparse vector.
type Feature struct {
	Index int
	Value float64
}

// Vector is a sparse feature vector, ordered by ascending index. The
// fixed order keeps float accumulation over its components identical
// from run to run, which retraining with a fixed seed relies on.
type Vector []Feature

// At returns the value at index, zero when absent.
func (v Vector) At(index int) float64 {
	i := sort.Search(len(v), func(i int) bool { return v[i].Index >= index })
	if i < len(v) && v[i].Index == index {
		return v[i].Value
	}
	return 0
}

// Transform maps one normalized document to its L2-normalized sparse
// TF-IDF vector. Terms outside the vocabulary are ignored.
func (v *Vectorizer) Transform(doc string) Vector {
	weights := make(map[int]float64)
	for _, term := range terms(doc) {
		idx, ok := v.Vocabulary[term]
		if !ok {
			continue
		}
		weights[idx] += v.IDF[idx]
	}

	vec := make(Vector, 0, len(weights))
	for idx, value := range weights {
		vec = append(vec, Feature{Index: idx, Value: value})
	}
	sort.Slice(vec, func(i, j int) bool { return vec[i].Index < vec[j].Index })

	norm := 0.0
	for _, f := range vec {
		norm += f.Value * f.Value
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i].Value /= norm
		}
	}
	return vec
}

// TransformAll maps every document to its sparse vector.
func (v *Vectorizer) TransformAll(docs []string) []Vector {
	out := make([]Vector, len(docs))
	for i, doc := range docs {
		out[i] = v.Transform(doc)
	}
	return out
}

// terms returns the unigrams and bigrams of a normalized document.
func terms(doc string) []string {
	tokens := strings.Fields(doc)
	out := make([]string, 0, 2*len(tokens))
	out = append(out, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		out = append(out, tokens[i]+" "+tokens[i+1])
	}
	return out
}

func termSet(doc string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, term := range terms(doc) {
		set[term] = struct{}{}
	}
	return set
}
