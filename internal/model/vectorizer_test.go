package model

import "testing"

func TestFitVectorizerBuildsUnigramsAndBigrams(t *testing.T) {
	t.Parallel()

	v := FitVectorizer([]string{"check account balanc"}, 0)
	for _, term := range []string{
		"check", "account", "balanc", "check account", "account balanc",
	} {
		if _, ok := v.Vocabulary[term]; !ok {
			t.Fatalf("vocabulary missing term %q: %v", term, v.Vocabulary)
		}
	}
	if v.Features() != 5 {
		t.Fatalf("features = %d, want 5", v.Features())
	}
}

func TestFitVectorizerCapsByDocumentFrequency(t *testing.T) {
	t.Parallel()

	// "common" appears in all three documents, the others in one each.
	docs := []string{"common alpha", "common beta", "common gamma"}
	v := FitVectorizer(docs, 1)

	if v.Features() != 1 {
		t.Fatalf("features = %d, want 1", v.Features())
	}
	if _, ok := v.Vocabulary["common"]; !ok {
		t.Fatalf("cap kept %v, want the highest-df term \"common\"", v.Vocabulary)
	}
}

func TestFitVectorizerCapTiesBreakLexically(t *testing.T) {
	t.Parallel()

	// Every term has document frequency 1; the cap must keep the
	// lexically smallest.
	v := FitVectorizer([]string{"zeta", "alpha", "mid"}, 2)
	if v.Features() != 2 {
		t.Fatalf("features = %d, want 2", v.Features())
	}
	if _, ok := v.Vocabulary["alpha"]; !ok {
		t.Fatalf("cap dropped \"alpha\": %v", v.Vocabulary)
	}
	if _, ok := v.Vocabulary["zeta"]; ok {
		t.Fatalf("cap kept \"zeta\" over a lexically smaller tie: %v", v.Vocabulary)
	}
}

func TestTransformIgnoresOutOfVocabularyTerms(t *testing.T) {
	t.Parallel()

	v := FitVectorizer([]string{"check account"}, 0)
	vec := v.Transform("check unseen")
	if len(vec) != 1 {
		t.Fatalf("vector = %v, want only the in-vocabulary term", vec)
	}
	if vec.At(v.Vocabulary["check"]) == 0 {
		t.Fatalf("in-vocabulary term has zero weight: %v", vec)
	}
}

func TestTransformIsL2Normalized(t *testing.T) {
	t.Parallel()

	v := FitVectorizer([]string{"check account balanc", "account balanc"}, 0)
	vec := v.Transform("check account balanc")

	norm := 0.0
	for _, f := range vec {
		norm += f.Value * f.Value
	}
	if norm < 0.999 || norm > 1.001 {
		t.Fatalf("squared norm = %v, want 1", norm)
	}
}

func TestTransformComponentsOrderedByIndex(t *testing.T) {
	t.Parallel()

	v := FitVectorizer([]string{"check account balanc", "account balanc"}, 0)
	vec := v.Transform("check account balanc")
	for i := 1; i < len(vec); i++ {
		if vec[i-1].Index >= vec[i].Index {
			t.Fatalf("components out of order: %v", vec)
		}
	}
}

func TestTransformEmptyDocument(t *testing.T) {
	t.Parallel()

	v := FitVectorizer([]string{"check account"}, 0)
	if vec := v.Transform(""); len(vec) != 0 {
		t.Fatalf("empty document produced %v", vec)
	}
}
