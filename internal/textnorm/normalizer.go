// Package textnorm reduces raw user utterances to a normalized
// bag-of-stems string used for feature extraction. The output is never
// shown to a user, so lossy stemming is acceptable.
package textnorm

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball/english"
)

const minTokenLength = 3

var wordPattern = regexp.MustCompile(`[a-z]+`)

var stopWords = wordSet(
	"about", "above", "after", "again", "against", "all", "and", "any",
	"are", "because", "been", "before", "being", "below", "between",
	"both", "but", "can", "could", "did", "does", "doing", "down",
	"during", "each", "few", "for", "from", "further", "had", "has",
	"have", "having", "her", "here", "hers", "herself", "him", "himself",
	"his", "how", "into", "its", "itself", "just", "more", "most",
	"myself", "nor", "not", "now", "off", "once", "only", "other", "our",
	"ours", "ourselves", "out", "over", "own", "same", "she", "should",
	"some", "such", "than", "that", "the", "their", "theirs", "them",
	"themselves", "then", "there", "these", "they", "this", "those",
	"through", "too", "under", "until", "very", "was", "were", "what",
	"when", "where", "which", "while", "who", "whom", "why", "will",
	"with", "would", "you", "your", "yours", "yourself", "yourselves",
)

// Normalizer is a deterministic raw-text to normalized-token-string
// transform. The stopword set and stemming rule are fixed at
// construction, so the same input always yields the same output.
type Normalizer struct{}

// New returns a Normalizer for English text.
func New() *Normalizer {
	return &Normalizer{}
}

// Normalize lowercases raw, strips everything that is not a letter or
// whitespace, drops stopwords and tokens shorter than three characters,
// stems the survivors, and joins them with single spaces in original
// order. Empty input returns an empty string. Stems that fall below the
// length floor or land on a stopword are dropped as well, so the
// transform is stable under repeated application.
func (n *Normalizer) Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	tokens := wordPattern.FindAllString(strings.ToLower(raw), -1)
	stems := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !keep(token) {
			continue
		}
		stem := english.Stem(token, false)
		if !keep(stem) {
			continue
		}
		stems = append(stems, stem)
	}
	return strings.Join(stems, " ")
}

func keep(token string) bool {
	if len(token) < minTokenLength {
		return false
	}
	_, stop := stopWords[token]
	return !stop
}

func wordSet(values ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, v := range values {
		out[v] = struct{}{}
	}
	return out
}
