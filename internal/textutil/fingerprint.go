package textutil

import (
	"math"
	"strings"
)

// Fingerprint represents a trigram-frequency vector for text similarity comparison.
type Fingerprint struct {
	tokens map[string]float64
	norm   float64
}

// NewFingerprint creates a fingerprint from the provided text.
// Returns nil if the text is blank.
func NewFingerprint(text string) *Fingerprint {
	grams := Trigrams(text)
	if len(grams) == 0 {
		return nil
	}
	counts := make(map[string]float64, len(grams))
	for _, gram := range grams {
		counts[gram]++
	}
	var norm float64
	for _, count := range counts {
		norm += count * count
	}
	return &Fingerprint{
		tokens: counts,
		norm:   math.Sqrt(norm),
	}
}

// Trigrams lowercases text, collapses whitespace, pads it with one space on
// each side, and returns every run of three runes.
func Trigrams(text string) []string {
	normalized := strings.Join(strings.Fields(strings.ToLower(text)), " ")
	if normalized == "" {
		return nil
	}
	runes := []rune(" " + normalized + " ")
	grams := make([]string, 0, len(runes)-2)
	for i := 0; i+3 <= len(runes); i++ {
		grams = append(grams, string(runes[i:i+3]))
	}
	return grams
}

// TokenCount returns the number of unique trigrams in the fingerprint.
func (f *Fingerprint) TokenCount() int {
	if f == nil {
		return 0
	}
	return len(f.tokens)
}
