package language

import (
	"cmp"
	"slices"

	"langcodes/internal/textutil"
)

// minSuggestionScore is the trigram cosine similarity a table name needs to
// be offered as a suggestion.
const minSuggestionScore = 0.4

// SuggestNames returns up to limit table names that resemble name, closest
// first. Ties are broken alphabetically.
func SuggestNames(name string, limit int) []string {
	return suggestFrom(std.names, name, limit)
}

func suggestFrom(names map[string]string, name string, limit int) []string {
	query := textutil.NewFingerprint(name)
	if query == nil || limit <= 0 {
		return nil
	}
	type scored struct {
		name  string
		score float64
	}
	var hits []scored
	for candidate := range names {
		score := textutil.CosineSimilarity(query, textutil.NewFingerprint(candidate))
		if score >= minSuggestionScore {
			hits = append(hits, scored{candidate, score})
		}
	}
	slices.SortFunc(hits, func(a, b scored) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})
	if len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}
	return out
}
