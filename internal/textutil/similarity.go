package textutil

// CosineSimilarity returns the cosine of the angle between two trigram
// vectors, in [0, 1]. Nil or blank fingerprints score 0.
func CosineSimilarity(a, b *Fingerprint) float64 {
	if a == nil || b == nil || a.norm == 0 || b.norm == 0 {
		return 0
	}
	small, large := a.tokens, b.tokens
	if len(small) > len(large) {
		small, large = large, small
	}
	var dot float64
	for gram, count := range small {
		dot += count * large[gram]
	}
	if dot == 0 {
		return 0
	}
	return dot / (a.norm * b.norm)
}
