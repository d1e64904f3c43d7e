// Package textutil provides fuzzy text comparison for short strings such as
// language names.
//
// Fingerprints are character trigram frequency vectors over the lowercased,
// space-padded input, so misspellings ("Portugese") still share most of their
// trigrams with the intended word. CosineSimilarity compares two fingerprints.
package textutil
