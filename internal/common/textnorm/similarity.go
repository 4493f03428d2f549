package textnorm

import (
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// substringScore is what containment earns. It sits above the usual partner
// acceptance thresholds but below an exact match, so "acme" against
// "acme holdings" outranks a pure edit-distance near miss.
const substringScore = 0.90

// Similarity scores two strings in [0, 1] after normalization. Equal strings
// score 1, containment scores substringScore, everything else degrades with
// edit distance relative to the longer string.
func Similarity(a, b string) float64 {
	a = Normalize(a)
	b = Normalize(b)
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return substringScore
	}

	runesA := []rune(a)
	runesB := []rune(b)
	distance := levenshtein.DistanceForStrings(runesA, runesB, levenshtein.DefaultOptions)

	maxLen := len(runesA)
	if len(runesB) > maxLen {
		maxLen = len(runesB)
	}

	return 1 - float64(distance)/float64(maxLen)
}
