package textnorm

import "strings"

// translations expands matching vocabulary across the Greek/English boundary,
// so a Greek invoice line and an English bank narrative can still share
// keywords. Keys and values are kept in normalized form.
var translations = map[string]string{
	"τοπογραφικο":  "topographical",
	"διαγραμμα":    "diagram",
	"στασεων":      "stations",
	"τεμαχιο":      "plot",
	"ετοιμασια":    "preparation",
	"στοιχειων":    "elements",
	"μηχανικοι":    "engineers",
	"τοπογραφοι":   "topographers",
	"architecture": "αρχιτεκτονικη",
	"design":       "σχεδιασμος",
	"payment":      "πληρωμη",
}

// Keywords normalizes the text, splits it into tokens and expands each token
// with its translation when one is known. The result is deduplicated and
// keeps first-seen order.
func Keywords(text string) []string {
	fields := strings.Fields(Normalize(text))
	if len(fields) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(fields)*2)
	keywords := make([]string, 0, len(fields)*2)

	add := func(word string) {
		if _, ok := seen[word]; ok {
			return
		}
		seen[word] = struct{}{}
		keywords = append(keywords, word)
	}

	for _, field := range fields {
		add(field)
		if translated, ok := translations[field]; ok {
			add(translated)
		}
	}

	return keywords
}

// Overlap reports how many keywords two texts share, plus the share as a
// fraction of the smaller keyword set.
func Overlap(a, b string) (shared int, ratio float64) {
	keywordsA := Keywords(a)
	keywordsB := Keywords(b)
	if len(keywordsA) == 0 || len(keywordsB) == 0 {
		return 0, 0
	}

	setA := make(map[string]struct{}, len(keywordsA))
	for _, word := range keywordsA {
		setA[word] = struct{}{}
	}
	for _, word := range keywordsB {
		if _, ok := setA[word]; ok {
			shared++
		}
	}

	smaller := len(keywordsA)
	if len(keywordsB) < smaller {
		smaller = len(keywordsB)
	}

	return shared, float64(shared) / float64(smaller)
}
