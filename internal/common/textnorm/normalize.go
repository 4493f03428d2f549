// Package textnorm normalizes free-text fields (partner names, payment
// descriptions) for fuzzy matching. The corpus is bilingual Greek/English,
// so normalization folds Greek tonos diacritics and drops the legal-form
// suffixes that differ between a bank statement and an invoice header.
package textnorm

import (
	"regexp"
	"strings"
)

var diacriticReplacer = strings.NewReplacer(
	"ά", "α",
	"έ", "ε",
	"ή", "η",
	"ί", "ι",
	"ό", "ο",
	"ύ", "υ",
	"ώ", "ω",
)

// nonWord matches anything that is not a letter, digit, underscore or
// whitespace in any script.
var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)

var spaces = regexp.MustCompile(`\s+`)

// legalSuffixes are matched per token, after punctuation stripping, so the
// dotted Greek forms (ε.π.ε) arrive here already split and are covered by
// their compact spellings.
var legalSuffixes = map[string]struct{}{
	"ltd":     {},
	"limited": {},
	"inc":     {},
	"corp":    {},
	"company": {},
	"co":      {},
	"επε":     {},
	"αε":      {},
	"εε":      {},
}

// Normalize lowercases, folds Greek diacritics, strips punctuation and
// legal-form suffixes, and collapses whitespace.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ToLower(strings.TrimSpace(text))
	text = diacriticReplacer.Replace(text)
	text = nonWord.ReplaceAllString(text, " ")
	text = spaces.ReplaceAllString(text, " ")

	fields := strings.Fields(text)
	kept := fields[:0]
	for _, field := range fields {
		if _, isSuffix := legalSuffixes[field]; isSuffix {
			continue
		}
		kept = append(kept, field)
	}

	return strings.Join(kept, " ")
}
