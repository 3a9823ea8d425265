package matcher

import (
	"strings"

	"github.com/jtkorhonen/docmatch/internal/domain/records"
)

// businessSuffixes are legal-entity markers carrying no identity signal:
// "Doe Media" and "Doe Media Oy" are the same counterparty.
var businessSuffixes = map[string]bool{
	"oy": true, "ab": true, "oyj": true, "tmi": true,
	"ltd": true, "llc": true, "inc": true, "corp": true,
	"gmbh": true, "sa": true, "sas": true, "as": true,
	"bv": true, "nv": true, "ag": true, "spa": true,
	"oy.": true, "ab.": true, "ltd.": true, "inc.": true, "corp.": true,
}

// tokenizeName splits a counterparty name into a normalized token set:
// lowercased, trailing punctuation stripped, business suffixes dropped.
// The set is order-insensitive by construction.
func tokenizeName(name string) map[string]bool {
	tokens := make(map[string]bool)
	for _, tok := range strings.Fields(records.NormalizeText(name)) {
		tok = strings.TrimRight(tok, ".,;:")
		if tok == "" || businessSuffixes[tok] {
			continue
		}
		tokens[tok] = true
	}
	return tokens
}

// jaccard returns |intersection| / |union| of two token sets,
// or 0 when both are empty.
func jaccard(a, b map[string]bool) float64 {
	intersection := 0
	for tok := range a {
		if b[tok] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// equalTokenSets reports whether two token sets contain exactly the
// same tokens.
func equalTokenSets(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for tok := range a {
		if !b[tok] {
			return false
		}
	}
	return true
}
