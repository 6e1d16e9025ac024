package textutil

import "strings"

// Similarity computes token-set Jaccard similarity between two texts over
// their normalized whitespace tokens. Duplicates collapse (set semantics).
// Returns a value in [0,1]; 0 when either side normalizes to no tokens.
// Symmetric, and 1.0 for identical non-empty inputs.
func Similarity(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0.0
	}

	inter := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	return float64(inter) / float64(union)
}

func tokenSet(s string) map[string]struct{} {
	fields := strings.Fields(Normalize(s))
	if len(fields) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}
