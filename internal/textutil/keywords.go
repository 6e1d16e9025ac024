package textutil

import (
	"sort"
	"strings"
)

// Keyword pairs a normalized token with its occurrence count.
type Keyword struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// Keywords normalizes text, drops stopwords and tokens of length <= 2,
// tallies the remaining tokens, and returns those occurring at least minFreq
// times, ordered by count descending. Tokens with equal counts keep the
// order of their first appearance in the text; this tie order is part of the
// contract.
func Keywords(text string, minFreq int) []Keyword {
	if text == "" {
		return nil
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, tok := range strings.Fields(Normalize(text)) {
		if len(tok) <= 2 || IsStopword(tok) {
			continue
		}
		if _, ok := counts[tok]; !ok {
			firstSeen[tok] = i
		}
		counts[tok]++
	}

	out := make([]Keyword, 0, len(counts))
	for tok, n := range counts {
		if n >= minFreq {
			out = append(out, Keyword{Token: tok, Count: n})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return firstSeen[out[i].Token] < firstSeen[out[j].Token]
	})
	return out
}
