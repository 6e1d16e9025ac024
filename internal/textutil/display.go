package textutil

import "strings"

const ellipsis = "..."

// TruncateForDisplay returns text unchanged when it fits in maxLen
// characters; otherwise the first maxLen-3 characters plus "...". Counts are
// in runes so multi-byte text is not cut mid-character. maxLen below 3
// returns just the ellipsis.
func TruncateForDisplay(s string, maxLen int) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	keep := maxLen - len(ellipsis)
	if keep < 0 {
		keep = 0
	}
	return string(r[:keep]) + ellipsis
}

// WordCount returns the number of whitespace-delimited words.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// CharCount returns the number of characters in s. When includeSpaces is
// false, ASCII space characters are not counted.
func CharCount(s string, includeSpaces bool) int {
	if !includeSpaces {
		s = strings.ReplaceAll(s, " ", "")
	}
	n := 0
	for range s {
		n++
	}
	return n
}

// Summarize returns text unchanged when it has at most maxWords words.
// Otherwise the first maxWords words are rejoined with single spaces and
// "..." is appended; note the truncated form normalizes internal whitespace
// while the unchanged form does not.
func Summarize(s string, maxWords int) string {
	if s == "" {
		return ""
	}
	if maxWords < 0 {
		maxWords = 0
	}
	words := strings.Fields(s)
	if len(words) <= maxWords {
		return s
	}
	return strings.Join(words[:maxWords], " ") + ellipsis
}
