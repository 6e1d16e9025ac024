package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// deaccent returns a transformer that decomposes to NFD and drops combining
// marks, leaving plain base letters. Transformers carry state, so each call
// gets a fresh chain rather than sharing one.
func deaccent() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
}

// Normalize reduces text to lowercase ASCII letters, digits and single
// spaces: accents are stripped, everything else becomes a space, and runs of
// whitespace collapse. Normalizing already-normalized text is a no-op.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	out, _, err := transform.String(deaccent(), s)
	if err != nil {
		// malformed input transforms as far as possible; fall back to raw
		out = s
	}
	out = strings.ToLower(out)

	var b strings.Builder
	b.Grow(len(out))
	for _, r := range out {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

var (
	reHTMLTag    = regexp.MustCompile(`<[^>]+>`)
	reNamedEnt   = regexp.MustCompile(`&[a-zA-Z]+;`)
	reNumericEnt = regexp.MustCompile(`&#\d+;`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

// StripHTML removes tag spans and HTML entities, then collapses whitespace.
// Entities are deleted, not decoded. Tag matching is non-greedy with no
// nesting awareness: a '>' inside an attribute value ends the tag early.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	s = reHTMLTag.ReplaceAllString(s, "")
	s = reNamedEnt.ReplaceAllString(s, "")
	s = reNumericEnt.ReplaceAllString(s, "")
	s = reWhitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
