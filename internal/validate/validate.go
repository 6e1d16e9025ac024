// Package validate provides semantic validation for Brazilian document
// identifiers and common field formats. Unlike the textutil extractors,
// which report pattern-shaped substrings verbatim, these validators check
// what the value actually is: CNPJ and CPF include the mod-11 check digits.
package validate

import (
	"regexp"
	"time"
)

var (
	reNonDigit = regexp.MustCompile(`\D`)
	reEmail    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	currencyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^R\$\s*\d+(?:[.,]\d{3})*(?:[.,]\d{2})?$`),
		regexp.MustCompile(`^R\$\s*\d+(?:[.,]\d{2})?$`),
		regexp.MustCompile(`(?i)^\d+(?:[.,]\d{3})*(?:[.,]\d{2})?\s*reais?$`),
		regexp.MustCompile(`(?i)^\d+(?:[.,]\d{2})?\s*reais?$`),
	}
)

// CNPJ reports whether s is a valid CNPJ: 14 digits after stripping
// punctuation, not all identical, with both check digits correct.
func CNPJ(s string) bool {
	d := reNonDigit.ReplaceAllString(s, "")
	if len(d) != 14 || allSame(d) {
		return false
	}
	w1 := []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	w2 := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	return checkDigit(d, w1) == int(d[12]-'0') && checkDigit(d, w2) == int(d[13]-'0')
}

// CPF reports whether s is a valid CPF: 11 digits after stripping
// punctuation, not all identical, with both check digits correct.
func CPF(s string) bool {
	d := reNonDigit.ReplaceAllString(s, "")
	if len(d) != 11 || allSame(d) {
		return false
	}
	w1 := []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	w2 := []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}
	return checkDigit(d, w1) == int(d[9]-'0') && checkDigit(d, w2) == int(d[10]-'0')
}

// checkDigit computes a mod-11 check digit over the leading digits of d
// using the given weight table.
func checkDigit(d string, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += int(d[i]-'0') * w
	}
	if r := sum % 11; r >= 2 {
		return 11 - r
	}
	return 0
}

func allSame(d string) bool {
	for i := 1; i < len(d); i++ {
		if d[i] != d[0] {
			return false
		}
	}
	return true
}

// CEP reports whether s contains exactly 8 digits after stripping
// punctuation. CEPs carry no check digit.
func CEP(s string) bool {
	d := reNonDigit.ReplaceAllString(s, "")
	return len(d) == 8
}

// Phone reports whether s contains 10 or 11 digits after stripping
// punctuation (Brazilian landline or mobile with area code).
func Phone(s string) bool {
	d := reNonDigit.ReplaceAllString(s, "")
	return len(d) == 10 || len(d) == 11
}

// Email reports whether s as a whole is email-shaped.
func Email(s string) bool {
	return reEmail.MatchString(s)
}

// Date reports whether s parses under the given time layout
// (e.g. "02/01/2006" for DD/MM/YYYY).
func Date(s, layout string) bool {
	if s == "" {
		return false
	}
	_, err := time.Parse(layout, s)
	return err == nil
}

// Currency reports whether the whole of s is one of the supported Brazilian
// monetary shapes (R$-prefixed or reais-suffixed).
func Currency(s string) bool {
	if s == "" {
		return false
	}
	for _, re := range currencyPatterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
