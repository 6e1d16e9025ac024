package textutil

import "regexp"

var (
	reNumber = regexp.MustCompile(`\d+(?:[.,]\d+)?`)

	// Fixed date shapes, scanned independently in this order; results are
	// concatenated without dedup or position sorting.
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\d{2}/\d{2}/\d{4}`), // DD/MM/YYYY
		regexp.MustCompile(`\d{2}-\d{2}-\d{4}`), // DD-MM-YYYY
		regexp.MustCompile(`\d{4}-\d{2}-\d{2}`), // YYYY-MM-DD
		regexp.MustCompile(`\d{2}/\d{2}/\d{2}`), // DD/MM/YY
	}

	currencyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`R\$\s*\d+(?:[.,]\d{3})*(?:[.,]\d{2})?`),     // R$ 1.234,56
		regexp.MustCompile(`R\$\s*\d+(?:[.,]\d{2})?`),                   // R$ 1234,56
		regexp.MustCompile(`(?i)\d+(?:[.,]\d{3})*(?:[.,]\d{2})?\s*reais?`), // 1.234,56 reais
		regexp.MustCompile(`(?i)\d+(?:[.,]\d{2})?\s*reais?`),            // 1234,56 reais
	}

	reNonDigit = regexp.MustCompile(`\D`)
	reEmail    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
)

const (
	cnpjDigits  = 14
	cpfDigits   = 11
	cepDigits   = 8
	phoneDigits = 10
	cellDigits  = 11
)

// ExtractNumbers returns every digit run, optionally with a single '.' or ','
// decimal part, in scan order.
func ExtractNumbers(s string) []string {
	if s == "" {
		return nil
	}
	return reNumber.FindAllString(s, -1)
}

// ExtractDates returns matches of the four supported date shapes, grouped by
// shape in declaration order. No calendar validation is performed.
func ExtractDates(s string) []string {
	return scanPatterns(s, datePatterns)
}

// ExtractCurrency returns Brazilian monetary expressions: R$-prefixed amounts
// and bare amounts followed by "real"/"reais". The matched text is returned
// verbatim, not parsed into a number.
func ExtractCurrency(s string) []string {
	return scanPatterns(s, currencyPatterns)
}

// ExtractTaxIDs strips every non-digit from the input and scans the resulting
// digit string for CNPJ (14-digit) windows followed by CPF (11-digit)
// windows. Windows at every offset are reported: digits from adjacent fields
// can merge, and one physical number can appear under both lengths. Callers
// needing certainty must check digits themselves (see the validate package).
func ExtractTaxIDs(s string) []string {
	digits := stripNonDigits(s)
	out := digitWindows(digits, cnpjDigits, nil)
	return digitWindows(digits, cpfDigits, out)
}

// ExtractPhones scans the digit-stripped input for 10-digit then 11-digit
// windows at every offset. Overlapping matches are expected, same caveat as
// ExtractTaxIDs.
func ExtractPhones(s string) []string {
	digits := stripNonDigits(s)
	out := digitWindows(digits, phoneDigits, nil)
	return digitWindows(digits, cellDigits, out)
}

// ExtractCEPs scans the digit-stripped input for 8-digit windows.
func ExtractCEPs(s string) []string {
	return digitWindows(stripNonDigits(s), cepDigits, nil)
}

// ExtractEmails returns email-shaped substrings (local@domain.tld with a TLD
// of at least two letters).
func ExtractEmails(s string) []string {
	if s == "" {
		return nil
	}
	return reEmail.FindAllString(s, -1)
}

// scanPatterns applies each pattern in declaration order and concatenates
// the matches. A span claimed by an earlier pattern is masked out before the
// later patterns run, so a broader shape is never re-reported as one of its
// narrower sub-shapes (DD/MM/YY inside DD/MM/YYYY, "R$ 1.23" inside
// "R$ 1.234,56"). Identical text at distinct positions is still reported
// once per position.
func scanPatterns(s string, patterns []*regexp.Regexp) []string {
	if s == "" {
		return nil
	}
	buf := []byte(s)
	var out []string
	for _, re := range patterns {
		for _, span := range re.FindAllIndex(buf, -1) {
			out = append(out, s[span[0]:span[1]])
			for i := span[0]; i < span[1]; i++ {
				buf[i] = 0x00 // NUL never matches any pattern
			}
		}
	}
	return out
}

func stripNonDigits(s string) string {
	if s == "" {
		return ""
	}
	return reNonDigit.ReplaceAllString(s, "")
}

// digitWindows appends every width-sized window of digits to dst, sliding one
// digit at a time.
func digitWindows(digits string, width int, dst []string) []string {
	for i := 0; i+width <= len(digits); i++ {
		dst = append(dst, digits[i:i+width])
	}
	return dst
}
