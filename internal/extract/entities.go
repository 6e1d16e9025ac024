// Package extract assembles the structured entities found in a document's
// text and validates the serialized payload against a JSON schema before it
// is persisted or returned to callers.
package extract

import (
	"encoding/json"
	"fmt"

	"github.com/etldocs/doctext/internal/textutil"
	"github.com/etldocs/doctext/internal/validate"
)

// EntitySet groups every entity kind extracted from one text. Slices keep
// extractor output verbatim: pattern-shaped, order-preserving, unvalidated.
type EntitySet struct {
	Numbers []string `json:"numbers"`
	Dates   []string `json:"dates"`
	Amounts []string `json:"amounts"`
	TaxIDs  []string `json:"tax_ids"`
	Phones  []string `json:"phones"`
	CEPs    []string `json:"postal_codes"`
	Emails  []string `json:"emails"`
}

// Counts summarizes an EntitySet for logging and listings.
type Counts struct {
	Total        int `json:"total"`
	ValidTaxIDs  int `json:"valid_tax_ids"`
	ValidEmails  int `json:"valid_emails"`
	ValidAmounts int `json:"valid_amounts"`
}

// CollectEntities runs every pattern extractor over text.
func CollectEntities(text string) EntitySet {
	return EntitySet{
		Numbers: textutil.ExtractNumbers(text),
		Dates:   textutil.ExtractDates(text),
		Amounts: textutil.ExtractCurrency(text),
		TaxIDs:  textutil.ExtractTaxIDs(text),
		Phones:  textutil.ExtractPhones(text),
		CEPs:    textutil.ExtractCEPs(text),
		Emails:  textutil.ExtractEmails(text),
	}
}

// Summarize counts the entities and how many of them pass semantic
// validation. Extraction output itself is never filtered; a tax ID that
// fails its check digits stays in the set.
func (e EntitySet) Summarize() Counts {
	c := Counts{
		Total: len(e.Numbers) + len(e.Dates) + len(e.Amounts) +
			len(e.TaxIDs) + len(e.Phones) + len(e.CEPs) + len(e.Emails),
	}
	for _, id := range e.TaxIDs {
		if validate.CNPJ(id) || validate.CPF(id) {
			c.ValidTaxIDs++
		}
	}
	for _, m := range e.Emails {
		if validate.Email(m) {
			c.ValidEmails++
		}
	}
	for _, a := range e.Amounts {
		if validate.Currency(a) {
			c.ValidAmounts++
		}
	}
	return c
}

// Marshal serializes the set and validates it against the entity payload
// schema, so malformed payloads never reach the database.
func (e EntitySet) Marshal() ([]byte, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal entities: %w", err)
	}
	if err := ValidatePayload(b); err != nil {
		return nil, err
	}
	return b, nil
}
