package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildEntitySchema returns the JSON-Schema (draft 2020-12 subset) for a
// serialized EntitySet as a generic map. Kept as data so it can also be
// served to API consumers.
func BuildEntitySchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"numbers":      stringArray(`^\d+(?:[.,]\d+)?$`),
			"dates":        stringArray(""),
			"amounts":      stringArray(""),
			"tax_ids":      stringArray(`^\d{11}$|^\d{14}$`),
			"phones":       stringArray(`^\d{10,11}$`),
			"postal_codes": stringArray(`^\d{8}$`),
			"emails":       stringArray(""),
		},
		"required": []string{
			"numbers", "dates", "amounts", "tax_ids",
			"phones", "postal_codes", "emails",
		},
	}
}

// stringArray describes a nullable array of strings, optionally constrained
// by a pattern. Extractors report absent kinds as null.
func stringArray(pattern string) map[string]any {
	items := map[string]any{"type": "string"}
	if pattern != "" {
		items["pattern"] = pattern
	}
	return map[string]any{
		"type":  []any{"array", "null"},
		"items": items,
	}
}

// ValidatePayload validates a serialized EntitySet against the schema.
func ValidatePayload(data []byte) error {
	b, err := json.Marshal(BuildEntitySchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("entities.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("entities.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("entity payload does not match schema: %w", err)
	}
	return nil
}
