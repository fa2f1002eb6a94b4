package check

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-json"

	"github.com/neuronexus/schemacheck/internal/domain"
)

// Violation messages for the fixed schema checks.
const (
	MissingFieldsPrefix = "Missing required fields: "
	DraftViolation      = "Schema must use JSON Schema Draft " + domain.DraftMarker
	IDViolation         = "Schema $id must start with " + domain.IDPrefix
)

var errInvalidUTF8 = errors.New("content is not valid UTF-8")

// Check parses content as a JSON document and applies the schema checks in
// priority order, stopping at the first failing check. It never returns an
// error: parse failures are reported as a single violation.
func Check(content []byte) domain.ValidationResult {
	if !utf8.Valid(content) {
		return domain.Fail(domain.ParseViolation(errInvalidUTF8))
	}

	var raw any
	if err := json.Unmarshal(content, &raw); err != nil {
		return domain.Fail(domain.ParseViolation(err))
	}

	// Non-object documents have no keys, so every required field is missing.
	doc, _ := raw.(map[string]any)

	if missing := MissingFields(doc); len(missing) > 0 {
		return domain.Fail(MissingFieldsPrefix + strings.Join(missing, ", "))
	}

	if s, ok := doc["$schema"].(string); !ok || !strings.Contains(s, domain.DraftMarker) {
		return domain.Fail(DraftViolation)
	}

	if id, ok := doc["$id"].(string); !ok || !strings.HasPrefix(id, domain.IDPrefix) {
		return domain.Fail(IDViolation)
	}

	return domain.Pass()
}

// MissingFields returns the required fields that are absent or falsy in doc,
// in declaration order.
func MissingFields(doc map[string]any) []string {
	var missing []string
	for _, field := range domain.RequiredFields {
		if !truthy(doc[field]) {
			missing = append(missing, field)
		}
	}
	return missing
}

// truthy treats null, false, "" and 0 as absent. Objects and arrays count as
// present even when empty.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0
	default:
		return true
	}
}
