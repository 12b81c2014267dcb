package browse

import (
	"fmt"
	"strings"

	"capbrowse/internal/record"
)

// Field selects which part of a record the query is matched against.
type Field string

const (
	FieldAll             Field = "all"
	FieldID              Field = record.KeyID
	FieldFinalCaption    Field = record.KeyFinalCaption
	FieldASR             Field = record.KeyASR
	FieldFinalCaptionASR Field = record.KeyFinalCaptionASR
	// FieldJSON searches the full serialized record, including fields that
	// have no selector of their own.
	FieldJSON Field = "json"
)

// Fields returns every supported selector in display order.
func Fields() []Field {
	return []Field{FieldAll, FieldID, FieldFinalCaption, FieldASR, FieldFinalCaptionASR, FieldJSON}
}

// ParseField maps user input onto a selector. "raw" is accepted for json and
// the empty string selects all.
func ParseField(value string) (Field, error) {
	key := strings.ToLower(strings.TrimSpace(value))
	switch key {
	case "", "all":
		return FieldAll, nil
	case "json", "raw":
		return FieldJSON, nil
	}
	for _, f := range Fields() {
		if string(f) == key {
			return f, nil
		}
	}
	return FieldAll, fmt.Errorf("unknown field %q (expected one of %s)", value, joinFields(Fields()))
}

// Label returns the human-readable name of f.
func (f Field) Label() string {
	switch f {
	case FieldAll:
		return "All fields"
	case FieldID:
		return "ID"
	case FieldFinalCaption:
		return "Final caption"
	case FieldASR:
		return "ASR"
	case FieldFinalCaptionASR:
		return "Caption + ASR"
	case FieldJSON:
		return "Raw JSON"
	default:
		return string(f)
	}
}

func joinFields(fields []Field) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = string(f)
	}
	return strings.Join(parts, ", ")
}
