package browse

import (
	"strings"

	"capbrowse/internal/record"
	"capbrowse/internal/textutil"
)

// allSeparator joins the projected fields for FieldAll. Queries are trimmed,
// so a match can never start or end on it.
const allSeparator = "\n"

// NormalizeQuery trims and case-folds a raw query.
func NormalizeQuery(query string) string {
	return textutil.Lower(strings.TrimSpace(query))
}

// Project builds the case-folded text that a query is matched against.
func Project(n *record.Normalized, field Field) string {
	if n == nil {
		return ""
	}
	switch field {
	case FieldAll:
		return textutil.Lower(strings.Join([]string{
			n.Text(record.KeyID),
			n.Text(record.KeyFinalCaption),
			n.Text(record.KeyASR),
			n.Text(record.KeyFinalCaptionASR),
			n.AudioURL,
		}, allSeparator))
	case FieldJSON:
		return textutil.Lower(n.JSON())
	default:
		return textutil.Lower(n.Text(string(field)))
	}
}

// Matches reports whether n satisfies query under field. An empty query
// matches every record.
func Matches(n *record.Normalized, query string, field Field) bool {
	return matchNormalized(n, NormalizeQuery(query), field)
}

func matchNormalized(n *record.Normalized, needle string, field Field) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(Project(n, field), needle)
}

// Filter returns the records of all that match, in their original order. The
// result is always a new slice.
func Filter(all []*record.Normalized, query string, field Field) []*record.Normalized {
	needle := NormalizeQuery(query)
	out := make([]*record.Normalized, 0, len(all))
	for _, n := range all {
		if matchNormalized(n, needle, field) {
			out = append(out, n)
		}
	}
	return out
}
