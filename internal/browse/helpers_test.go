package browse_test

import (
	"encoding/json"
	"testing"

	"capbrowse/internal/record"
)

func normalizeDoc(t *testing.T, doc string, base string) []*record.Normalized {
	t.Helper()
	var recs []record.Record
	if err := json.Unmarshal([]byte(doc), &recs); err != nil {
		t.Fatalf("unmarshal %s: %v", doc, err)
	}
	return record.Normalize(recs, record.AudioConfig{Base: base})
}

func ids(records []*record.Normalized) []string {
	out := make([]string, len(records))
	for i, n := range records {
		out[i] = n.ID()
	}
	return out
}
