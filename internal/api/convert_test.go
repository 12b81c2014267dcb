package api

import (
	"encoding/json"
	"net/url"
	"testing"

	"capbrowse/internal/browse"
	"capbrowse/internal/record"
)

func normalizeDoc(t *testing.T, doc string) []*record.Normalized {
	t.Helper()
	var recs []record.Record
	if err := json.Unmarshal([]byte(doc), &recs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return record.Normalize(recs, record.AudioConfig{Base: "./audio/"})
}

func TestFromNormalized(t *testing.T) {
	recs := normalizeDoc(t, `[{"id":"Y01","final_caption":"A cat","asr":7,"audio_path":"/x/Y01.wav"}]`)
	item := FromNormalized(recs[0])

	if item.ID != "Y01" || item.AudioURL != "./audio/Y01.wav" {
		t.Fatalf("unexpected item: %+v", item)
	}
	if item.FinalCaption != "A cat" || item.ASR != "7" || item.FinalCaptionASR != "" {
		t.Fatalf("unexpected text fields: %+v", item)
	}
	if item.JSON != recs[0].JSON() {
		t.Fatalf("expected serialized JSON to match, got %q", item.JSON)
	}
}

func TestFromNormalizedSliceNeverNil(t *testing.T) {
	if got := FromNormalizedSlice(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestParseState(t *testing.T) {
	base := browse.NewState(20)
	tests := []struct {
		name  string
		query string
		want  browse.State
	}{
		{name: "empty", query: "", want: base},
		{name: "all values", query: "q=cat&field=asr&page=3&page_size=10", want: browse.State{Query: "cat", Field: browse.FieldASR, Page: 3, PageSize: 10}},
		{name: "unknown field", query: "field=nope", want: browse.State{Field: browse.FieldAll, Page: 1, PageSize: 20}},
		{name: "raw alias", query: "field=RAW", want: browse.State{Field: browse.FieldJSON, Page: 1, PageSize: 20}},
		{name: "bad numbers", query: "page=x&page_size=-5", want: base},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("parse query: %v", err)
			}
			if got := ParseState(values, base); got != tt.want {
				t.Fatalf("ParseState(%q) = %+v, want %+v", tt.query, got, tt.want)
			}
		})
	}
}

func TestTruthy(t *testing.T) {
	for _, value := range []string{"1", "true", "YES", " on "} {
		if !Truthy(value) {
			t.Fatalf("expected %q to be truthy", value)
		}
	}
	for _, value := range []string{"", "0", "false", "off"} {
		if Truthy(value) {
			t.Fatalf("expected %q to be falsy", value)
		}
	}
}
