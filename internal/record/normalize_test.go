package record_test

import (
	"encoding/json"
	"strings"
	"testing"

	"capbrowse/internal/record"
)

func TestNormalizePreservesOrderAndFields(t *testing.T) {
	var recs []record.Record
	doc := `[{"id":"a1","audio_path":"/data/x/Y01.wav","final_caption":"a cat meows","extra":{"k":1}},{"id":"a2"}]`
	if err := json.Unmarshal([]byte(doc), &recs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := record.Normalize(recs, record.AudioConfig{Base: "./audio/"})
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].AudioURL != "./audio/Y01.wav" {
		t.Fatalf("unexpected audio url: %q", got[0].AudioURL)
	}
	if got[1].HasAudio() {
		t.Fatalf("expected no audio for second record, got %q", got[1].AudioURL)
	}
	if got[0].ID() != "a1" || got[1].ID() != "a2" {
		t.Fatalf("order not preserved: %q, %q", got[0].ID(), got[1].ID())
	}
	if recs[0].Has(record.KeyResolvedAudio) {
		t.Fatal("normalize must not modify the source record")
	}
	if got[0].Text("extra") != `{"k":1}` {
		t.Fatalf("extra field lost: %q", got[0].Text("extra"))
	}
}

func TestSerializeIndentsInInsertionOrder(t *testing.T) {
	rec := mustRecord(t, `{"id":"a1","z":1,"a":"<b>"}`)
	n := record.NewNormalized(rec, record.AudioConfig{Base: "./audio/"})
	want := strings.Join([]string{
		"{",
		`  "id": "a1",`,
		`  "z": 1,`,
		`  "a": "<b>",`,
		`  "_audio_url": ""`,
		"}",
	}, "\n")
	if got := record.Serialize(n); got != want {
		t.Fatalf("serialize mismatch\n got: %s\nwant: %s", got, want)
	}
	if record.Serialize(n) != n.JSON() {
		t.Fatal("expected Serialize to match JSON")
	}
}

func TestSerializeReplacesExistingDerivedField(t *testing.T) {
	rec := mustRecord(t, `{"_audio_url":"stale","audio_url":"https://x/a.wav","id":"a"}`)
	n := record.NewNormalized(rec, record.AudioConfig{})
	if !strings.HasPrefix(n.JSON(), "{\n  \"_audio_url\": \"https://x/a.wav\",") {
		t.Fatalf("expected derived field replaced in place, got %s", n.JSON())
	}
}

func TestNormalizedMarshalIncludesDerivedField(t *testing.T) {
	n := record.NewNormalized(mustRecord(t, `{"id":"a","audio_path":"a/b.wav"}`), record.AudioConfig{Base: "/m"})
	out, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"id":"a","audio_path":"a/b.wav","_audio_url":"/m/b.wav"}` {
		t.Fatalf("unexpected marshal output: %s", out)
	}
}

func TestFindByIDReturnsFirstMatch(t *testing.T) {
	cfg := record.AudioConfig{}
	recs := []*record.Normalized{
		record.NewNormalized(mustRecord(t, `{"id":"dup","asr":"first"}`), cfg),
		record.NewNormalized(mustRecord(t, `{"id":"dup","asr":"second"}`), cfg),
	}
	got, ok := record.FindByID(recs, "dup")
	if !ok || got.Text(record.KeyASR) != "first" {
		t.Fatalf("expected first duplicate, got %v %v", got, ok)
	}
	if _, ok := record.FindByID(recs, "missing"); ok {
		t.Fatal("expected missing id to be absent")
	}
}
