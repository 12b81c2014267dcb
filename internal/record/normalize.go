package record

import (
	"bytes"
	"encoding/json"
)

// Normalized is a loaded Record plus its resolved audio reference. Values are
// built once by Normalize and must not be modified afterwards.
type Normalized struct {
	Record

	// AudioURL is the resolved audio reference; empty when absent.
	AudioURL string

	serialized string
}

// NewNormalized resolves rec's audio reference and caches its serialization.
func NewNormalized(rec Record, cfg AudioConfig) *Normalized {
	n := &Normalized{Record: rec, AudioURL: ResolveAudioURL(rec, cfg)}
	n.serialized = serialize(rec, n.AudioURL)
	return n
}

// Normalize maps every record through the audio resolver, preserving order.
func Normalize(records []Record, cfg AudioConfig) []*Normalized {
	out := make([]*Normalized, 0, len(records))
	for _, rec := range records {
		out = append(out, NewNormalized(rec, cfg))
	}
	return out
}

// ID returns the record identifier as text.
func (n *Normalized) ID() string { return n.Text(KeyID) }

// HasAudio reports whether a playable reference was resolved.
func (n *Normalized) HasAudio() bool { return n.AudioURL != "" }

// JSON returns the indented rendering of every field, including _audio_url.
func (n *Normalized) JSON() string { return n.serialized }

// MarshalJSON encodes the record together with its derived field.
func (n *Normalized) MarshalJSON() ([]byte, error) {
	return []byte(n.serialized), nil
}

// Serialize returns the stable, indented text of n. It is the form used for
// the raw view and for copying a full record.
func Serialize(n *Normalized) string {
	if n == nil {
		return "null"
	}
	return n.serialized
}

// FindByID returns the first record whose id text equals id. Identifiers are
// not assumed to be unique.
func FindByID(records []*Normalized, id string) (*Normalized, bool) {
	for _, n := range records {
		if n != nil && n.ID() == id {
			return n, true
		}
	}
	return nil, false
}

func serialize(rec Record, audioURL string) string {
	view := rec.Clone()
	view.SetString(KeyResolvedAudio, audioURL)
	compact, err := view.MarshalJSON()
	if err != nil {
		return "{}"
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return string(compact)
	}
	return buf.String()
}
