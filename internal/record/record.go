package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Known sample fields. Records may carry any number of additional fields.
const (
	KeyID              = "id"
	KeyFinalCaption    = "final_caption"
	KeyASR             = "asr"
	KeyFinalCaptionASR = "final_caption_asr"
	KeyAudioPath       = "audio_path"
	KeyAudioURL        = "audio_url"
	// KeyResolvedAudio names the derived audio reference in serialized output.
	KeyResolvedAudio = "_audio_url"
)

// ErrNotObject reports a JSON value that cannot be decoded into a Record.
var ErrNotObject = errors.New("record is not a JSON object")

type field struct {
	key   string
	value json.RawMessage
}

// Record is an ordered mapping from field name to raw JSON value.
type Record struct {
	fields []field
	index  map[string]int
}

// Len returns the number of fields.
func (r Record) Len() int { return len(r.fields) }

// Keys returns the field names in insertion order.
func (r Record) Keys() []string {
	keys := make([]string, len(r.fields))
	for i, f := range r.fields {
		keys[i] = f.key
	}
	return keys
}

// Has reports whether key is present, even when its value is null.
func (r Record) Has(key string) bool {
	_, ok := r.index[key]
	return ok
}

// Raw returns the undecoded JSON value stored under key.
func (r Record) Raw(key string) (json.RawMessage, bool) {
	i, ok := r.index[key]
	if !ok {
		return nil, false
	}
	return r.fields[i].value, true
}

// String returns the value under key when it is a JSON string.
func (r Record) String(key string) (string, bool) {
	raw, ok := r.Raw(key)
	if !ok {
		return "", false
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Text stringifies the value under key for display and search. Missing and
// null values yield the empty string, strings are unquoted, scalars keep their
// literal text and containers render as compact JSON.
func (r Record) Text(key string) string {
	raw, ok := r.Raw(key)
	if !ok {
		return ""
	}
	raw = bytes.TrimSpace(raw)
	switch {
	case len(raw) == 0:
		return ""
	case raw[0] == '"':
		s, _ := r.String(key)
		return s
	case raw[0] == '{' || raw[0] == '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return string(raw)
		}
		return buf.String()
	case string(raw) == "null":
		return ""
	default:
		return string(raw)
	}
}

// Set stores value under key. An existing key keeps its position.
func (r *Record) Set(key string, value json.RawMessage) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	cp := append(json.RawMessage(nil), value...)
	if i, ok := r.index[key]; ok {
		r.fields[i].value = cp
		return
	}
	r.index[key] = len(r.fields)
	r.fields = append(r.fields, field{key: key, value: cp})
}

// SetString stores s as a JSON string under key.
func (r *Record) SetString(key, s string) {
	r.Set(key, encodeString(s))
}

// Clone returns a deep copy of r.
func (r Record) Clone() Record {
	out := Record{
		fields: make([]field, len(r.fields)),
		index:  make(map[string]int, len(r.fields)),
	}
	for i, f := range r.fields {
		out.fields[i] = field{key: f.key, value: append(json.RawMessage(nil), f.value...)}
		out.index[f.key] = i
	}
	return out
}

// UnmarshalJSON decodes a JSON object, keeping source field order. Duplicate
// keys keep the position of their first occurrence and the last value.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrNotObject
	}

	var out Record
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %v", keyTok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("decode field %q: %w", key, err)
		}
		out.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	if out.index == nil {
		out.index = make(map[string]int)
	}
	*r = out
	return nil
}

// MarshalJSON encodes r as a compact object in insertion order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(encodeString(f.key))
		buf.WriteByte(':')
		value := bytes.TrimSpace(f.value)
		if len(value) == 0 {
			buf.WriteString("null")
			continue
		}
		if err := json.Compact(&buf, value); err != nil {
			return nil, fmt.Errorf("encode field %q: %w", f.key, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeString(s string) json.RawMessage {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)
	return bytes.TrimRight(buf.Bytes(), "\n")
}
