// Package record models annotated audio samples as loaded from the source
// document.
//
// A Record keeps every field of the source object in its original order and
// never interprets fields it does not know about. Normalize runs the audio
// URL resolver over a loaded collection exactly once and produces immutable
// Normalized values; the derived reference is surfaced in serialized output as
// the _audio_url field so the raw view shows what the browser will play.
package record
