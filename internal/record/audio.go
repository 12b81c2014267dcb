package record

import "strings"

// AudioConfig carries the prefix used to turn a bare file name into a
// playable reference. Base may be a relative directory ("./audio/") or an
// absolute URL ("https://cdn.example.com/audio").
type AudioConfig struct {
	Base string
}

// ResolveAudioURL derives the playable audio reference for rec. A non-empty
// audio_url string always wins; otherwise the basename of audio_path is joined
// onto cfg.Base. The empty string means the record has no audio. Only string
// manipulation happens here, nothing touches the filesystem.
func ResolveAudioURL(rec Record, cfg AudioConfig) string {
	if direct, ok := rec.String(KeyAudioURL); ok && direct != "" {
		return direct
	}
	path, ok := rec.String(KeyAudioPath)
	if !ok || path == "" {
		return ""
	}
	name := Basename(path)
	if name == "" {
		return ""
	}
	return JoinBase(cfg.Base, name)
}

// Basename returns the final segment of p, treating both '/' and '\' as
// separators. A path that ends in a separator has no basename.
func Basename(p string) string {
	if i := strings.LastIndexAny(p, `/\`); i >= 0 {
		return p[i+1:]
	}
	return p
}

// JoinBase appends name to base with exactly one '/' between them, whatever
// run of separators base ended with. An empty base yields name unchanged.
func JoinBase(base, name string) string {
	if base == "" {
		return name
	}
	return strings.TrimRight(base, `/\`) + "/" + name
}
