package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ScenarioSamples is the canonical two-record fixture: one record with a
// resolvable audio path and a caption mentioning a cat, one without audio.
const ScenarioSamples = `[
  {"id":"Y01","final_caption":"A cat meows","audio_path":"/data/Y01.wav"},
  {"id":"Y02","asr":"hello"}
]`

// WriteSamples writes doc to path, creating parent directories.
func WriteSamples(t testing.TB, path, doc string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// NumberedSamples builds a JSON array of n records with ids prefix-001 and
// so on. Every third record carries an audio path.
func NumberedSamples(prefix string, n int) string {
	var b strings.Builder
	b.WriteString("[")
	for i := 1; i <= n; i++ {
		if i > 1 {
			b.WriteString(",")
		}
		id := fmt.Sprintf("%s-%03d", prefix, i)
		fmt.Fprintf(&b, `{"id":%q,"final_caption":"caption %d"`, id, i)
		if i%3 == 0 {
			fmt.Fprintf(&b, `,"audio_path":"/clips/%s.wav"`, id)
		}
		b.WriteString("}")
	}
	b.WriteString("]")
	return b.String()
}

// WriteFile fills path with size bytes of a repeating pattern. A size <= 0
// writes a single byte.
func WriteFile(t testing.TB, path string, size int64) {
	t.Helper()

	if size <= 0 {
		size = 1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(strings.Repeat("B", int(size))), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
