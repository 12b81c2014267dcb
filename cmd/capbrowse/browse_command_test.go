package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"capbrowse/internal/browse"
	"capbrowse/internal/record"
	"capbrowse/internal/testsupport"
)

func TestBrowseCommandSession(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.ScenarioSamples)

	input := strings.Join([]string{
		"cat",
		":show Y02",
		":field asr",
		":clear",
		":bogus",
		":quit",
		"dog",
	}, "\n")
	out, _, err := runCLI(t, []string{"browse"}, env.configPath, input)
	if err != nil {
		t.Fatalf("browse: %v", err)
	}
	requireContains(t, out, "2 / 2 records · page 1/1")
	requireContains(t, out, "1 / 2 records · page 1/1")
	requireContains(t, out, `"asr": "hello"`)
	requireContains(t, out, `"cat" in ASR`)
	requireContains(t, out, "0 / 2 records · page 1/1")
	requireContains(t, out, `unknown command "bogus"`)
	requireNotContains(t, out, `"dog"`)
}

func newTestSession(t *testing.T, doc string, delay time.Duration) (*browseSession, *bytes.Buffer) {
	t.Helper()
	var recs []record.Record
	if err := json.Unmarshal([]byte(doc), &recs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	all := record.Normalize(recs, record.AudioConfig{Base: "./audio/"})
	var out bytes.Buffer
	session := newBrowseSession(all, browse.NewState(10), browse.NewDebouncer(delay), &out, false)
	return session, &out
}

func TestBrowseSessionPaging(t *testing.T) {
	session, out := newTestSession(t, testsupport.NumberedSamples("s", 25), 0)
	session.start()

	session.handle(":next")
	session.handle(":next")
	session.handle(":next")
	if got := session.currentState().Page; got != 3 {
		t.Fatalf("expected clamped page 3, got %d", got)
	}
	session.handle(":prev")
	if got := session.currentState().Page; got != 2 {
		t.Fatalf("expected page 2, got %d", got)
	}
	session.handle(":size 5")
	if st := session.currentState(); st.Page != 1 || st.PageSize != 5 {
		t.Fatalf("expected page 1 of size 5, got %+v", st)
	}
	session.handle(":page 99")
	if got := session.currentState().Page; got != 5 {
		t.Fatalf("expected clamped page 5, got %d", got)
	}
	session.handle(":page x")
	requireContains(t, out.String(), `invalid page "x"`)
	session.handle(":size 0")
	requireContains(t, out.String(), `invalid page size "0"`)
	if got := session.currentState().PageSize; got != 5 {
		t.Fatalf("rejected size should keep 5, got %d", got)
	}
}

func TestBrowseSessionQueryResetsPage(t *testing.T) {
	session, _ := newTestSession(t, testsupport.NumberedSamples("s", 25), 0)
	session.start()

	session.handle(":page 3")
	session.handle("caption 1")
	st := session.currentState()
	if st.Page != 1 || st.Query != "caption 1" {
		t.Fatalf("expected query on page 1, got %+v", st)
	}
	session.handle(":field bogus")
	if got := session.currentState().Field; got != browse.FieldAll {
		t.Fatalf("rejected field should keep all, got %q", got)
	}
}

func TestBrowseSessionDebouncesQueries(t *testing.T) {
	session, out := newTestSession(t, testsupport.ScenarioSamples, time.Hour)
	session.start()

	session.handle("c")
	session.handle("ca")
	session.handle("cat")
	if got := session.currentState().Query; got != "" {
		t.Fatalf("query should still be pending, got %q", got)
	}
	session.finish()
	if got := session.currentState().Query; got != "cat" {
		t.Fatalf("expected last query to win, got %q", got)
	}
	if strings.Count(out.String(), "records · page") != 2 {
		t.Fatalf("expected exactly two renders, got:\n%s", out.String())
	}
}

func TestBrowseSessionClearDropsPendingQuery(t *testing.T) {
	session, _ := newTestSession(t, testsupport.ScenarioSamples, time.Hour)
	session.start()

	session.handle(":field asr")
	session.handle("cat")
	session.handle(":clear")
	session.finish()
	st := session.currentState()
	if st.Query != "" || st.Field != browse.FieldAll {
		t.Fatalf("expected cleared state, got %+v", st)
	}
}

// overlapWriter records whether two writes were ever in flight at once.
type overlapWriter struct {
	inflight atomic.Int32
	overlap  atomic.Bool
	mu       sync.Mutex
	buf      bytes.Buffer
}

func (w *overlapWriter) Write(p []byte) (int, error) {
	if w.inflight.Add(1) > 1 {
		w.overlap.Store(true)
	}
	defer w.inflight.Add(-1)
	time.Sleep(50 * time.Microsecond)
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

func (w *overlapWriter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.String()
}

func TestBrowseSessionPromptDoesNotInterleaveWithRenders(t *testing.T) {
	var recs []record.Record
	if err := json.Unmarshal([]byte(testsupport.NumberedSamples("s", 30)), &recs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	all := record.Normalize(recs, record.AudioConfig{Base: "./audio/"})
	out := &overlapWriter{}
	session := newBrowseSession(all, browse.NewState(10), browse.NewDebouncer(time.Millisecond), out, false)
	session.start()

	for i := 0; i < 40; i++ {
		session.handle("caption")
		session.prompt()
		time.Sleep(time.Millisecond)
	}
	session.finish()

	if out.overlap.Load() {
		t.Fatalf("prompt was written while a page was rendering")
	}
	if !strings.Contains(out.String(), "> ") {
		t.Fatalf("expected prompt in output")
	}
}
