package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"capbrowse/internal/browse"
	"capbrowse/internal/record"
)

const browseHelp = `Type text to search (applied after the debounce delay).
Commands:
  :field <f>   search field: all, id, final_caption, asr, final_caption_asr, json
  :size <n>    records per page
  :next        next page
  :prev        previous page
  :page <n>    jump to page n
  :clear       clear the query and field
  :show <id>   print the full JSON of the first record with that id
  :help        show this help
  :quit        exit`

// browseSession owns the interactive query state. At most one
// filter/paginate/render cycle runs at a time.
type browseSession struct {
	mu        sync.Mutex
	all       []*record.Normalized
	state     browse.State
	debouncer *browse.Debouncer
	out       io.Writer
	colorize  bool
}

func newBrowseSession(all []*record.Normalized, state browse.State, debouncer *browse.Debouncer, out io.Writer, colorize bool) *browseSession {
	return &browseSession{
		all:       all,
		state:     state,
		debouncer: debouncer,
		out:       out,
		colorize:  colorize,
	}
}

// start renders the first page.
func (s *browseSession) start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.renderLocked()
}

// handle processes one input line and reports whether the session should end.
func (s *browseSession) handle(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, ":") {
		if trimmed == "" {
			s.update(func(st browse.State) (browse.State, error) { return st, nil })
			return false
		}
		s.setQuery(trimmed)
		return false
	}

	name, arg, _ := strings.Cut(strings.TrimPrefix(trimmed, ":"), " ")
	arg = strings.TrimSpace(arg)
	switch strings.ToLower(name) {
	case "q", "quit", "exit":
		s.debouncer.Stop()
		return true
	case "h", "help":
		s.print(browseHelp)
	case "n", "next":
		s.update(func(st browse.State) (browse.State, error) { return st.Next(), nil })
	case "p", "prev":
		s.update(func(st browse.State) (browse.State, error) { return st.Prev(), nil })
	case "page":
		s.update(func(st browse.State) (browse.State, error) {
			n, err := strconv.Atoi(arg)
			if err != nil {
				return st, fmt.Errorf("invalid page %q", arg)
			}
			return st.GoTo(n), nil
		})
	case "size":
		s.update(func(st browse.State) (browse.State, error) {
			n, err := strconv.Atoi(arg)
			if err != nil || n <= 0 {
				return st, fmt.Errorf("invalid page size %q", arg)
			}
			return st.WithPageSize(n), nil
		})
	case "field", "f":
		s.update(func(st browse.State) (browse.State, error) {
			field, err := browse.ParseField(arg)
			if err != nil {
				return st, err
			}
			return st.WithField(field), nil
		})
	case "clear", "c":
		s.debouncer.Stop()
		s.update(func(st browse.State) (browse.State, error) { return st.Reset(), nil })
	case "show":
		s.show(arg)
	default:
		s.print(fmt.Sprintf("unknown command %q (try :help)", name))
	}
	return false
}

// setQuery schedules the query change through the debouncer. Only the last
// query typed within the delay is applied.
func (s *browseSession) setQuery(query string) {
	s.debouncer.Call(func() {
		s.update(func(st browse.State) (browse.State, error) { return st.WithQuery(query), nil })
	})
}

// finish applies any pending query and stops the debouncer.
func (s *browseSession) finish() {
	s.debouncer.Flush()
	s.debouncer.Stop()
}

func (s *browseSession) update(fn func(browse.State) (browse.State, error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := fn(s.state)
	if err != nil {
		fmt.Fprintln(s.out, newNotice("input", toneFailure, err.Error()).render(s.colorize))
		return
	}
	s.state = next
	s.renderLocked()
}

func (s *browseSession) renderLocked() {
	view := browse.Apply(s.all, s.state)
	s.state = view.State
	writeView(s.out, view, s.colorize)
}

func (s *browseSession) show(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == "" {
		fmt.Fprintln(s.out, newNotice("input", toneFailure, "usage: :show <id>").render(s.colorize))
		return
	}
	n, ok := record.FindByID(s.all, id)
	if !ok {
		fmt.Fprintln(s.out, newNotice("show", toneEmpty, fmt.Sprintf("record %q not found", id)).render(s.colorize))
		return
	}
	fmt.Fprintln(s.out, record.Serialize(n))
}

func (s *browseSession) print(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.out, text)
}

// prompt writes the input prompt under the session lock so it never lands
// inside a page rendered by the debounce timer.
func (s *browseSession) prompt() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprint(s.out, "> ")
}

// currentState returns a copy of the session state.
func (s *browseSession) currentState() browse.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
