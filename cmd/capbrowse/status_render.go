package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-isatty"
)

// noticeTone classifies the one-line notices printed under a page of
// records and by the server banner.
type noticeTone int

const (
	toneNeutral noticeTone = iota
	toneMatch
	toneEmpty
	toneFailure
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"
)

const noticeTopicWidth = 8

// notice is a short message about one topic of the session: the working
// set, the active query, bad input, the listen address.
type notice struct {
	Topic string
	Tone  noticeTone
	Text  string
}

func newNotice(topic string, tone noticeTone, text string) notice {
	return notice{Topic: topic, Tone: tone, Text: text}
}

// render formats the notice as "<glyph> <topic> <text>". Only the glyph is
// colored so that copied output stays readable.
func (n notice) render(colorize bool) string {
	glyph := n.Tone.glyph()
	if colorize {
		glyph = n.Tone.color() + glyph + ansiReset
	}
	line := fmt.Sprintf("%s %-*s %s", glyph, noticeTopicWidth, strings.ToLower(n.Topic), n.Text)
	return strings.TrimRight(line, " ")
}

func (t noticeTone) glyph() string {
	switch t {
	case toneMatch:
		return "+"
	case toneEmpty:
		return "~"
	case toneFailure:
		return "!"
	default:
		return "-"
	}
}

func (t noticeTone) color() string {
	switch t {
	case toneMatch:
		return ansiGreen
	case toneEmpty:
		return ansiYellow
	case toneFailure:
		return ansiRed
	default:
		return ansiCyan
	}
}

// banner renders "name · detail" over a rule of the same width.
func banner(name, detail string, colorize bool) []string {
	line := strings.TrimSpace(name)
	if detail = strings.TrimSpace(detail); detail != "" {
		line += " · " + detail
	}
	rule := strings.Repeat("─", utf8.RuneCountInString(line))
	if colorize {
		line = ansiCyan + line + ansiReset
	}
	return []string{line, rule}
}

func shouldColorize(writer io.Writer) bool {
	return isTerminal(writer)
}

func isTerminal(stream any) bool {
	file, ok := stream.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
