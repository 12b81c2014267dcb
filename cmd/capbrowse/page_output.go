package main

import (
	"fmt"
	"io"

	"capbrowse/internal/browse"
	"capbrowse/internal/record"
	"capbrowse/internal/render"
	"capbrowse/internal/textutil"
)

const (
	idColumnWidth    = 24
	audioColumnWidth = 32
	textColumnWidth  = 48
)

var pageColumns = []tableColumn{
	{Header: "#", Align: alignRight},
	{Header: "ID", MaxWidth: idColumnWidth},
	{Header: "Audio", MaxWidth: audioColumnWidth},
	{Header: "Caption", MaxWidth: textColumnWidth},
	{Header: "ASR", MaxWidth: textColumnWidth},
}

func pageRows(view browse.View) [][]string {
	rows := make([][]string, 0, len(view.Page.Items))
	start := view.Page.Start()
	for i, n := range view.Page.Items {
		rows = append(rows, []string{
			fmt.Sprintf("%d", start+i+1),
			n.ID(),
			textutil.Ternary(n.HasAudio(), n.AudioURL, "-"),
			placeholder(textutil.Truncate(n.Text(record.KeyFinalCaption), textColumnWidth)),
			placeholder(textutil.Truncate(n.Text(record.KeyASR), textColumnWidth)),
		})
	}
	return rows
}

func placeholder(value string) string {
	return textutil.Ternary(value == "", "-", value)
}

// viewMeta formats the working-set summary shared with the page server.
func viewMeta(view browse.View) string {
	return render.Meta(render.PageView{
		Matched: view.Matched,
		Total:   view.Total,
		Page:    view.Page.Page,
		Pages:   view.Page.Pages,
	})
}

func viewStatusLines(view browse.View, colorize bool) []string {
	tone := textutil.Ternary(view.Matched > 0, toneMatch, toneEmpty)
	lines := []string{newNotice("records", tone, viewMeta(view)).render(colorize)}
	if view.State.Active() {
		query := fmt.Sprintf("%q in %s", view.State.Query, view.State.Field.Label())
		lines = append(lines, newNotice("query", toneNeutral, query).render(colorize))
	}
	return lines
}

func writeView(out io.Writer, view browse.View, colorize bool) {
	if len(view.Page.Items) == 0 {
		fmt.Fprintln(out, "No matching records")
	} else {
		fmt.Fprintln(out, renderTable(pageColumns, pageRows(view)))
	}
	for _, line := range viewStatusLines(view, colorize) {
		fmt.Fprintln(out, line)
	}
}
