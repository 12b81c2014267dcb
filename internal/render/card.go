package render

import (
	"strings"

	"capbrowse/internal/record"
	"capbrowse/internal/textutil"
)

// CardOptions adjusts how a single record card is drawn.
type CardOptions struct {
	AutoExpandJSON bool
}

type textBlock struct {
	label string
	key   string
}

var cardBlocks = []textBlock{
	{label: "final_caption", key: record.KeyFinalCaption},
	{label: "asr", key: record.KeyASR},
	{label: "final_caption_asr", key: record.KeyFinalCaptionASR},
}

// Card renders one record.
func Card(n *record.Normalized, opts CardOptions) string {
	if n == nil {
		return ""
	}
	id := textutil.Escape(n.ID())

	var b strings.Builder
	b.WriteString(`<article class="card">`)
	b.WriteString(`<div class="cardHeader"><div class="badge"><span class="id">`)
	b.WriteString(id)
	b.WriteString(`</span></div><div class="actions">`)
	b.WriteString(`<button class="btn ghost" data-copy="`)
	b.WriteString(id)
	b.WriteString(`" type="button">Copy ID</button>`)
	b.WriteString(`<button class="btn primary" data-copyjson="`)
	b.WriteString(id)
	b.WriteString(`" type="button">Copy JSON</button>`)
	b.WriteString(`</div></div>`)

	b.WriteString(`<div class="audio">`)
	if n.HasAudio() {
		audio := textutil.Escape(n.AudioURL)
		b.WriteString(`<audio controls preload="none" src="`)
		b.WriteString(audio)
		b.WriteString(`"></audio><div class="audioPath"><code>`)
		b.WriteString(audio)
		b.WriteString(`</code></div>`)
	} else {
		b.WriteString(`<div class="muted">No audio (no audio_url and no usable audio_path)</div>`)
	}
	b.WriteString(`</div>`)

	for _, block := range cardBlocks {
		b.WriteString(`<section class="block"><div class="label">`)
		b.WriteString(block.label)
		b.WriteString(`</div><div class="text">`)
		if text := n.Text(block.key); text != "" {
			b.WriteString(textutil.Escape(text))
		} else {
			b.WriteString(`<span class="muted">-</span>`)
		}
		b.WriteString(`</div></section>`)
	}

	b.WriteString(`<details class="raw"`)
	b.WriteString(textutil.Ternary(opts.AutoExpandJSON, " open", ""))
	b.WriteString(`><summary>Full JSON</summary><pre>`)
	b.WriteString(textutil.Escape(n.JSON()))
	b.WriteString(`</pre></details>`)
	b.WriteString(`</article>`)
	return b.String()
}
