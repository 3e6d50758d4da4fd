// Package richtext turns CMS rich text into HTML fragments.
package richtext

import (
	"html/template"
	"strings"

	"github.com/Zachkp/portfolio/internal/content"
)

var blockTags = map[string]string{
	"normal":     "p",
	"h1":         "h1",
	"h2":         "h2",
	"h3":         "h3",
	"h4":         "h4",
	"blockquote": "blockquote",
}

var listTags = map[string]string{
	"bullet": "ul",
	"number": "ol",
}

// decorators maps mark names to the opening and closing markup they wrap.
var decorators = map[string][2]string{
	"strong":         {`<strong>`, `</strong>`},
	"em":             {`<em>`, `</em>`},
	"code":           {`<code>`, `</code>`},
	"underline":      {`<u>`, `</u>`},
	"strike-through": {`<s>`, `</s>`},
	"highlight":      {`<span class="text-gradient">`, `</span>`},
	"gradient":       {`<span class="text-gradient">`, `</span>`},
}

// PortableText renders Portable Text blocks. Unknown block styles render as
// paragraphs and unknown marks contribute only their text. Non-text blocks
// such as images are skipped.
func PortableText(blocks []content.Block) template.HTML {
	var b strings.Builder
	openList := ""

	closeList := func() {
		if openList != "" {
			b.WriteString("</" + openList + ">")
			openList = ""
		}
	}

	for _, block := range blocks {
		if block.Type != "" && block.Type != "block" {
			continue
		}

		if tag, ok := listTags[block.ListItem]; ok {
			if openList != tag {
				closeList()
				b.WriteString("<" + tag + ">")
				openList = tag
			}
			b.WriteString("<li>")
			writeSpans(&b, block)
			b.WriteString("</li>")
			continue
		}
		closeList()

		tag, ok := blockTags[block.Style]
		if !ok {
			tag = "p"
		}
		b.WriteString("<" + tag + ">")
		writeSpans(&b, block)
		b.WriteString("</" + tag + ">")
	}
	closeList()

	return template.HTML(b.String())
}

func writeSpans(b *strings.Builder, block content.Block) {
	defs := make(map[string]content.MarkDef, len(block.MarkDefs))
	for _, def := range block.MarkDefs {
		defs[def.Key] = def
	}

	for _, span := range block.Children {
		text := template.HTMLEscapeString(span.Text)
		text = strings.ReplaceAll(text, "\n", "<br>")

		// The first mark ends up outermost.
		for i := len(span.Marks) - 1; i >= 0; i-- {
			mark := span.Marks[i]
			if wrap, ok := decorators[mark]; ok {
				text = wrap[0] + text + wrap[1]
				continue
			}
			if def, ok := defs[mark]; ok && def.Type == "link" && safeHref(def.Href) {
				text = `<a href="` + template.HTMLEscapeString(def.Href) + `" target="_blank" rel="noopener noreferrer">` + text + `</a>`
			}
		}
		b.WriteString(text)
	}
}

func safeHref(href string) bool {
	lower := strings.ToLower(strings.TrimSpace(href))
	for _, prefix := range []string{"https://", "http://", "mailto:", "/", "#"} {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
