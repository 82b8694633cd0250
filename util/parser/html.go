package parser

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

var blockTags = map[string]bool{
	"p": true, "div": true, "section": true, "article": true,
	"header": true, "footer": true, "main": true, "blockquote": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"ul": true, "ol": true, "table": true, "thead": true, "tbody": true,
	"tr": true, "figure": true, "figcaption": true, "details": true,
	"summary": true,
}

var skipTags = map[string]bool{
	"script": true, "style": true, "head": true, "noscript": true,
	"title": true, "template": true, "iframe": true,
}

// HTMLToText renders a quest description for the terminal. Block
// elements become paragraphs, list items become bullets, pre blocks
// stay verbatim and prose is wrapped to width columns. A width of zero
// disables wrapping.
func HTMLToText(markup string, width int) string {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return markup
	}
	r := &textRenderer{}
	r.walk(doc)
	r.flush()

	var out strings.Builder
	for i, b := range r.blocks {
		if i > 0 {
			out.WriteString("\n\n")
		}
		if b.verbatim {
			out.WriteString(b.text)
			continue
		}
		out.WriteString(wrapText(b.text, width))
	}
	return out.String()
}

type textBlock struct {
	text     string
	verbatim bool
}

type textRenderer struct {
	blocks []textBlock
	lines  []string
	line   strings.Builder
}

func (r *textRenderer) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		r.line.WriteString(n.Data)
		return
	case html.ElementNode:
		switch {
		case skipTags[n.Data]:
			return
		case n.Data == "pre":
			r.flush()
			r.blocks = append(r.blocks, textBlock{
				text:     strings.Trim(verbatimText(n), "\n"),
				verbatim: true,
			})
			return
		case n.Data == "br":
			r.endLine()
			return
		case n.Data == "li":
			r.endLineIfAny()
			r.walkChildren(n)
			r.bullet()
			return
		case n.Data == "td" || n.Data == "th":
			r.walkChildren(n)
			r.line.WriteString(" ")
			return
		case blockTags[n.Data]:
			r.flush()
			r.walkChildren(n)
			r.flush()
			return
		}
	}
	r.walkChildren(n)
}

func (r *textRenderer) walkChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.walk(c)
	}
}

// endLine finishes the current line even when empty, so consecutive
// <br> tags produce blank lines.
func (r *textRenderer) endLine() {
	r.lines = append(r.lines, collapseSpaces(r.line.String()))
	r.line.Reset()
}

func (r *textRenderer) endLineIfAny() {
	line := collapseSpaces(r.line.String())
	r.line.Reset()
	if line != "" {
		r.lines = append(r.lines, line)
	}
}

func (r *textRenderer) bullet() {
	line := collapseSpaces(r.line.String())
	r.line.Reset()
	if line != "" {
		r.lines = append(r.lines, "- "+line)
	}
}

func (r *textRenderer) flush() {
	r.endLineIfAny()
	lines := r.lines
	r.lines = nil
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return
	}
	r.blocks = append(r.blocks, textBlock{text: strings.Join(lines, "\n")})
}

func verbatimText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		if n.Type == html.ElementNode && n.Data == "br" {
			b.WriteString("\n")
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		out = append(out, wrapLine(line, width)...)
	}
	return strings.Join(out, "\n")
}

// wrapLine greedily wraps one line on word boundaries. Words longer
// than the width stay unbroken on their own line.
func wrapLine(line string, width int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	current := words[0]
	currentWidth := utf8.RuneCountInString(current)
	for _, word := range words[1:] {
		wordWidth := utf8.RuneCountInString(word)
		if currentWidth+1+wordWidth > width {
			lines = append(lines, current)
			current = word
			currentWidth = wordWidth
			continue
		}
		current += " " + word
		currentWidth += 1 + wordWidth
	}
	return append(lines, current)
}
