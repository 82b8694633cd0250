package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLToTextParagraphs(t *testing.T) {
	text := HTMLToText("<p>Hello</p><p>World</p>", 80)
	assert.Equal(t, "Hello\n\nWorld", text)
}

func TestHTMLToTextInlineMarkup(t *testing.T) {
	text := HTMLToText("<p>The <b>royal</b> <i>knights</i> march.</p>", 80)
	assert.Equal(t, "The royal knights march.", text)
}

func TestHTMLToTextCollapsesWhitespace(t *testing.T) {
	text := HTMLToText("<p>spread\n   over\t\tlines</p>", 80)
	assert.Equal(t, "spread over lines", text)
}

func TestHTMLToTextWrap(t *testing.T) {
	text := HTMLToText("<p>the quick brown fox jumps over the lazy dog</p>", 20)
	for _, line := range strings.Split(text, "\n") {
		assert.LessOrEqual(t, len(line), 20, "line %q", line)
	}
	assert.Equal(t, "the quick brown fox\njumps over the lazy\ndog", text)
}

func TestHTMLToTextWidthZeroDisablesWrap(t *testing.T) {
	long := "the quick brown fox jumps over the lazy dog"
	text := HTMLToText("<p>"+long+"</p>", 0)
	assert.Equal(t, long, text)
}

func TestHTMLToTextPreVerbatim(t *testing.T) {
	text := HTMLToText("<p>intro</p><pre>  a   b\nc d e f g h</pre>", 5)
	assert.Contains(t, text, "  a   b\nc d e f g h")
}

func TestHTMLToTextList(t *testing.T) {
	text := HTMLToText("<ul><li>First</li><li>Second</li></ul>", 80)
	assert.Equal(t, "- First\n- Second", text)
}

func TestHTMLToTextLineBreaks(t *testing.T) {
	text := HTMLToText("<p>alpha<br>beta</p>", 80)
	assert.Equal(t, "alpha\nbeta", text)
}

func TestHTMLToTextSkipsScriptAndStyle(t *testing.T) {
	markup := "<style>p { color: red }</style><p>visible</p><script>alert(1)</script>"
	text := HTMLToText(markup, 80)
	assert.Equal(t, "visible", text)
}

func TestHTMLToTextHeadings(t *testing.T) {
	text := HTMLToText("<h1>The Tower</h1><p>A story.</p>", 80)
	assert.Equal(t, "The Tower\n\nA story.", text)
}

func TestHTMLToTextUnicodeWidth(t *testing.T) {
	// rune count, not byte count, decides the wrap point
	text := HTMLToText("<p>åå åå åå</p>", 5)
	assert.Equal(t, "åå åå\nåå", text)
}
