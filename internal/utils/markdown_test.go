package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdownBasics(t *testing.T) {
	out := RenderMarkdown("# Title\n\nSome *emphasis* and **bold**.")
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "<em>emphasis</em>")
	assert.Contains(t, out, "<strong>bold</strong>")
}

func TestRenderMarkdownStripsScript(t *testing.T) {
	out := RenderMarkdown("hello <script>alert('x')</script> world")
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "alert")
	assert.Contains(t, out, "hello")
}

func TestRenderMarkdownLinkHardening(t *testing.T) {
	out := RenderMarkdown("[site](https://example.com)")
	assert.Contains(t, out, `href="https://example.com"`)
	assert.Contains(t, out, `target="_blank"`)
	assert.Contains(t, out, "noreferrer")
}

func TestRenderMarkdownStripsEventHandlers(t *testing.T) {
	out := RenderMarkdown(`<img src="x.png" onerror="alert(1)">`)
	assert.NotContains(t, out, "onerror")
}
