package filter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestRenderString_EscapesText(t *testing.T) {
	root := parse(t, `<p>1 &lt; 2 &amp; 3 &gt; 2</p>`)

	out := render(t, root)
	assert.Contains(t, out, "1 &lt; 2 &amp; 3 &gt; 2")
}

func TestRenderString_QuotesAttributes(t *testing.T) {
	root := parse(t, `<p title='say &quot;hi&quot;'>x</p>`)

	out := render(t, root)
	assert.Contains(t, out, `title="say &#34;hi&#34;"`)
}

func TestRenderString_VoidElements(t *testing.T) {
	root := parse(t, `<html><body>a<br>b<img src="x.png"><hr></body></html>`)

	out := render(t, root)
	assert.Contains(t, out, "a<br/>b")
	assert.Contains(t, out, `<img src="x.png"/>`)
	assert.NotContains(t, out, "</br>")
	assert.NotContains(t, out, "</img>")
	assert.NotContains(t, out, "</hr>")
}

func TestRenderString_NoInsertedWhitespace(t *testing.T) {
	root := parse(t, `<html><body><div><p>a</p><p>b</p></div></body></html>`)

	assert.Equal(t, `<html><head></head><body><div><p>a</p><p>b</p></div></body></html>`, render(t, root))
}

func TestRenderString_EmptyTree(t *testing.T) {
	out, err := RenderString(&html.Node{Type: html.DocumentNode})
	require.NoError(t, err)
	assert.Equal(t, "", out)

	out, err = RenderString(nil)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRender_Writer(t *testing.T) {
	root := parse(t, `<p>x</p>`)

	var sb strings.Builder
	require.NoError(t, Render(&sb, root))
	assert.Contains(t, sb.String(), "<p>x</p>")
}
