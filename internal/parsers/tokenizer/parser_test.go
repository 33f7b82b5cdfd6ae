package tokenizer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/open-technology-foundation/deltags/internal/filter"
)

func parseString(t *testing.T, doc string) *html.Node {
	t.Helper()
	root, err := New().Parse(context.Background(), strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, html.DocumentNode, root.Type)
	return root
}

func roundTrip(t *testing.T, doc string) string {
	t.Helper()
	out, err := filter.RenderString(parseString(t, doc))
	require.NoError(t, err)
	return out
}

func TestParse_FragmentsStayFragments(t *testing.T) {
	assert.Equal(t,
		`<div class="t1">secret</div><div class="t2">keep</div>`,
		roundTrip(t, `<div class="t1">secret</div><div class="t2">keep</div>`))
}

func TestParse_NestingPreserved(t *testing.T) {
	assert.Equal(t,
		`<div><p>a<em>b</em></p></div><span>c</span>`,
		roundTrip(t, `<div><p>a<em>b</em></p></div><span>c</span>`))
}

func TestParse_VoidElements(t *testing.T) {
	// Void elements never take children, with or without a self-closing slash.
	assert.Equal(t, `a<br/>b<img src="x"/>c`, roundTrip(t, `a<br>b<img src="x">c`))
	assert.Equal(t, `a<br/>b`, roundTrip(t, `a<br/>b`))
}

func TestParse_CommentsAndDoctype(t *testing.T) {
	root := parseString(t, "<!DOCTYPE html><!--note--><p>x</p>")

	var kinds []html.NodeType
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		kinds = append(kinds, c.Type)
	}
	assert.Equal(t, []html.NodeType{html.DoctypeNode, html.CommentNode, html.ElementNode}, kinds)
}

func TestParse_StrayEndTagsIgnored(t *testing.T) {
	assert.Equal(t, `<div>a</div>b`, roundTrip(t, `</p><div>a</div></section>b`))
}

func TestParse_UnclosedElementsCloseAtEOF(t *testing.T) {
	assert.Equal(t, `<div><p>text</p></div>`, roundTrip(t, `<div><p>text`))
}

func TestParse_RawTextScript(t *testing.T) {
	assert.Equal(t,
		`<script>if (a < b) { x(); }</script>`,
		roundTrip(t, `<script>if (a < b) { x(); }</script>`))
}

func TestParse_TagNamesLowerCased(t *testing.T) {
	root := parseString(t, `<DIV CLASS="x">y</DIV>`)

	div := root.FirstChild
	require.NotNil(t, div)
	assert.Equal(t, "div", div.Data)
	require.Len(t, div.Attr, 1)
	assert.Equal(t, "class", div.Attr[0].Key)
}

func TestParse_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Parse(ctx, strings.NewReader("<p>hi</p>"))
	assert.ErrorIs(t, err, context.Canceled)
}
