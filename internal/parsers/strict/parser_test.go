package strict

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/open-technology-foundation/deltags/internal/filter"
)

func roundTrip(t *testing.T, doc string) string {
	t.Helper()
	root, err := New().Parse(context.Background(), strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, html.DocumentNode, root.Type)

	out, err := filter.RenderString(root)
	require.NoError(t, err)
	return out
}

func TestParse_WellFormedDocument(t *testing.T) {
	out := roundTrip(t, `<html><body><div class="x">a<em>b</em></div></body></html>`)
	assert.Equal(t, `<html><body><div class="x">a<em>b</em></div></body></html>`, out)
}

func TestParse_HTMLEntities(t *testing.T) {
	out := roundTrip(t, `<p>a&nbsp;b &amp; c</p>`)
	assert.Contains(t, out, "&amp; c")
}

func TestParse_AutoClosesVoidElements(t *testing.T) {
	out := roundTrip(t, `<p>a<br>b</p>`)
	assert.Equal(t, `<p>a<br/>b</p>`, out)
}

func TestParse_Comments(t *testing.T) {
	root, err := New().Parse(context.Background(), strings.NewReader(`<p><!--note-->x</p>`))
	require.NoError(t, err)

	p := root.FirstChild
	require.NotNil(t, p)
	require.NotNil(t, p.FirstChild)
	assert.Equal(t, html.CommentNode, p.FirstChild.Type)
	assert.Equal(t, "note", p.FirstChild.Data)
}

func TestParse_RejectsUnclosedElement(t *testing.T) {
	_, err := New().Parse(context.Background(), strings.NewReader(`<div><p>unclosed`))
	assert.Error(t, err)
}

func TestParse_UpperCaseNamesNormalised(t *testing.T) {
	root, err := New().Parse(context.Background(), strings.NewReader(`<DIV CLASS="x">y</DIV>`))
	require.NoError(t, err)

	div := root.FirstChild
	require.NotNil(t, div)
	assert.Equal(t, "div", div.Data)
	require.Len(t, div.Attr, 1)
	assert.Equal(t, "class", div.Attr[0].Key)
}

func TestParse_Doctype(t *testing.T) {
	out := roundTrip(t, "<!DOCTYPE html><html><body></body></html>")
	assert.Equal(t, "<!DOCTYPE html><html><body></body></html>", out)
}

func TestParse_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Parse(ctx, strings.NewReader("<p>hi</p>"))
	assert.ErrorIs(t, err, context.Canceled)
}
