// Package markup turns entry markdown into the HTML fragment shown on the entry page.
package markup

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"github.com/ribgsilva/encyclopedia/persistence/v1/markup"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"html/template"
)

// raw html inside markdown is dropped by goldmark unless html.WithUnsafe is set, keep it that way
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// ToHTML renders src. Malformed markdown renders best effort, it never fails.
func ToHTML(src string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return template.HTML("<pre>" + template.HTMLEscapeString(src) + "</pre>")
	}
	return template.HTML(buf.String())
}

// Render is ToHTML behind the html cache. The cache key is the hash of src, so an edited
// entry never hits the html of its previous content.
func Render(ctx context.Context, src string) template.HTML {
	key := Key(src)
	if cached, ok := markup.Find(ctx, key); ok {
		return template.HTML(cached)
	}

	html := ToHTML(src)
	markup.Store(ctx, key, string(html))
	return html
}

// Key is the cache key of src
func Key(src string) string {
	sum := sha256.Sum256([]byte(src))
	return hex.EncodeToString(sum[:])
}
