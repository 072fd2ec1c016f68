package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// previewEngine has raw HTML disabled; exported text is user content.
var previewEngine = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// RenderHTML renders exported markdown to an HTML fragment for preview.
func RenderHTML(md string) ([]byte, error) {
	var buf bytes.Buffer
	if err := previewEngine.Convert([]byte(md), &buf); err != nil {
		return nil, fmt.Errorf("markdown: render html: %w", err)
	}
	return buf.Bytes(), nil
}
