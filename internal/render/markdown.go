// Package render holds the shared goldmark pipeline used by the markdown
// editor preview and the snippet highlighter.
package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		html.WithUnsafe(),
	),
)

// ToHTML converts markdown source to HTML.
func ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.String(), nil
}

// CodeToHTML syntax-highlights a code block by rendering it as a fenced
// markdown block in the given language.
func CodeToHTML(code, language string) (string, error) {
	if language == "" {
		language = "text"
	}
	fenced := "```" + language + "\n" + code + "\n```\n"
	return ToHTML(fenced)
}
