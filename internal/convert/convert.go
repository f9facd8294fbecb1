// Package convert turns Markdown source into DOCX, HTML, or plain-text
// output. Markdown is rendered to HTML once with goldmark; each target
// format maps the HTML element tree to its own constructs.
package convert

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

// Format is a supported output format.
type Format string

const (
	FormatDOCX Format = "docx"
	FormatHTML Format = "html"
	FormatTXT  Format = "txt"
)

// ErrUnsupportedFormat reports a target format outside {docx, html, txt}.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatDOCX, FormatHTML, FormatTXT:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q (expected docx, html, or txt)", ErrUnsupportedFormat, s)
}

// ContentType returns the MIME type for a format.
func (f Format) ContentType() string {
	switch f {
	case FormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case FormatHTML:
		return "text/html; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Options carries per-conversion settings.
type Options struct {
	Title    string       // document title for HTML output
	Template []byte       // optional DOCX template whose styles are reused
	Log      *slog.Logger // optional; nil disables logging
}

// Convert renders Markdown source to the requested format. The
// conversion builds the full output in memory; nothing is emitted on
// error.
func Convert(src []byte, format Format, opts Options) ([]byte, error) {
	switch format {
	case FormatHTML:
		return toHTML(src, opts)
	case FormatTXT:
		return toText(src)
	case FormatDOCX:
		return toDOCX(src, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// renderHTML converts Markdown to an HTML fragment. GFM tables and
// strikethrough are enabled; newlines inside paragraphs become hard
// breaks, matching the editor's line-oriented view of documents.
func renderHTML(src []byte) ([]byte, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(htmlrenderer.WithHardWraps()),
	)
	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	return buf.Bytes(), nil
}
