package convert

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fumiama/go-docx"
	xhtml "golang.org/x/net/html"
)

// headingStyles maps HTML heading levels to Word's built-in heading
// style IDs ("Heading 1".."Heading 6" in the style gallery). A supplied
// template that redefines these styles restyles all headings.
var headingStyles = map[int]string{
	1: "Heading1",
	2: "Heading2",
	3: "Heading3",
	4: "Heading4",
	5: "Heading5",
	6: "Heading6",
}

const codeColor = "A9A9A9"

// toDOCX maps the rendered HTML tree onto Word paragraphs, runs, and
// tables.
func toDOCX(src []byte, opts Options) ([]byte, error) {
	rendered, err := renderHTML(src)
	if err != nil {
		return nil, err
	}
	root, err := xhtml.Parse(bytes.NewReader(rendered))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	w := &docxWriter{doc: newDocxDocument(opts.Template, opts.Log)}
	if body := findBody(root); body != nil {
		w.walk(body)
	}

	var buf bytes.Buffer
	if _, err := w.doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write docx: %w", err)
	}
	return buf.Bytes(), nil
}

// newDocxDocument loads the template when one is supplied, clearing its
// body so only its styles carry over. A template that fails to parse is
// a recoverable degradation: conversion proceeds on a fresh document.
func newDocxDocument(template []byte, log *slog.Logger) *docx.Docx {
	if len(template) > 0 {
		doc, err := docx.Parse(bytes.NewReader(template), int64(len(template)))
		if err == nil {
			doc.Document.Body.Items = nil
			return doc
		}
		if log != nil {
			log.Warn("template unreadable, using default document", "error", err)
		}
	}
	return docx.New().WithDefaultTheme()
}

type docxWriter struct {
	doc  *docx.Docx
	para *docx.Paragraph // current paragraph for inline content
}

func (w *docxWriter) walk(n *xhtml.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.block(c)
	}
}

func (w *docxWriter) block(n *xhtml.Node) {
	if n.Type != xhtml.ElementNode {
		if n.Type == xhtml.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				w.doc.AddParagraph().AddText(t)
			}
		}
		return
	}

	if level := headingLevel(n.Data); level > 0 {
		p := w.doc.AddParagraph()
		p.Style(headingStyles[level])
		p.AddText(textContent(n))
		return
	}

	switch n.Data {
	case "p":
		w.para = w.doc.AddParagraph()
		w.inline(n, false, false)
	case "pre":
		w.para = w.doc.AddParagraph()
		for i, line := range strings.Split(strings.Trim(rawText(n), "\n"), "\n") {
			if i > 0 {
				w.para = w.doc.AddParagraph()
			}
			w.para.AddText(line).Color(codeColor)
		}
	case "ul":
		w.list(n, false, 0)
	case "ol":
		w.list(n, true, 0)
	case "table":
		w.table(n)
	case "hr":
		// Horizontal rules page-break in Word output.
		w.doc.AddParagraph().AddPageBreaks()
	case "blockquote":
		w.walk(n)
	default:
		w.walk(n)
	}
}

// inline writes a block's inline children into the current paragraph.
// A <br> starts a new paragraph, mirroring hard line breaks in the
// source.
func (w *docxWriter) inline(n *xhtml.Node, bold, italic bool) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xhtml.TextNode {
			t := strings.ReplaceAll(c.Data, "\n", " ")
			if strings.TrimSpace(t) == "" {
				continue
			}
			r := w.para.AddText(t)
			if bold {
				r.Bold()
			}
			if italic {
				r.Italic()
			}
			continue
		}
		if c.Type != xhtml.ElementNode {
			continue
		}
		switch c.Data {
		case "br":
			w.para = w.doc.AddParagraph()
		case "strong", "b":
			w.inline(c, true, italic)
		case "em", "i":
			w.inline(c, bold, true)
		case "code":
			if t := textContent(c); t != "" {
				w.para.AddText(t).Color(codeColor)
			}
		case "a":
			text := textContent(c)
			href := attrValue(c, "href")
			if text == "" {
				text = href
			}
			if href != "" {
				w.para.AddLink(text, href)
			} else if text != "" {
				w.para.AddText(text)
			}
		case "del", "s":
			w.inline(c, bold, italic)
		default:
			w.inline(c, bold, italic)
		}
	}
}

// list renders list items as plain-text markers rather than Word
// auto-numbering, which keeps start values and nesting predictable.
func (w *docxWriter) list(n *xhtml.Node, ordered bool, depth int) {
	index := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xhtml.ElementNode || c.Data != "li" {
			continue
		}
		index++
		marker := "• "
		if ordered {
			marker = fmt.Sprintf("%d. ", index)
		}

		w.para = w.doc.AddParagraph()
		w.para.AddText(strings.Repeat("    ", depth) + marker)
		for ic := c.FirstChild; ic != nil; ic = ic.NextSibling {
			if ic.Type == xhtml.ElementNode && (ic.Data == "ul" || ic.Data == "ol") {
				w.list(ic, ic.Data == "ol", depth+1)
				continue
			}
			if ic.Type == xhtml.ElementNode && ic.Data == "p" {
				w.inline(ic, false, false)
				continue
			}
			if ic.Type == xhtml.TextNode {
				if t := strings.TrimSpace(ic.Data); t != "" {
					w.para.AddText(t)
				}
				continue
			}
			w.inlineNode(ic)
		}
	}
}

// inlineNode routes a single element through inline handling.
func (w *docxWriter) inlineNode(n *xhtml.Node) {
	switch n.Data {
	case "strong", "b":
		w.inline(n, true, false)
	case "em", "i":
		w.inline(n, false, true)
	case "code":
		if t := textContent(n); t != "" {
			w.para.AddText(t).Color(codeColor)
		}
	default:
		w.inline(n, false, false)
	}
}

func (w *docxWriter) table(n *xhtml.Node) {
	var rows []*xhtml.Node
	var collect func(*xhtml.Node)
	collect = func(n *xhtml.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == xhtml.ElementNode && c.Data == "tr" {
				rows = append(rows, c)
				continue
			}
			collect(c)
		}
	}
	collect(n)
	if len(rows) == 0 {
		return
	}

	cols := 0
	cellsOf := func(tr *xhtml.Node) []*xhtml.Node {
		var cells []*xhtml.Node
		for c := tr.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == xhtml.ElementNode && (c.Data == "td" || c.Data == "th") {
				cells = append(cells, c)
			}
		}
		return cells
	}
	for _, tr := range rows {
		if n := len(cellsOf(tr)); n > cols {
			cols = n
		}
	}

	tbl := w.doc.AddTable(len(rows), cols, 0, nil)
	for i, tr := range rows {
		cells := cellsOf(tr)
		for j, cell := range cells {
			if i >= len(tbl.TableRows) || j >= len(tbl.TableRows[i].TableCells) {
				continue
			}
			r := tbl.TableRows[i].TableCells[j].AddParagraph().AddText(textContent(cell))
			// First row is the header row; GFM tables always have one.
			if i == 0 || cell.Data == "th" {
				r.Bold()
			}
		}
	}
}
