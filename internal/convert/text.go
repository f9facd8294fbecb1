package convert

import (
	"bytes"
	"fmt"
	"strings"

	xhtml "golang.org/x/net/html"
)

// toText strips all markup, emitting plain text with a blank line
// between blocks. Lists keep simple textual markers and table rows
// become tab-separated lines.
func toText(src []byte) ([]byte, error) {
	rendered, err := renderHTML(src)
	if err != nil {
		return nil, err
	}
	root, err := xhtml.Parse(bytes.NewReader(rendered))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var blocks []string
	body := findBody(root)
	if body != nil {
		blocks = textBlocks(body, blocks)
	}
	if len(blocks) == 0 {
		return []byte{}, nil
	}
	return []byte(strings.Join(blocks, "\n\n") + "\n"), nil
}

func textBlocks(n *xhtml.Node, blocks []string) []string {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xhtml.ElementNode {
			if c.Type == xhtml.TextNode {
				if t := strings.TrimSpace(c.Data); t != "" {
					blocks = append(blocks, t)
				}
			}
			continue
		}

		switch {
		case headingLevel(c.Data) > 0, c.Data == "p":
			if t := blockText(c); t != "" {
				blocks = append(blocks, t)
			}
		case c.Data == "pre":
			// Code blocks keep their internal line structure.
			if t := strings.Trim(rawText(c), "\n"); t != "" {
				blocks = append(blocks, t)
			}
		case c.Data == "ul", c.Data == "ol":
			if t := listText(c, c.Data == "ol", 0); t != "" {
				blocks = append(blocks, t)
			}
		case c.Data == "table":
			if t := tableText(c); t != "" {
				blocks = append(blocks, t)
			}
		case c.Data == "blockquote":
			blocks = textBlocks(c, blocks)
		default:
			blocks = textBlocks(c, blocks)
		}
	}
	return blocks
}

// blockText flattens a block's inline content. Hard line breaks become
// newlines within the block.
func blockText(n *xhtml.Node) string {
	var buf strings.Builder
	var walk func(*xhtml.Node)
	walk = func(n *xhtml.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch {
			case c.Type == xhtml.TextNode:
				buf.WriteString(c.Data)
			case c.Data == "br":
				buf.WriteString("\n")
			default:
				walk(c)
			}
		}
	}
	walk(n)
	return strings.TrimSpace(buf.String())
}

// rawText concatenates text nodes without trimming interior structure.
func rawText(n *xhtml.Node) string {
	var buf strings.Builder
	var walk func(*xhtml.Node)
	walk = func(n *xhtml.Node) {
		if n.Type == xhtml.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return buf.String()
}

func listText(n *xhtml.Node, ordered bool, depth int) string {
	var lines []string
	indent := strings.Repeat("  ", depth)
	index := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xhtml.ElementNode || c.Data != "li" {
			continue
		}
		index++
		marker := "- "
		if ordered {
			marker = fmt.Sprintf("%d. ", index)
		}

		// Item text excluding nested lists, which render on their own lines.
		var itemBuf strings.Builder
		var nested []string
		for ic := c.FirstChild; ic != nil; ic = ic.NextSibling {
			if ic.Type == xhtml.ElementNode && (ic.Data == "ul" || ic.Data == "ol") {
				if t := listText(ic, ic.Data == "ol", depth+1); t != "" {
					nested = append(nested, t)
				}
				continue
			}
			itemBuf.WriteString(textContent(ic))
			itemBuf.WriteString(" ")
		}
		if t := strings.TrimSpace(itemBuf.String()); t != "" {
			lines = append(lines, indent+marker+t)
		}
		lines = append(lines, nested...)
	}
	return strings.Join(lines, "\n")
}

func tableText(n *xhtml.Node) string {
	var lines []string
	var walkRows func(*xhtml.Node)
	walkRows = func(n *xhtml.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == xhtml.ElementNode && c.Data == "tr" {
				var cells []string
				for cc := c.FirstChild; cc != nil; cc = cc.NextSibling {
					if cc.Type == xhtml.ElementNode && (cc.Data == "td" || cc.Data == "th") {
						cells = append(cells, textContent(cc))
					}
				}
				if len(cells) > 0 {
					lines = append(lines, strings.Join(cells, "\t"))
				}
				continue
			}
			walkRows(c)
		}
	}
	walkRows(n)
	return strings.Join(lines, "\n")
}
