package convert

import (
	"bytes"
	"html"
	"strings"

	xhtml "golang.org/x/net/html"
)

// stylesheet is embedded into standalone HTML output so the converted
// document is readable without external assets.
const stylesheet = `body { max-width: 46em; margin: 2em auto; padding: 0 1em;
  font-family: "Helvetica Neue", Arial, "PingFang SC", "Microsoft YaHei", sans-serif;
  line-height: 1.6; color: #222; }
h1, h2, h3, h4, h5, h6 { font-weight: 600; line-height: 1.25; }
pre { background: #f6f8fa; padding: 1em; overflow-x: auto; }
code { font-family: "SFMono-Regular", Consolas, monospace; font-size: 0.92em; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.35em 0.7em; }
th { background: #f0f0f0; }
blockquote { border-left: 4px solid #ddd; margin-left: 0; padding-left: 1em; color: #555; }`

// toHTML wraps the converted body in a standalone page with the
// embedded stylesheet.
func toHTML(src []byte, opts Options) ([]byte, error) {
	body, err := renderHTML(src)
	if err != nil {
		return nil, err
	}

	title := opts.Title
	if title == "" {
		title = "Document"
	}

	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	buf.WriteString("<title>" + html.EscapeString(title) + "</title>\n")
	buf.WriteString("<style>\n" + stylesheet + "\n</style>\n</head>\n<body>\n")
	buf.Write(body)
	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes(), nil
}

// Shared helpers for walking the rendered HTML tree.

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

func textContent(n *xhtml.Node) string {
	var buf strings.Builder
	var extract func(*xhtml.Node)
	extract = func(n *xhtml.Node) {
		if n.Type == xhtml.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findBody(n *xhtml.Node) *xhtml.Node {
	if n.Type == xhtml.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}

func attrValue(n *xhtml.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
