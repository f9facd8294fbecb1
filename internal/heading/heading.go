// Package heading implements the Markdown heading editor: scanning ATX
// headings out of raw text, shifting heading levels, and adding or
// removing structured numbering prefixes.
package heading

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Heading is a single ATX heading line.
type Heading struct {
	Level  int    // 1-6, number of leading '#'
	Title  string // text after the marker, including any numbering prefix
	Clean  string // Title with the numbering prefix stripped
	Prefix string // detected numbering prefix, "" if none
	Line   int    // index into the document's lines
}

// Document is a scanned Markdown document. Lines are kept verbatim;
// headings reference their source line by index so non-heading content
// is re-emitted untouched.
type Document struct {
	lines        []string
	headings     []*Heading
	byLine       map[int]*Heading
	finalNewline bool
}

// headingPattern matches an ATX heading: 1-6 '#' followed by at least
// one whitespace character. A marker with no trailing space is content.
var headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// Scan parses raw Markdown text into a Document.
func Scan(text string) *Document {
	doc := &Document{byLine: map[int]*Heading{}}
	if text == "" {
		return doc
	}
	doc.finalNewline = strings.HasSuffix(text, "\n")
	doc.lines = strings.Split(text, "\n")
	if doc.finalNewline {
		doc.lines = doc.lines[:len(doc.lines)-1]
	}

	for i, line := range doc.lines {
		m := headingPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		title := m[2]
		prefix, clean := SplitPrefix(title)
		h := &Heading{
			Level:  len(m[1]),
			Title:  title,
			Clean:  clean,
			Prefix: prefix,
			Line:   i,
		}
		doc.headings = append(doc.headings, h)
		doc.byLine[i] = h
	}
	return doc
}

// Headings returns the scanned headings in document order.
func (d *Document) Headings() []*Heading {
	return d.headings
}

// Upgrade shifts every heading up one level. Level 1 stays level 1.
// Numbering prefixes are left untouched.
func (d *Document) Upgrade() {
	for _, h := range d.headings {
		if h.Level > 1 {
			h.Level--
		}
	}
}

// Downgrade shifts every heading down one level. Level 6 stays level 6.
func (d *Document) Downgrade() {
	for _, h := range d.headings {
		if h.Level < 6 {
			h.Level++
		}
	}
}

// RemoveNumbers strips the detected numbering prefix from every heading.
func (d *Document) RemoveNumbers() {
	for _, h := range d.headings {
		h.Title = h.Clean
		h.Prefix = ""
	}
}

// AddNumbers assigns numbering prefixes to all headings in document
// order using the given style. Counters deeper than the current level
// reset when a shallower heading advances; skipped intermediate levels
// stay at zero. Prefixes are computed from the clean title, so applying
// AddNumbers twice yields the same result as once.
func (d *Document) AddNumbers(style Style) {
	counters := make([]int, 7) // index 1-6
	for _, h := range d.headings {
		for l := h.Level + 1; l <= 6; l++ {
			counters[l] = 0
		}
		counters[h.Level]++
		prefix := style.Render(h.Level, counters)
		h.Prefix = prefix
		h.Title = prefix + h.Clean
	}
}

// Render re-emits the document: content lines byte-for-byte, headings
// as marker + single space + title. The trailing-newline convention of
// the input is preserved.
func (d *Document) Render() string {
	if len(d.lines) == 0 {
		return ""
	}
	out := make([]string, len(d.lines))
	for i, line := range d.lines {
		if h, ok := d.byLine[i]; ok {
			out[i] = strings.Repeat("#", h.Level) + " " + h.Title
		} else {
			out[i] = line
		}
	}
	s := strings.Join(out, "\n")
	if d.finalNewline {
		s += "\n"
	}
	return s
}

// Action is an editor operation name.
type Action string

const (
	ActionUpgrade       Action = "upgrade"
	ActionDowngrade     Action = "downgrade"
	ActionRemoveNumbers Action = "remove_numbers"
	ActionAddNumbers    Action = "add_numbers"
)

var (
	// ErrUnknownAction reports an unrecognized editor action.
	ErrUnknownAction = errors.New("unknown action")
	// ErrMissingStyle reports add_numbers invoked without a style.
	ErrMissingStyle = errors.New("add_numbers requires a numbering style")
)

// ParseAction validates an action name.
func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionUpgrade, ActionDowngrade, ActionRemoveNumbers, ActionAddNumbers:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// Edit applies an editor action to raw Markdown text and returns the
// transformed text. The style argument is required for ActionAddNumbers
// and ignored otherwise.
func Edit(text string, action Action, style Style) (string, error) {
	doc := Scan(text)
	switch action {
	case ActionUpgrade:
		doc.Upgrade()
	case ActionDowngrade:
		doc.Downgrade()
	case ActionRemoveNumbers:
		doc.RemoveNumbers()
	case ActionAddNumbers:
		if style == nil {
			return "", ErrMissingStyle
		}
		doc.AddNumbers(style)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	return doc.Render(), nil
}
