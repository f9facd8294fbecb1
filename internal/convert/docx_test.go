package convert

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fumiama/go-docx"
)

// parseDocx reads generated output back so tests can assert on the
// document structure.
func parseDocx(t *testing.T, data []byte) *docx.Docx {
	t.Helper()
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("parse generated docx: %v", err)
	}
	return doc
}

func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

func paragraphStyle(para *docx.Paragraph) string {
	if para.Properties == nil || para.Properties.Style == nil {
		return ""
	}
	return para.Properties.Style.Val
}

func TestToDOCX_HeadingStyleMapping(t *testing.T) {
	out, err := Convert([]byte("## Quarterly Report\n\nBody text.\n"), FormatDOCX, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := parseDocx(t, out)

	foundHeading := false
	foundBody := false
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		switch paragraphText(para) {
		case "Quarterly Report":
			foundHeading = true
			if got := paragraphStyle(para); got != "Heading2" {
				t.Errorf("heading style = %q, want %q", got, "Heading2")
			}
		case "Body text.":
			foundBody = true
			if got := paragraphStyle(para); strings.HasPrefix(got, "Heading") {
				t.Errorf("body paragraph has heading style %q", got)
			}
		}
	}
	if !foundHeading {
		t.Error("generated document missing heading paragraph")
	}
	if !foundBody {
		t.Error("generated document missing body paragraph")
	}
}

func TestToDOCX_AllHeadingLevels(t *testing.T) {
	md := "# A\n## B\n### C\n#### D\n##### E\n###### F\n"
	out, err := Convert([]byte(md), FormatDOCX, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := parseDocx(t, out)

	styles := map[string]string{} // text -> style
	for _, item := range doc.Document.Body.Items {
		if para, ok := item.(*docx.Paragraph); ok {
			styles[paragraphText(para)] = paragraphStyle(para)
		}
	}
	want := map[string]string{
		"A": "Heading1", "B": "Heading2", "C": "Heading3",
		"D": "Heading4", "E": "Heading5", "F": "Heading6",
	}
	for text, style := range want {
		if styles[text] != style {
			t.Errorf("heading %q style = %q, want %q", text, styles[text], style)
		}
	}
}

func TestToDOCX_ListAndParagraphContent(t *testing.T) {
	md := "Intro.\n\n- alpha\n- beta\n"
	out, err := Convert([]byte(md), FormatDOCX, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := parseDocx(t, out)

	var texts []string
	for _, item := range doc.Document.Body.Items {
		if para, ok := item.(*docx.Paragraph); ok {
			texts = append(texts, paragraphText(para))
		}
	}
	joined := strings.Join(texts, "\n")
	for _, want := range []string{"Intro.", "• alpha", "• beta"} {
		if !strings.Contains(joined, want) {
			t.Errorf("document missing %q, got:\n%s", want, joined)
		}
	}
}

func TestToDOCX_BadTemplateFallsBack(t *testing.T) {
	// A template that is not a zip archive degrades to the default
	// document instead of failing the conversion.
	out, err := Convert([]byte("# Hi\n"), FormatDOCX, Options{Template: []byte("not a docx")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := parseDocx(t, out)
	if len(doc.Document.Body.Items) == 0 {
		t.Error("expected content in fallback document")
	}
}
