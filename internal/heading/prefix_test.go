package heading

import "testing"

func TestSplitPrefix(t *testing.T) {
	tests := []struct {
		title  string
		prefix string
		clean  string
	}{
		{"1 Overview", "1 ", "Overview"},
		{"1.2 Methods", "1.2 ", "Methods"},
		{"1.2.3. Results", "1.2.3. ", "Results"},
		{"1. Intro", "1. ", "Intro"},
		{"一、概述", "一、", "概述"},
		{"十二、附录", "十二、", "附录"},
		{"壹、总则", "壹、", "总则"},
		{"(一) 背景", "(一) ", "背景"},
		{"(1) First", "(1) ", "First"},
		{"(IV) Appendix", "(IV) ", "Appendix"},
		{"(a) item", "(a) ", "item"},
		{"1）说明", "1）", "说明"},
		{"一）说明", "一）", "说明"},
		{"１、全角", "１、", "全角"},
		{"IV. Discussion", "IV. ", "Discussion"},
		{"A. Appendix", "A. ", "Appendix"},
		{"1.2.A Variant", "1.2.A ", "Variant"},
		{"第三章 实现", "第三章 ", "实现"},
		{"第一篇 绪论", "第一篇 ", "绪论"},

		// No prefix. Trailing whitespace is trimmed either way.
		{"Overview", "", "Overview"},
		{"Overview ", "", "Overview"},
		{"1.2 Methods ", "1.2 ", "Methods"},
	}
	for _, tt := range tests {
		prefix, clean := SplitPrefix(tt.title)
		if prefix != tt.prefix || clean != tt.clean {
			t.Errorf("SplitPrefix(%q) = %q, %q; want %q, %q", tt.title, prefix, clean, tt.prefix, tt.clean)
		}
	}
}

func TestSplitPrefix_NoFalsePositives(t *testing.T) {
	// Titles that merely start with letters or digits must survive.
	tests := []string{
		"3D Models",
		"IPv6 Migration",
		"Overview",
		"C is for Cookie", // "C " has no dot, not roman-dot form
	}
	for _, title := range tests {
		prefix, clean := SplitPrefix(title)
		if prefix != "" || clean != title {
			t.Errorf("SplitPrefix(%q) = %q, %q; want no prefix", title, prefix, clean)
		}
	}
}
