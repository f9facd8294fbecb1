package heading

import (
	"regexp"
	"strings"
)

// A recognizer matches one numbering-prefix form at the start of a
// heading title. Recognizers are tried in priority order and the first
// match wins, so each form stays independently testable.
type recognizer struct {
	name string
	re   *regexp.Regexp
}

// Ordered most-specific first. Bare decimals and single letters require
// a separator so words like "3D" or initials are not mistaken for
// numbering.
var prefixRecognizers = []recognizer{
	{"chinese_chapter", regexp.MustCompile(`^第[一二三四五六七八九十百千万]+[篇章]\s*`)},
	{"chinese_enum", regexp.MustCompile(`^(?:[一二三四五六七八九十百千万]+、)+\s*`)},
	{"chinese_upper_enum", regexp.MustCompile(`^(?:[壹贰叁肆伍陆柒捌玖拾佰仟万]+、)+\s*`)},
	{"fullwidth_enum", regexp.MustCompile(`^(?:[0-9０-９]+、)+\s*`)},
	{"paren_decimal", regexp.MustCompile(`^\([0-9]+\)\s*`)},
	{"paren_chinese", regexp.MustCompile(`^\([一二三四五六七八九十百千万]+\)\s*`)},
	{"paren_roman", regexp.MustCompile(`^\([IVXLCDMivxlcdm]+\)\s*`)},
	{"paren_letter", regexp.MustCompile(`^\([A-Za-z]\)\s*`)},
	{"close_paren", regexp.MustCompile(`^(?:[0-9]+|[一二三四五六七八九十百千万]+)）\s*`)},
	{"decimal_letter", regexp.MustCompile(`^(?:\d+\.)*(?:\d+\.[A-Za-z])+\.?\s*`)},
	{"dotted_decimal", regexp.MustCompile(`^(?:\d+\.)+\d*\s*`)},
	{"bare_decimal", regexp.MustCompile(`^\d+\s+`)},
	{"roman_dot", regexp.MustCompile(`^[IVXLCDMivxlcdm]+\.\s+`)},
	{"letter_dot", regexp.MustCompile(`^[A-Za-z]\.\s+`)},
	{"multi_letter_dot", regexp.MustCompile(`^(?:\.[A-Za-z])+\s*`)},
}

// SplitPrefix splits a heading title into its numbering prefix and the
// clean remainder. The prefix is "" when no recognized form matches.
func SplitPrefix(title string) (prefix, clean string) {
	for _, r := range prefixRecognizers {
		loc := r.re.FindStringIndex(title)
		if loc == nil {
			continue
		}
		return title[:loc[1]], strings.TrimSpace(title[loc[1]:])
	}
	return "", strings.TrimSpace(title)
}
