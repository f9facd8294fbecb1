package heading

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Style renders a numbering prefix for a heading at a given level.
// counters is indexed by level (1-6); counters shallower than the
// heading's level may be zero when intermediate levels were skipped.
type Style interface {
	Name() string
	Render(level int, counters []int) string
}

// ErrUnknownStyle reports an unrecognized numbering style name.
var ErrUnknownStyle = errors.New("unknown numbering style")

// templateStyle renders prefixes from per-level template strings using
// the {levelN} / {levelN:format} placeholder grammar. All preset styles
// are defined this way, so a new style is a new template set.
type templateStyle struct {
	name      string
	templates map[int]string
}

func (s *templateStyle) Name() string { return s.name }

// placeholderPattern matches {levelN} with an optional :format suffix.
var placeholderPattern = regexp.MustCompile(`\{level([1-6])(?::([a-z_]+))?\}`)

var numeralFormats = map[string]func(int) string{
	"number":        strconv.Itoa,
	"chinese":       chineseNumeral,
	"chinese_upper": chineseUpperNumeral,
	"roman":         romanNumeral,
	"alpha":         func(n int) string { return alphaNumeral(n, true) },
	"alpha_lower":   func(n int) string { return alphaNumeral(n, false) },
}

func (s *templateStyle) Render(level int, counters []int) string {
	tmpl, ok := s.templates[level]
	if !ok {
		tmpl = fmt.Sprintf("{level%d} ", level)
	}
	return placeholderPattern.ReplaceAllStringFunc(tmpl, func(m string) string {
		sub := placeholderPattern.FindStringSubmatch(m)
		l, _ := strconv.Atoi(sub[1])
		if l >= len(counters) {
			return m
		}
		format := numeralFormats["number"]
		if sub[2] != "" {
			f, ok := numeralFormats[sub[2]]
			if !ok {
				return strconv.Itoa(counters[l])
			}
			format = f
		}
		return format(counters[l])
	})
}

func dottedDecimals(depth int, trailer string) map[int]string {
	t := make(map[int]string, depth)
	for level := 1; level <= depth; level++ {
		tmpl := ""
		for l := 1; l <= level; l++ {
			if l > 1 {
				tmpl += "."
			}
			tmpl += fmt.Sprintf("{level%d}", l)
		}
		t[level] = tmpl + trailer
	}
	return t
}

// Technical is pure dotted decimal numbering: 1, 1.1, 1.1.1.
var Technical Style = &templateStyle{name: "technical", templates: dottedDecimals(6, " ")}

// Academic is the same dotted decimal shape with a trailing period:
// 1., 1.1., 1.1.1.
var Academic Style = &templateStyle{name: "academic", templates: dottedDecimals(6, ". ")}

// ChineseBidding uses Chinese enumeration at level 1 (一、),
// parenthetical Chinese numerals at level 2 ((一)), and dotted decimal
// numbering at deeper levels.
var ChineseBidding Style = chineseBiddingStyle()

func chineseBiddingStyle() Style {
	t := dottedDecimals(6, " ")
	t[1] = "{level1:chinese}、"
	t[2] = "({level2:chinese}) "
	return &templateStyle{name: "chinese_bidding", templates: t}
}

// ChineseBook uses 第N篇 at level 1 and dotted decimal numbering below.
var ChineseBook Style = chineseBookStyle()

func chineseBookStyle() Style {
	t := dottedDecimals(6, " ")
	t[1] = "第{level1:chinese}篇 "
	return &templateStyle{name: "chinese_book", templates: t}
}

// CustomStyle builds a Style from per-level template strings, as loaded
// from a user-supplied template file.
func CustomStyle(templates map[int]string) Style {
	return &templateStyle{name: "custom", templates: templates}
}

// StyleByName resolves a preset style name. "tech" is accepted as an
// alias for "technical".
func StyleByName(name string) (Style, error) {
	switch name {
	case "technical", "tech":
		return Technical, nil
	case "academic":
		return Academic, nil
	case "chinese_bidding":
		return ChineseBidding, nil
	case "chinese_book":
		return ChineseBook, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// StyleNames lists the preset style names for help text and validation.
func StyleNames() []string {
	return []string{"technical", "academic", "chinese_bidding", "chinese_book"}
}
