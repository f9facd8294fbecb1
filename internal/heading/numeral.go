package heading

import (
	"strconv"
	"strings"
)

var (
	chineseDigits      = []string{"", "一", "二", "三", "四", "五", "六", "七", "八", "九"}
	chineseUpperDigits = []string{"", "壹", "贰", "叁", "肆", "伍", "陆", "柒", "捌", "玖"}
	chineseUnits       = []string{"", "十", "百", "千", "万"}
	chineseUpperUnits  = []string{"", "拾", "佰", "仟", "万"}
)

// chineseNumeral converts an Arabic number to Chinese numerals
// (一, 二, ... 十, 十一, ... 二十). Intended range is 1-9999.
func chineseNumeral(n int) string {
	return chineseFromDigits(n, chineseDigits, chineseUnits, "一")
}

// chineseUpperNumeral converts to the uppercase (financial) numerals
// used in formal documents (壹, 贰, 叁...).
func chineseUpperNumeral(n int) string {
	return chineseFromDigits(n, chineseUpperDigits, chineseUpperUnits, "壹")
}

func chineseFromDigits(n int, digits, units []string, one string) string {
	if n == 0 {
		return "零"
	}
	if n < 0 {
		return "负" + chineseFromDigits(-n, digits, units, one)
	}
	s := strconv.Itoa(n)
	var b strings.Builder
	pendingZero := false
	for i, c := range s {
		d := int(c - '0')
		place := len(s) - i - 1
		if d == 0 {
			pendingZero = true
			continue
		}
		if pendingZero && b.Len() > 0 {
			b.WriteString("零")
		}
		pendingZero = false
		b.WriteString(digits[d])
		if place < len(units) {
			b.WriteString(units[place])
		}
	}
	out := b.String()
	// 10-19 read as 十, 十一, ... rather than 一十, 一十一.
	if n >= 10 && n <= 19 {
		out = strings.TrimPrefix(out, one)
	}
	return out
}

var romanValues = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// romanNumeral converts an Arabic number (1-3999) to Roman numerals.
// Out-of-range values fall back to the decimal form.
func romanNumeral(n int) string {
	if n <= 0 || n >= 4000 {
		return strconv.Itoa(n)
	}
	var b strings.Builder
	for _, rv := range romanValues {
		for n >= rv.value {
			b.WriteString(rv.symbol)
			n -= rv.value
		}
	}
	return b.String()
}

// alphaNumeral converts 1-26 to A-Z (or a-z). Out-of-range values fall
// back to the decimal form.
func alphaNumeral(n int, upper bool) string {
	if n <= 0 || n > 26 {
		return strconv.Itoa(n)
	}
	base := byte('A')
	if !upper {
		base = 'a'
	}
	return string(base + byte(n) - 1)
}
