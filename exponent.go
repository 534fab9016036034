package unitfmt

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatExponent is the default exponent renderer: the shortest decimal
// representation that round-trips.
func FormatExponent(e float64) string {
	return strconv.FormatFloat(e, 'g', -1, 64)
}

// LocalizedExponent returns a renderer that formats exponents with the
// numbering conventions of tag, including digit grouping.
func LocalizedExponent(tag language.Tag) ExponentFunc {
	p := message.NewPrinter(tag)
	return func(e float64) string {
		return p.Sprint(number.Decimal(e))
	}
}

var superscripts = []rune("⁰¹²³⁴⁵⁶⁷⁸⁹")

// PrettyExponent renders e with superscript digits. The minus sign
// becomes a superscript minus and the decimal point becomes the dot
// operator U+22C5, which reads as a superscript point.
func PrettyExponent(e float64) string {
	var b strings.Builder
	for _, r := range FormatExponent(e) {
		switch {
		case r == '-':
			b.WriteRune('⁻')
		case r == '.':
			b.WriteRune('⋅')
		case r >= '0' && r <= '9':
			b.WriteRune(superscripts[r-'0'])
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
