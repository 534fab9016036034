package unitfmt

import (
	"cmp"
	"errors"
	"math"
	"slices"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrMalformedSpecifier = errors.New("unknown conversion specified")
	ErrMisplacedFlag      = errors.New("expected separator after format specifier")
	ErrDuplicateFlag      = errors.New("flag already registered")
	ErrInvalidFlag        = errors.New("invalid flag")
	ErrUnknownRenderer    = errors.New("unknown exponent renderer")
)

// Term is one (symbol, exponent) pair in a unit expression. Symbols are
// opaque labels; exponents may be fractional.
type Term struct {
	Symbol   string
	Exponent float64
}

// ExponentFunc renders a numeric exponent as a string.
type ExponentFunc func(float64) string

// Style bundles the presentation choices consumed by [Format]. The zero
// value renders everything as an unseparated product; start from
// [DefaultStyle] or a [DefaultRegistry] preset instead.
type Style struct {
	// AsRatio places negative-exponent terms after a division operator
	// instead of rendering them as signed powers. The exponent sign is
	// then carried by position, so exponents render as absolute values.
	AsRatio bool

	// SingleDenominator collects all negative-exponent terms into one
	// product, parenthesized when there is more than one. Only
	// meaningful when AsRatio is set.
	SingleDenominator bool

	// ProductFmt, DivisionFmt, PowerFmt, and ParenthesesFmt are the
	// operator format strings. Each is either a plain separator or a
	// template with "{}"/"{N}" replacement tokens.
	ProductFmt     string
	DivisionFmt    string
	PowerFmt       string
	ParenthesesFmt string

	// Exponent renders exponent values. Nil means [FormatExponent].
	Exponent ExponentFunc

	// Sort orders terms by symbol, then exponent, before rendering.
	Sort bool
}

// DefaultStyle returns the conventional text style: a sorted ratio with
// " * ", " / ", and "{} ** {}" operators and plain exponents.
func DefaultStyle() Style {
	return Style{
		AsRatio:        true,
		ProductFmt:     " * ",
		DivisionFmt:    " / ",
		PowerFmt:       "{} ** {}",
		ParenthesesFmt: "({0})",
		Exponent:       FormatExponent,
		Sort:           true,
	}
}

// Format renders terms as a single string under st. The input slice is
// never modified. An empty input renders as the empty string. Duplicate
// symbols are not merged; each term renders on its own.
func Format(terms []Term, st Style) string {
	items := slices.Clone(terms)
	if st.Sort {
		slices.SortFunc(items, func(a, b Term) int {
			if c := strings.Compare(a.Symbol, b.Symbol); c != 0 {
				return c
			}
			return cmp.Compare(a.Exponent, b.Exponent)
		})
	}
	if len(items) == 0 {
		return ""
	}

	exp := st.Exponent
	if exp == nil {
		exp = FormatExponent
	}
	render := exp
	if st.AsRatio {
		// Position carries the sign in ratio mode.
		render = func(e float64) string { return exp(math.Abs(e)) }
	}

	var pos, neg []string
	for _, t := range items {
		switch {
		case t.Exponent == 1:
			pos = append(pos, t.Symbol)
		case t.Exponent > 0:
			pos = append(pos, apply(st.PowerFmt, t.Symbol, render(t.Exponent)))
		case t.Exponent == -1 && st.AsRatio:
			neg = append(neg, t.Symbol)
		default:
			neg = append(neg, apply(st.PowerFmt, t.Symbol, render(t.Exponent)))
		}
	}

	if !st.AsRatio {
		// One flat product; negative exponents stay on their terms.
		return joinWith(st.ProductFmt, append(pos, neg...))
	}

	posStr := joinWith(st.ProductFmt, pos)
	if posStr == "" {
		posStr = "1"
	}
	if len(neg) == 0 {
		return posStr
	}

	var negStr string
	if st.SingleDenominator {
		negStr = joinWith(st.ProductFmt, neg)
		if len(neg) > 1 {
			negStr = apply(st.ParenthesesFmt, negStr)
		}
	} else {
		negStr = joinWith(st.DivisionFmt, neg)
	}
	return joinWith(st.DivisionFmt, []string{posStr, negStr})
}
