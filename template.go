package unitfmt

import (
	"regexp"
	"strconv"
	"strings"
)

// templateToken matches the positional replacement fields understood by
// format strings: "{}" or "{N}".
var templateToken = regexp.MustCompile(`\{(\d*)\}`)

// apply substitutes args into the replacement tokens of format. Bare
// "{}" tokens consume arguments left to right; "{N}" tokens pick one by
// index. Tokens without a matching argument are left verbatim.
func apply(format string, args ...string) string {
	next := 0
	return templateToken.ReplaceAllStringFunc(format, func(tok string) string {
		idx := next
		if digits := tok[1 : len(tok)-1]; digits != "" {
			idx, _ = strconv.Atoi(digits)
		} else {
			next++
		}
		if idx >= len(args) {
			return tok
		}
		return args[idx]
	})
}

// joinWith joins parts using format. A format without replacement
// tokens is a plain separator. A format with tokens is treated as a
// binary template and folded left-associatively over parts; templates
// meant to take more than two operands are not supported.
func joinWith(format string, parts []string) string {
	if len(parts) == 0 {
		return ""
	}
	if !templateToken.MatchString(format) {
		return strings.Join(parts, format)
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out = apply(format, out, p)
	}
	return out
}
