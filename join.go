package unitfmt

import "strings"

// Join combines a rendered magnitude and a rendered unit using a
// two-slot template. A unit beginning with "1 / " drops the leading
// "1 " so a reciprocal unit reads "5 / s" rather than "5 1 / s".
func Join(template, magnitude, unit string) string {
	if strings.HasPrefix(unit, "1 / ") {
		unit = unit[2:]
	}
	return apply(template, magnitude, unit)
}
