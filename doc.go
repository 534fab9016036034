// Package unitfmt renders unit expressions, ordered sequences of
// (symbol, exponent) pairs, as human-readable strings, and splits
// conventional format specs into their magnitude and unit portions.
//
// # Formatting Expressions
//
// [Format] turns a slice of [Term] into a single string under the
// presentation choices in a [Style]:
//
//	terms := []unitfmt.Term{{Symbol: "m", Exponent: 1}, {Symbol: "s", Exponent: -2}}
//	unitfmt.Format(terms, unitfmt.DefaultStyle()) // "m / s ** 2"
//
// A Style selects ratio or signed-power presentation, per-term or
// single parenthesized denominators, the operator strings, and the
// exponent renderer. Format strings use positional replacement tokens:
// "{}" consumes the next argument and "{0}", "{1}" name one explicitly.
// Strings without tokens act as plain separators.
//
// # Exponent Renderers
//
// Three renderers ship with the package:
//
//   - [FormatExponent] — plain decimal, the default
//   - [LocalizedExponent] — digit grouping per a BCP 47 language tag
//   - [PrettyExponent] — Unicode superscripts, "s⁻²"
//
// # Named Styles
//
// [DefaultRegistry] carries the built-in named styles, keyed by the
// custom flag that selects them in a format spec:
//
//   - D — "m / s ** 2"
//   - P — "m/s²"
//   - C — "m/s**2"
//   - H — "m/s<sup>2</sup>"
//
// Custom flags register on a [Registry] of your own via
// [Registry.Register]. The reserved "~" marker is always known and
// never carries a style.
//
// # Splitting Format Specs
//
// A [Splitter] owns a flag registry and splits a raw spec like ".3f~P"
// into a magnitude spec (".3f") and a unit spec ("~P"):
//
//	s := unitfmt.NewSplitter(nil, nil) // default registry, no sink
//	mspec, uspec, err := s.Split(".3f~P", "gD", unitfmt.PolicyMerge)
//
// Empty fields fall back to the corresponding field of the default
// spec. [PolicyWarn] announces each fallback through the splitter's
// [DeprecationSink]; [PolicyMerge] and [PolicySilent] stay quiet.
//
// # Combining Magnitude and Unit
//
// [Join] applies a two-slot template to a rendered magnitude and unit,
// rewriting reciprocal units so "5" + "1 / s" reads "5 / s":
//
//	unitfmt.Join("{} {}", "5", "1 / s") // "5 / s"
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrMalformedSpecifier] — unknown conversion letter in a spec
//   - [ErrMisplacedFlag] — second flag group without a separator
//   - [ErrDuplicateFlag] — flag registered twice
//   - [ErrInvalidFlag] — empty or reserved flag registered
//   - [ErrUnknownRenderer] — style definition names no known renderer
package unitfmt
