package unitfmt

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// basicTypes is the closed set of single-letter conversion types from
// the conventional format mini-language, plus u and S for uncertainty
// and scientific notations.
const basicTypes = "bcdeEfFgGnosxX%uS"

// Deprecation message texts are fixed so callers can match on them.
const (
	msgNoUnitFormatter = "format spec does not contain a unit formatter;" +
		" falling back to the unit formatter from the default format," +
		" but a future release will require an explicit choice"
	msgNoMagnitudeFormatter = "format spec does not contain a magnitude formatter;" +
		" falling back to the magnitude formatter from the default format," +
		" but a future release will require an explicit choice"
)

// Policy selects how [Splitter.Split] resolves empty fields against the
// default spec.
type Policy int

const (
	// PolicyMerge fills each empty field from the default spec.
	PolicyMerge Policy = iota

	// PolicyWarn fills like PolicyMerge but emits a deprecation message
	// for each field it fills when the given spec is non-empty. An
	// entirely empty spec falls back without diagnostics.
	PolicyWarn

	// PolicySilent fills like PolicyMerge and never emits diagnostics.
	// It is the explicit opt-out for callers that disabled fallback
	// warnings.
	PolicySilent
)

// DeprecationSink receives deprecation warnings. Calls are
// fire-and-forget: never retried and never allowed to fail a split.
type DeprecationSink interface {
	Deprecation(message string)
}

// DeprecationFunc adapts a function to [DeprecationSink].
type DeprecationFunc func(message string)

// Deprecation calls f.
func (f DeprecationFunc) Deprecation(message string) { f(message) }

// Splitter separates format specs into magnitude and unit portions
// using the flags known to its registry.
type Splitter struct {
	reg  *Registry
	sink DeprecationSink
}

// NewSplitter returns a splitter over reg. A nil registry means
// [DefaultRegistry]; a nil sink discards diagnostics.
func NewSplitter(reg *Registry, sink DeprecationSink) *Splitter {
	if reg == nil {
		reg = DefaultRegistry()
	}
	return &Splitter{reg: reg, sink: sink}
}

// ExtractFlags returns the concatenation of every known flag occurrence
// in spec, in original order. At each position the longest matching
// flag wins; unmatched runes are skipped.
func (s *Splitter) ExtractFlags(spec string) string {
	if spec == "" {
		return ""
	}
	flags := s.reg.Flags()
	var b strings.Builder
	for i := 0; i < len(spec); {
		matched := false
		for _, f := range flags {
			if strings.HasPrefix(spec[i:], f) {
				b.WriteString(f)
				i += len(f)
				matched = true
				break
			}
		}
		if !matched {
			_, size := utf8.DecodeRuneInString(spec[i:])
			i += size
		}
	}
	return b.String()
}

// RemoveFlags deletes every occurrence of every known flag from spec,
// longest flags first, and returns the residue.
func (s *Splitter) RemoveFlags(spec string) string {
	for _, f := range s.reg.Flags() {
		spec = strings.ReplaceAll(spec, f, "")
	}
	return spec
}

// checkSpec scans spec from the end. Basic type letters and the
// reserved marker are skipped, one custom-flag group is allowed, and
// the scan stops at the first rune that is neither alphabetic nor a
// flag. An unknown letter fails with ErrMalformedSpecifier; a second
// flag group fails with ErrMisplacedFlag.
func (s *Splitter) checkSpec(spec string) error {
	flags := s.reg.Flags()
	rest := spec
	seen := false
	for rest != "" {
		r, size := utf8.DecodeLastRuneInString(rest)
		if r == '~' || strings.ContainsRune(basicTypes, r) {
			rest = rest[:len(rest)-size]
			continue
		}
		if f, ok := trailingFlag(rest, flags); ok {
			if seen {
				return ErrMisplacedFlag
			}
			seen = true
			rest = rest[:len(rest)-len(f)]
			continue
		}
		if unicode.IsLetter(r) {
			return fmt.Errorf("%w: %q", ErrMalformedSpecifier, r)
		}
		break
	}
	return nil
}

// trailingFlag returns the longest flag that is a suffix of s. The
// flags slice is already ordered longest first.
func trailingFlag(s string, flags []string) (string, bool) {
	for _, f := range flags {
		if strings.HasSuffix(s, f) {
			return f, true
		}
	}
	return "", false
}

// Split separates spec into its magnitude and unit portions, filling
// empty fields from the default spec per policy. Both spec strings are
// validated first; a malformed one fails the whole call.
func (s *Splitter) Split(spec, deflt string, policy Policy) (mspec, uspec string, err error) {
	if err := s.checkSpec(spec); err != nil {
		return "", "", err
	}
	if err := s.checkSpec(deflt); err != nil {
		return "", "", err
	}

	mspec = s.RemoveFlags(spec)
	uspec = s.ExtractFlags(spec)
	defaultMspec := s.RemoveFlags(deflt)
	defaultUspec := s.ExtractFlags(deflt)

	if policy == PolicyWarn && spec != "" {
		if uspec == "" && defaultUspec != "" {
			s.deprecate(msgNoUnitFormatter)
		}
		if mspec == "" && defaultMspec != "" {
			s.deprecate(msgNoMagnitudeFormatter)
		}
	}
	if mspec == "" {
		mspec = defaultMspec
	}
	if uspec == "" {
		uspec = defaultUspec
	}
	return mspec, uspec, nil
}

func (s *Splitter) deprecate(message string) {
	if s.sink != nil {
		s.sink.Deprecation(message)
	}
}
