package unitfmt

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// reservedFlag marks the short-symbol modifier. It is always known and
// always routed to the unit spec, but carries no style of its own.
const reservedFlag = "~"

// Registry maps custom format flags to the [Style] each one selects.
// Register flags during setup; reads need no locking as long as nothing
// registers concurrently.
type Registry struct {
	styles map[string]Style
	flags  []string
}

// NewRegistry returns an empty registry. The reserved "~" marker is
// always present.
func NewRegistry() *Registry {
	return &Registry{
		styles: make(map[string]Style),
		flags:  []string{reservedFlag},
	}
}

// Register adds a flag and the style it selects. Empty and reserved
// flags are rejected with [ErrInvalidFlag]; re-registering a flag is
// rejected with [ErrDuplicateFlag].
func (r *Registry) Register(flag string, st Style) error {
	if flag == "" || flag == reservedFlag {
		return fmt.Errorf("%w: %q", ErrInvalidFlag, flag)
	}
	if _, ok := r.styles[flag]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateFlag, flag)
	}
	r.styles[flag] = st
	r.flags = append(r.flags, flag)
	// Longest first so greedy matching is deterministic when flags
	// share prefixes; ties break lexicographically.
	slices.SortFunc(r.flags, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return nil
}

// Lookup returns the style registered for flag. The reserved marker has
// no style and reports false.
func (r *Registry) Lookup(flag string) (Style, bool) {
	st, ok := r.styles[flag]
	return st, ok
}

// Known reports whether flag is registered or is the reserved marker.
func (r *Registry) Known(flag string) bool {
	if flag == reservedFlag {
		return true
	}
	_, ok := r.styles[flag]
	return ok
}

// Flags returns all known flags, including the reserved marker, longest
// first. The slice is a copy.
func (r *Registry) Flags() []string {
	return slices.Clone(r.flags)
}
