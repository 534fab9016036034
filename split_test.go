package unitfmt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/unitfmt"
)

// --- Test types: deprecation sink ---

type recordingSink struct {
	messages []string
}

func (s *recordingSink) Deprecation(message string) {
	s.messages = append(s.messages, message)
}

func newTestRegistry(t *testing.T, flags ...string) *unitfmt.Registry {
	t.Helper()
	reg := unitfmt.NewRegistry()
	for _, f := range flags {
		require.NoError(t, reg.Register(f, unitfmt.DefaultStyle()))
	}
	return reg
}

func TestExtractFlags(t *testing.T) {
	t.Parallel()
	s := unitfmt.NewSplitter(newTestRegistry(t, "P", "C"), nil)
	assert.Equal(t, "~P", s.ExtractFlags(".3f~P"))
	assert.Equal(t, "", s.ExtractFlags(".2f"))
	assert.Equal(t, "", s.ExtractFlags(""))
	assert.Equal(t, "CP", s.ExtractFlags("C.2fP"))
}

func TestExtractFlagsLongestMatch(t *testing.T) {
	t.Parallel()
	s := unitfmt.NewSplitter(newTestRegistry(t, "P", "Px"), nil)
	assert.Equal(t, "Px", s.ExtractFlags("Px"))
	assert.Equal(t, "PxP", s.ExtractFlags("PxP"))
}

func TestRemoveFlags(t *testing.T) {
	t.Parallel()
	s := unitfmt.NewSplitter(newTestRegistry(t, "P", "C"), nil)
	assert.Equal(t, ".3f", s.RemoveFlags(".3f~P"))
	assert.Equal(t, ".2f", s.RemoveFlags(".2f"))
	assert.Equal(t, "", s.RemoveFlags("~P"))
}

func TestExtractAfterRemoveIsEmpty(t *testing.T) {
	t.Parallel()
	s := unitfmt.NewSplitter(newTestRegistry(t, "P", "C", "Px"), nil)
	for _, spec := range []string{"", ".3f~P", "Px.2fC", "~", "gC", ".4e"} {
		assert.Empty(t, s.ExtractFlags(s.RemoveFlags(spec)), spec)
	}
}

func TestSplitEmptySpecUsesDefaults(t *testing.T) {
	t.Parallel()
	s := unitfmt.NewSplitter(newTestRegistry(t, "P"), nil)
	mspec, uspec, err := s.Split("", ".3f~P", unitfmt.PolicyMerge)
	require.NoError(t, err)
	assert.Equal(t, ".3f", mspec)
	assert.Equal(t, "~P", uspec)
}

func TestSplitMergePerField(t *testing.T) {
	t.Parallel()
	s := unitfmt.NewSplitter(newTestRegistry(t, "P", "C"), nil)

	mspec, uspec, err := s.Split(".2f", "gC", unitfmt.PolicyMerge)
	require.NoError(t, err)
	assert.Equal(t, ".2f", mspec)
	assert.Equal(t, "C", uspec)

	mspec, uspec, err = s.Split("~P", ".3fC", unitfmt.PolicyMerge)
	require.NoError(t, err)
	assert.Equal(t, ".3f", mspec)
	assert.Equal(t, "~P", uspec)
}

func TestSplitWarnsOnUnitFallback(t *testing.T) {
	t.Parallel()
	sink := &recordingSink{}
	s := unitfmt.NewSplitter(newTestRegistry(t, "P"), sink)
	mspec, uspec, err := s.Split(".2f", ".3f~P", unitfmt.PolicyWarn)
	require.NoError(t, err)
	assert.Equal(t, ".2f", mspec)
	assert.Equal(t, "~P", uspec)
	require.Len(t, sink.messages, 1)
	assert.Contains(t, sink.messages[0], "unit formatter")
}

func TestSplitWarnsOnMagnitudeFallback(t *testing.T) {
	t.Parallel()
	sink := &recordingSink{}
	s := unitfmt.NewSplitter(newTestRegistry(t, "P", "C"), sink)
	mspec, uspec, err := s.Split("P", ".3fC", unitfmt.PolicyWarn)
	require.NoError(t, err)
	assert.Equal(t, ".3f", mspec)
	assert.Equal(t, "P", uspec)
	require.Len(t, sink.messages, 1)
	assert.Contains(t, sink.messages[0], "magnitude formatter")
}

func TestSplitWarnEmptySpecIsSilent(t *testing.T) {
	t.Parallel()
	sink := &recordingSink{}
	s := unitfmt.NewSplitter(newTestRegistry(t, "P"), sink)
	mspec, uspec, err := s.Split("", ".3fP", unitfmt.PolicyWarn)
	require.NoError(t, err)
	assert.Equal(t, ".3f", mspec)
	assert.Equal(t, "P", uspec)
	assert.Empty(t, sink.messages)
}

func TestSplitSilentPolicy(t *testing.T) {
	t.Parallel()
	sink := &recordingSink{}
	s := unitfmt.NewSplitter(newTestRegistry(t, "P"), sink)
	mspec, uspec, err := s.Split(".2f", ".3fP", unitfmt.PolicySilent)
	require.NoError(t, err)
	assert.Equal(t, ".2f", mspec)
	assert.Equal(t, "P", uspec)
	assert.Empty(t, sink.messages)
}

func TestSplitWarnNilSink(t *testing.T) {
	t.Parallel()
	s := unitfmt.NewSplitter(newTestRegistry(t, "P"), nil)
	assert.NotPanics(t, func() {
		_, _, err := s.Split(".2f", ".3fP", unitfmt.PolicyWarn)
		assert.NoError(t, err)
	})
}

func TestSplitMalformedSpecifier(t *testing.T) {
	t.Parallel()
	s := unitfmt.NewSplitter(newTestRegistry(t, "P"), nil)
	_, _, err := s.Split(".2fz", "", unitfmt.PolicyMerge)
	require.ErrorIs(t, err, unitfmt.ErrMalformedSpecifier)
	assert.Contains(t, err.Error(), "z")
}

func TestSplitMalformedDefault(t *testing.T) {
	t.Parallel()
	s := unitfmt.NewSplitter(newTestRegistry(t, "P"), nil)
	_, _, err := s.Split(".2f", "z", unitfmt.PolicyMerge)
	require.ErrorIs(t, err, unitfmt.ErrMalformedSpecifier)
}

func TestSplitMisplacedFlag(t *testing.T) {
	t.Parallel()
	s := unitfmt.NewSplitter(newTestRegistry(t, "P", "C"), nil)
	_, _, err := s.Split("PfC", "", unitfmt.PolicyMerge)
	require.ErrorIs(t, err, unitfmt.ErrMisplacedFlag)
}

func TestSplitStopsAtNonAlpha(t *testing.T) {
	t.Parallel()
	s := unitfmt.NewSplitter(newTestRegistry(t, "P"), nil)
	// Letters left of a non-alphabetic boundary are never inspected.
	mspec, uspec, err := s.Split("abc.2f", "", unitfmt.PolicyMerge)
	require.NoError(t, err)
	assert.Equal(t, "abc.2f", mspec)
	assert.Equal(t, "", uspec)
}

func TestSplitterDefaultRegistry(t *testing.T) {
	t.Parallel()
	s := unitfmt.NewSplitter(nil, nil)
	assert.Equal(t, "~P", s.ExtractFlags(".3f~P"))
}

func TestDeprecationFunc(t *testing.T) {
	t.Parallel()
	var got string
	sink := unitfmt.DeprecationFunc(func(message string) { got = message })
	s := unitfmt.NewSplitter(newTestRegistry(t, "P"), sink)
	_, _, err := s.Split(".2f", "P", unitfmt.PolicyWarn)
	require.NoError(t, err)
	assert.Contains(t, got, "unit formatter")
}

func TestRegistryRegisterDuplicate(t *testing.T) {
	t.Parallel()
	reg := unitfmt.NewRegistry()
	require.NoError(t, reg.Register("P", unitfmt.DefaultStyle()))
	err := reg.Register("P", unitfmt.DefaultStyle())
	require.ErrorIs(t, err, unitfmt.ErrDuplicateFlag)
}

func TestRegistryRegisterInvalid(t *testing.T) {
	t.Parallel()
	reg := unitfmt.NewRegistry()
	assert.ErrorIs(t, reg.Register("", unitfmt.DefaultStyle()), unitfmt.ErrInvalidFlag)
	assert.ErrorIs(t, reg.Register("~", unitfmt.DefaultStyle()), unitfmt.ErrInvalidFlag)
}

func TestRegistryKnown(t *testing.T) {
	t.Parallel()
	reg := newTestRegistry(t, "P")
	assert.True(t, reg.Known("P"))
	assert.True(t, reg.Known("~"))
	assert.False(t, reg.Known("Q"))
}

func TestRegistryFlagsOrder(t *testing.T) {
	t.Parallel()
	reg := newTestRegistry(t, "P", "Px", "C")
	assert.Equal(t, []string{"Px", "C", "P", "~"}, reg.Flags())
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()
	reg := unitfmt.DefaultRegistry()
	for _, flag := range []string{"D", "P", "C", "H", "~"} {
		assert.True(t, reg.Known(flag), flag)
	}
	_, ok := reg.Lookup("~")
	assert.False(t, ok)
}
