package flagset

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseArgsLongForm tests --name value and --bool-name handling
func TestParseArgsLongForm(t *testing.T) {
	s := sampleSet()
	err := s.ParseArgs([]string{
		"--my-bool",
		"--my-string", "0",
		"--my-int64", "0",
		"--my-wide", "0",
		"--my-float64", "0.0",
		"--my-string-array", "3",
		"--my-string-array", "4",
		"--my-int64-array", "3",
		"--my-int64-array", "4",
		"--my-wide-array", "3",
		"--my-wide-array", "4",
		"--my-float64-array", "3.0",
		"--my-float64-array", "4.0",
	})
	require.NoError(t, err)

	assert.Equal(t, true, s.GetBool("my-bool"))
	assert.Equal(t, "0", s.GetString("my-string"))
	assert.Equal(t, int64(0), s.GetInt64("my-int64"))
	assert.Zero(t, s.GetWide("my-wide").Sign())
	assert.Equal(t, 0.0, s.GetFloat64("my-float64"))
	assert.Equal(t, []string{"3", "4"}, s.GetStrings("my-string-array"))
	assert.Equal(t, []int64{3, 4}, s.GetInt64s("my-int64-array"))
	assert.Equal(t, []float64{3, 4}, s.GetFloat64s("my-float64-array"))

	wides := s.GetWides("my-wide-array")
	require.Len(t, wides, 2)
	assert.Zero(t, wides[0].Cmp(big.NewInt(3)))
	assert.Zero(t, wides[1].Cmp(big.NewInt(4)))
}

// TestParseArgsShortForm tests -c value parsing through the shorthand index
func TestParseArgsShortForm(t *testing.T) {
	s := sampleSet()
	err := s.ParseArgs([]string{
		"-b", "-s", "0", "-i", "0", "-j", "0", "-f", "0.0",
		"-S", "3", "-S", "4", "-I", "3", "-I", "4",
		"-J", "3", "-J", "4", "-F", "3.0", "-F", "4.0",
	})
	require.NoError(t, err)

	assert.Equal(t, true, s.GetBool("my-bool"))
	assert.Equal(t, "0", s.GetString("my-string"))
	assert.Equal(t, int64(0), s.GetInt64("my-int64"))
	assert.Equal(t, []string{"3", "4"}, s.GetStrings("my-string-array"))
	assert.Equal(t, []int64{3, 4}, s.GetInt64s("my-int64-array"))
}

// TestParseArgsCluster tests clustered shorthand groups
func TestParseArgsCluster(t *testing.T) {
	t.Run("AllBooleans", func(t *testing.T) {
		s := NewFlagSet()
		s.Add(New("verbose", Bool(false)).WithShorthand('v'))
		s.Add(New("all", Bool(false)).WithShorthand('a'))
		s.Add(New("quiet", Bool(false)).WithShorthand('q'))

		require.NoError(t, s.ParseArgs([]string{"-vaq"}))
		assert.True(t, s.GetBool("verbose"))
		assert.True(t, s.GetBool("all"))
		assert.True(t, s.GetBool("quiet"))
	})

	// The first value-needing shorthand consumes the next whole token
	t.Run("ValueFlagStopsCluster", func(t *testing.T) {
		s := NewFlagSet()
		s.Add(New("verbose", Bool(false)).WithShorthand('v'))
		s.Add(New("output", String("")).WithShorthand('o'))

		require.NoError(t, s.ParseArgs([]string{"-vo", "out.txt"}))
		assert.True(t, s.GetBool("verbose"))
		assert.Equal(t, "out.txt", s.GetString("output"))
	})

	t.Run("UnknownShorthandInCluster", func(t *testing.T) {
		s := NewFlagSet()
		s.Add(New("verbose", Bool(false)).WithShorthand('v'))

		err := s.ParseArgs([]string{"-vz"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownFlag)
		assert.EqualError(t, err, "unknown flag: -z")
	})
}

// TestParseArgsPositionals tests positional capture, bare dash and the
// -- terminator
func TestParseArgsPositionals(t *testing.T) {
	t.Run("FreeTokens", func(t *testing.T) {
		s := sampleSet()
		require.NoError(t, s.ParseArgs([]string{"input.txt", "--my-bool", "more"}))
		assert.Equal(t, []string{"input.txt", "more"}, s.Positionals())
		assert.True(t, s.GetBool("my-bool"))
	})

	t.Run("BareDashIsStdinMarker", func(t *testing.T) {
		s := sampleSet()
		require.NoError(t, s.ParseArgs([]string{"-"}))
		assert.Equal(t, []string{"-"}, s.Positionals())
	})

	t.Run("TerminatorNeverExits", func(t *testing.T) {
		s := sampleSet()
		require.NoError(t, s.ParseArgs([]string{"a", "--", "--not-a-flag", "-f"}))
		assert.Equal(t, []string{"a", "--not-a-flag", "-f"}, s.Positionals())
		// -f was not parsed as a shorthand past the terminator
		assert.Equal(t, 1.0, s.GetFloat64("my-float64"))
	})
}

// TestParseArgsFaults tests unknown flags, bad values and truncated input
func TestParseArgsFaults(t *testing.T) {
	t.Run("UnknownLongFlag", func(t *testing.T) {
		s := sampleSet()
		err := s.ParseArgs([]string{"--nope"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownFlag)
		assert.EqualError(t, err, "unknown flag: --nope")
	})

	t.Run("UnknownShortFlag", func(t *testing.T) {
		s := sampleSet()
		err := s.ParseArgs([]string{"-c"})
		require.Error(t, err)
		assert.EqualError(t, err, "unknown flag: -c")
	})

	t.Run("MalformedValue", func(t *testing.T) {
		s := sampleSet()
		err := s.ParseArgs([]string{"--my-int64", "abc"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("InputEndsWhileAwaitingValue", func(t *testing.T) {
		s := sampleSet()
		err := s.ParseArgs([]string{"--my-int64"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingValue)
		assert.EqualError(t, err, "missing flag value: flag --my-int64 requires a value")
	})
}

// TestParseArgsScenario covers the host/port shorthand scenario
func TestParseArgsScenario(t *testing.T) {
	s := NewFlagSet()
	s.Add(New("host", String("")).WithShorthand('h'))
	s.Add(New("port", Int64(80)).WithShorthand('p'))

	require.NoError(t, s.ParseArgs([]string{"-h", "localhost", "-p", "3000"}))
	assert.Equal(t, "localhost", s.GetString("host"))
	assert.Equal(t, int64(3000), s.GetInt64("port"))
}

// TestParseArgsArrayReset verifies repeated occurrences replace the
// default instead of appending to it
func TestParseArgsArrayReset(t *testing.T) {
	s := NewFlagSet()
	s.Add(New("tag", Strings("default-a", "default-b")))

	require.NoError(t, s.ParseArgs([]string{"--tag", "v1", "--tag", "v2"}))
	assert.Equal(t, []string{"v1", "v2"}, s.GetStrings("tag"))
}

// TestParseArgsEmpty tests the zero-token input
func TestParseArgsEmpty(t *testing.T) {
	s := sampleSet()
	require.NoError(t, s.ParseArgs(nil))
	assert.Empty(t, s.Positionals())
	assert.Equal(t, "1", s.GetString("my-string"))
}
