package flagset

import (
	"math/big"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func sampleSet() *FlagSet {
	s := NewFlagSet()
	s.SetLogger(zerolog.Nop())
	s.Add(New("my-bool", Bool(false)).WithShorthand('b'))
	s.Add(New("my-string", String("1")).WithShorthand('s'))
	s.Add(New("my-int64", Int64(1)).WithShorthand('i'))
	s.Add(New("my-wide", Wide(big.NewInt(1))).WithShorthand('j'))
	s.Add(New("my-float64", Float64(1)).WithShorthand('f'))
	s.Add(New("my-string-array", Strings("1", "2")).WithShorthand('S'))
	s.Add(New("my-int64-array", Int64s(1, 2)).WithShorthand('I'))
	s.Add(New("my-wide-array", Wides(big.NewInt(1), big.NewInt(2))).WithShorthand('J'))
	s.Add(New("my-float64-array", Float64s(1, 2)).WithShorthand('F'))
	return s
}

// TestAdd tests duplicate registration faults
func TestAdd(t *testing.T) {
	t.Run("DuplicateName", func(t *testing.T) {
		s := NewFlagSet()
		s.Add(New("dup", Bool(false)))
		assert.Panics(t, func() { s.Add(New("dup", Int64(0))) })
	})

	t.Run("DuplicateShorthand", func(t *testing.T) {
		s := NewFlagSet()
		s.Add(New("one", Bool(false)).WithShorthand('x'))
		assert.Panics(t, func() { s.Add(New("two", Bool(false)).WithShorthand('x')) })
	})

	t.Run("Lookup", func(t *testing.T) {
		s := sampleSet()
		f, ok := s.Lookup("my-bool")
		assert.True(t, ok)
		assert.Equal(t, "my-bool", f.Name())

		_, ok = s.Lookup("nope")
		assert.False(t, ok)
	})
}

// TestGetters tests typed reads of default values
func TestGetters(t *testing.T) {
	s := sampleSet()

	assert.Equal(t, false, s.GetBool("my-bool"))
	assert.Equal(t, "1", s.GetString("my-string"))
	assert.Equal(t, int64(1), s.GetInt64("my-int64"))
	assert.Zero(t, s.GetWide("my-wide").Cmp(big.NewInt(1)))
	assert.Equal(t, 1.0, s.GetFloat64("my-float64"))
	assert.Equal(t, []string{"1", "2"}, s.GetStrings("my-string-array"))
	assert.Equal(t, []int64{1, 2}, s.GetInt64s("my-int64-array"))
	assert.Equal(t, []float64{1, 2}, s.GetFloat64s("my-float64-array"))

	wides := s.GetWides("my-wide-array")
	assert.Len(t, wides, 2)
	assert.Zero(t, wides[0].Cmp(big.NewInt(1)))
	assert.Zero(t, wides[1].Cmp(big.NewInt(2)))
}

// TestGetterFaults tests lookup contract violations
func TestGetterFaults(t *testing.T) {
	s := sampleSet()

	t.Run("UnknownName", func(t *testing.T) {
		assert.Panics(t, func() { s.GetBool("never-registered") })
	})

	t.Run("KindMismatch", func(t *testing.T) {
		assert.Panics(t, func() { s.GetString("my-bool") })
		assert.Panics(t, func() { s.GetInt64("my-float64") })
		assert.Panics(t, func() { s.GetStrings("my-int64-array") })
	})
}

// TestGetterCopies verifies mutations of returned slices do not leak back
func TestGetterCopies(t *testing.T) {
	s := sampleSet()

	got := s.GetStrings("my-string-array")
	got[0] = "mutated"
	assert.Equal(t, []string{"1", "2"}, s.GetStrings("my-string-array"))

	w := s.GetWide("my-wide")
	w.SetInt64(99)
	assert.Zero(t, s.GetWide("my-wide").Cmp(big.NewInt(1)))
}
