package flagset

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// FlagSet owns a collection of flags and their current values, keyed by
// name and by shorthand, plus the ordered list of config file paths and
// the positional arguments captured during parsing.
//
// A FlagSet is built once at startup, loaded once, and treated as
// read-only afterward. It provides no internal locking.
type FlagSet struct {
	flags       map[string]*Flag
	shorthands  map[byte]string // weak index: shorthand -> flag name
	configFiles []string
	positionals []string
	log         zerolog.Logger
}

// NewFlagSet creates an empty flag set. Warnings for best-effort phases
// (config files, home directory resolution, env arrays without a
// delimiter) are logged to stderr; use SetLogger to redirect them.
func NewFlagSet() *FlagSet {
	return &FlagSet{
		flags:      make(map[string]*Flag),
		shorthands: make(map[byte]string),
		log:        zerolog.New(os.Stderr).With().Timestamp().Logger(),
	}
}

// SetLogger replaces the logger used for load warnings.
func (s *FlagSet) SetLogger(l zerolog.Logger) {
	s.log = l
}

// Add registers a flag. Duplicate names or shorthands are programmer
// errors caught immediately with a panic.
func (s *FlagSet) Add(f *Flag) {
	if _, exists := s.flags[f.name]; exists {
		panic(fmt.Sprintf("flagset: flag %q already registered", f.name))
	}
	if c, ok := f.Shorthand(); ok {
		if existing, dup := s.shorthands[c]; dup {
			panic(fmt.Sprintf("flagset: shorthand -%c of flag %q already used by flag %q", c, f.name, existing))
		}
		s.shorthands[c] = f.name
	}
	s.flags[f.name] = f
}

// Lookup returns the flag registered under name, if any.
func (s *FlagSet) Lookup(name string) (*Flag, bool) {
	f, ok := s.flags[name]
	return f, ok
}

// AddConfigFile registers a config file path. Files are loaded in
// registration order; later files override earlier ones.
func (s *FlagSet) AddConfigFile(path string) {
	s.configFiles = append(s.configFiles, path)
}

// AddHomeConfigFile registers a config file path relative to the user's
// home directory. When the home directory cannot be resolved a warning is
// logged and the path is not registered.
func (s *FlagSet) AddHomeConfigFile(rel string) {
	home, err := os.UserHomeDir()
	if err != nil {
		s.log.Warn().Err(err).Msg("could not locate user home directory")
		return
	}
	s.AddConfigFile(filepath.Join(home, rel))
}

// Positionals returns the arguments that were not consumed as flag names
// or flag values, in the order encountered.
func (s *FlagSet) Positionals() []string {
	return append([]string(nil), s.positionals...)
}

// mustLookup returns the flag registered under name or panics. Querying
// an unregistered name through a getter is a caller contract violation,
// not a user-facing error.
func (s *FlagSet) mustLookup(name string, kind Kind) *Flag {
	f, ok := s.flags[name]
	if !ok {
		panic(fmt.Sprintf("flagset: flag %q is not registered", name))
	}
	if f.value.kind != kind {
		panic(fmt.Sprintf("flagset: flag %q is of kind %s, not %s", name, f.value.kind, kind))
	}
	return f
}

// GetBool returns the current value of a Bool flag.
func (s *FlagSet) GetBool(name string) bool {
	return s.mustLookup(name, KindBool).value.data.(bool)
}

// GetString returns the current value of a String flag.
func (s *FlagSet) GetString(name string) string {
	return s.mustLookup(name, KindString).value.data.(string)
}

// GetInt64 returns the current value of an Int64 flag.
func (s *FlagSet) GetInt64(name string) int64 {
	return s.mustLookup(name, KindInt64).value.data.(int64)
}

// GetWide returns a copy of the current value of a Wide flag.
func (s *FlagSet) GetWide(name string) *big.Int {
	return new(big.Int).Set(s.mustLookup(name, KindWide).value.data.(*big.Int))
}

// GetFloat64 returns the current value of a Float64 flag.
func (s *FlagSet) GetFloat64(name string) float64 {
	return s.mustLookup(name, KindFloat64).value.data.(float64)
}

// GetStrings returns a copy of the current value of a Strings flag.
func (s *FlagSet) GetStrings(name string) []string {
	return append([]string(nil), s.mustLookup(name, KindStrings).value.data.([]string)...)
}

// GetInt64s returns a copy of the current value of an Int64s flag.
func (s *FlagSet) GetInt64s(name string) []int64 {
	return append([]int64(nil), s.mustLookup(name, KindInt64s).value.data.([]int64)...)
}

// GetWides returns a copy of the current value of a Wides flag.
func (s *FlagSet) GetWides(name string) []*big.Int {
	src := s.mustLookup(name, KindWides).value.data.([]*big.Int)
	out := make([]*big.Int, len(src))
	for i, e := range src {
		out[i] = new(big.Int).Set(e)
	}
	return out
}

// GetFloat64s returns a copy of the current value of a Float64s flag.
func (s *FlagSet) GetFloat64s(name string) []float64 {
	return append([]float64(nil), s.mustLookup(name, KindFloat64s).value.data.([]float64)...)
}
