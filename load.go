package flagset

import (
	"os"
	"sort"
	"strings"
)

// Load merges settings from the three sources into the flag set's current
// values, in fixed order: config files, then the supplied environment
// mapping, then the argument list. Each phase can overwrite what the
// previous phase set; a flag untouched by a later phase keeps its earlier
// value.
//
// For array flags each phase carries its own touched set: the first value
// written to a flag within a phase replaces its current array entirely,
// every subsequent write in the same phase appends.
//
// Config file problems (missing, unreadable, malformed, unknown key, type
// mismatch) are logged as warnings and never interrupt the load. Parse or
// type faults in the environment and argument phases abort Load
// immediately and are returned to the caller.
func (s *FlagSet) Load(env map[string]string, args []string) error {
	// Phase 1: config files, best effort.
	s.loadConfigFiles(make(map[string]bool))

	// Phase 2: environment variables.
	if err := s.loadEnv(env, make(map[string]bool)); err != nil {
		return err
	}

	// Phase 3: command-line arguments.
	return s.parseArgs(args, make(map[string]bool))
}

// LoadOS is a convenience wrapper around Load using the process
// environment and os.Args[1:].
func (s *FlagSet) LoadOS() error {
	return s.Load(environMap(os.Environ()), os.Args[1:])
}

// loadEnv runs the environment phase. Scalar flags parse the raw value
// directly; array flags require an explicit delimiter and split the raw
// value into elements applied under the append rule. Array flags without
// a delimiter log a warning and keep their current value.
func (s *FlagSet) loadEnv(env map[string]string, touched map[string]bool) error {
	names := make([]string, 0, len(s.flags))
	for name := range s.flags {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		f := s.flags[name]
		raw, ok := env[f.EnvVarName()]
		if !ok {
			continue
		}

		if !f.value.kind.IsArray() {
			if err := f.setParsed(raw, touched); err != nil {
				return err
			}
			continue
		}

		if f.envDelimiter == "" {
			s.log.Warn().
				Str("flag", f.name).
				Str("env", f.EnvVarName()).
				Msg("array flag has no env delimiter configured, ignoring environment value")
			continue
		}
		for _, item := range strings.Split(raw, f.envDelimiter) {
			if err := f.setParsed(item, touched); err != nil {
				return err
			}
		}
	}
	return nil
}

// environMap converts os.Environ-style "KEY=value" pairs into a map.
func environMap(pairs []string) map[string]string {
	env := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		if i := strings.IndexByte(pair, '='); i >= 0 {
			env[pair[:i]] = pair[i+1:]
		}
	}
	return env
}
