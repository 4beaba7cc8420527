package flagset

import (
	"fmt"
	"strings"
)

// Argument parser states. The parser walks the token list once; a bare
// "--" token switches to positional-only mode for the rest of the input.
type parseState int

const (
	stateScanning parseState = iota
	stateAwaitingValue
	statePositionalOnly
)

// ParseArgs consumes an ordered argument list (excluding the program
// name) and mutates the flag set's current values.
//
// Grammar: "--name value", "--bool-name" (no value consumed), "-c value",
// clustered "-abc" (booleans in the cluster are all set true, the first
// value-needing shorthand consumes the next whole token), bare "-" is a
// positional (conventional stdin marker), "--" makes every remaining
// token positional, and anything else is a positional. Unknown long or
// short names are a parse fault.
//
// Flags occurring multiple times accumulate for array kinds and overwrite
// for scalar kinds. An input ending while a flag still awaits its value
// returns ErrMissingValue.
func (s *FlagSet) ParseArgs(args []string) error {
	return s.parseArgs(args, make(map[string]bool))
}

func (s *FlagSet) parseArgs(args []string, touched map[string]bool) error {
	state := stateScanning
	var awaiting string

	for _, arg := range args {
		switch state {
		case statePositionalOnly:
			s.positionals = append(s.positionals, arg)

		case stateAwaitingValue:
			f, ok := s.flags[awaiting]
			if !ok {
				panic(fmt.Sprintf("flagset: awaiting value for unregistered flag %q", awaiting))
			}
			if err := f.setParsed(arg, touched); err != nil {
				return err
			}
			state = stateScanning

		case stateScanning:
			switch {
			case arg == "-":
				// Conventional stdin marker, treated as a positional.
				s.positionals = append(s.positionals, arg)

			case arg == "--":
				state = statePositionalOnly

			case strings.HasPrefix(arg, "--"):
				name := arg[2:]
				f, ok := s.flags[name]
				if !ok {
					return fmt.Errorf("%w: --%s", ErrUnknownFlag, name)
				}
				if f.value.kind == KindBool {
					f.setTrue()
				} else {
					awaiting = name
					state = stateAwaitingValue
				}

			case strings.HasPrefix(arg, "-"):
				for i := 1; i < len(arg); i++ {
					c := arg[i]
					name, ok := s.shorthands[c]
					if !ok {
						return fmt.Errorf("%w: -%c", ErrUnknownFlag, c)
					}
					f, ok := s.flags[name]
					if !ok {
						// The shorthand index never implies ownership;
						// resolve through the name table and fail loudly
						// if the two ever disagree.
						panic(fmt.Sprintf("flagset: shorthand -%c refers to unregistered flag %q", c, name))
					}
					if f.value.kind == KindBool {
						f.setTrue()
						continue
					}
					// Clustering stops at the first value-needing flag;
					// it consumes the next whole token as its value.
					awaiting = name
					state = stateAwaitingValue
					break
				}

			default:
				s.positionals = append(s.positionals, arg)
			}
		}
	}

	if state == stateAwaitingValue {
		return fmt.Errorf("%w: flag --%s requires a value", ErrMissingValue, awaiting)
	}
	return nil
}
