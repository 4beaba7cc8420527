package flagset

import "errors"

// Faults surfaced by [FlagSet.Load] and [FlagSet.ParseArgs]. Construction
// and lookup faults are programmer errors in wiring up the flag set and
// panic instead of returning an error value.
var (
	// ErrUnknownFlag indicates a --name or -c argument that matches no
	// registered flag or shorthand.
	ErrUnknownFlag = errors.New("unknown flag")
	// ErrUnknownProperty indicates a config file key that matches no
	// registered flag name.
	ErrUnknownProperty = errors.New("unknown property")
	// ErrTypeMismatch indicates a config file value whose shape does not
	// match the flag's kind.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrParse indicates textual input that could not be parsed into the
	// flag's kind.
	ErrParse = errors.New("parse failure")
	// ErrMissingValue indicates the argument list ended while a flag was
	// still awaiting its value.
	ErrMissingValue = errors.New("missing flag value")
	// ErrConfigNotFound indicates a registered config file path that does
	// not exist. It is reported as a warning during Load, never returned.
	ErrConfigNotFound = errors.New("config file not found")
)
