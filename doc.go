// Package flagset provides strongly-typed application settings merged
// from three sources: config files (JSON, TOML or YAML), environment
// variables, and command-line arguments, applied in that fixed order so
// later sources override earlier ones.
//
// Features:
//   - Closed nine-variant value model: bool, string, int64, 128-bit wide
//     integer, float64, and the four corresponding array variants
//   - Single-character shorthand aliases with clustered short-form
//     parsing (-abc)
//   - Reset-then-append semantics for array flags: within one source the
//     first occurrence replaces the array, later occurrences accumulate
//   - Environment variable names derived from flag names
//     (max-size -> MAX_SIZE), with opt-in delimiter splitting for arrays
//   - Best-effort config files: missing or malformed files are logged as
//     warnings and never fail the load
//   - Struct scanning of the merged values via `flag:"..."` tags
//   - Line-wrapped usage text generation
//
// Quick start:
//
//	fs := flagset.NewFlagSet()
//	fs.Add(flagset.New("host", flagset.String("localhost")).
//		WithShorthand('h').
//		WithDescription("Address to bind"))
//	fs.Add(flagset.New("port", flagset.Int64(8080)).
//		WithShorthand('p'))
//	fs.AddConfigFile("config.json")
//
//	if err := fs.LoadOS(); err != nil {
//		log.Fatal(err)
//	}
//
//	host := fs.GetString("host")
//	port := fs.GetInt64("port")
//
// Precedence (lowest to highest): registered defaults, config files in
// registration order, environment variables, command-line arguments.
//
// Flag construction, duplicate registration and typed getters treat
// violations as programmer errors and panic; malformed user input from
// the environment or the command line is returned as a structured error
// from Load.
//
// A FlagSet is meant to be built and loaded once at process start and
// treated as read-only afterward; it provides no internal locking.
package flagset
