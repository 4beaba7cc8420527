package flagset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// loadConfigFiles runs the first load phase: every registered config file,
// in registration order, best effort. The touched set is shared across all
// files within the phase so a second file's array value appends to the
// first file's instead of replacing it.
func (s *FlagSet) loadConfigFiles(touched map[string]bool) {
	for _, path := range s.configFiles {
		if err := s.loadConfigFile(path, touched); err != nil {
			s.log.Warn().Str("path", path).Err(err).Msg("skipping config file")
		}
	}
}

// loadConfigFile reads and applies one config file. Errors are returned to
// the caller, which downgrades them to warnings: config files are
// optional, unlike env vars and arguments which carry user intent.
func (s *FlagSet) loadConfigFile(path string, touched map[string]bool) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrConfigNotFound
		}
		return fmt.Errorf("failed to stat config file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
		if format == "" {
			return fmt.Errorf("unable to determine config format for %q", path)
		}
	}

	values := make(map[string]any)
	switch format {
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&values); err != nil {
			return fmt.Errorf("failed to parse JSON: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("failed to parse TOML: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	return s.applyFileValues(values, touched)
}

// applyFileValues matches a decoded top-level object against the
// registered flags. Keys must be known flag names and values must coerce
// strictly to the flag's kind. Keys are applied in sorted order so a
// failing file leaves a deterministic prefix applied.
func (s *FlagSet) applyFileValues(values map[string]any, touched map[string]bool) error {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		f, ok := s.flags[name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownProperty, name)
		}
		v, err := coerceValue(f.value.kind, values[name])
		if err != nil {
			return fmt.Errorf("property %q: %w", name, err)
		}
		f.setCoerced(v, touched)
	}
	return nil
}

// detectFileFormat determines format from file extension.
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".toml", ".tml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing. JSON is
// tried first as the strictest grammar; YAML is a superset of JSON so it
// comes after; TOML last.
func detectFormatFromContent(data []byte) string {
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	var yamlTest any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	var tomlTest any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	return ""
}
