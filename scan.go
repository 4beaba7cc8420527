package flagset

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the fully-merged flag values into the target struct or
// map. The target must be a non-nil pointer; struct fields are matched
// through the "flag" tag using the dash-cased flag names.
//
// Scan is intended to run once after Load, turning the flag set into a
// plain typed configuration struct for the rest of the application.
func (s *FlagSet) Scan(target any) error {
	data := make(map[string]any, len(s.flags))
	for name, f := range s.flags {
		data[name] = f.value.native()
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "flag",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(data); err != nil {
		return fmt.Errorf("failed to scan flag values: %w", err)
	}
	return nil
}
