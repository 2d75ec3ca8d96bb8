package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// YAMLConfig is a kong.ConfigurationLoader reading flag values from a YAML
// mapping. Keys match flag names with either dashes or underscores.
// Flags given on the command line take precedence.
func YAMLConfig(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	values := map[string]any{}
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("invalid config: %w", err)
		}
	}

	var f kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		for _, key := range []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")} {
			if raw, ok := values[key]; ok {
				return configValue(raw), nil
			}
		}
		return nil, nil
	}
	return f, nil
}

// configValue renders scalars as strings so kong's mappers parse them like
// command-line input.
func configValue(raw any) any {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
