package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// envBinding maps an environment variable onto a dotted config key.
type envBinding struct {
	Var string
	Key string
	// Fields splits the value on whitespace for list keys. Quoting is not supported.
	Fields bool
}

var envBindings = []envBinding{
	{Var: "WINDIFF_LEFT_ROOT", Key: "roots.left"},
	{Var: "WINDIFF_RIGHT_ROOT", Key: "roots.right"},
	{Var: "WINDIFF_VIEWER", Key: "viewer.path"},
	{Var: "WINDIFF_VIEWER_ARGS", Key: "viewer.args", Fields: true},
	{Var: "WINDIFF_MAX_OUTPUT_SIZE", Key: "viewer.max_output_size"},
}

// Environment abstracts environment lookups for testability
type Environment interface {
	LookupEnv(key string) (string, bool)
}

// OSEnvironment implements Environment using the process environment
type OSEnvironment struct{}

func (OSEnvironment) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Loader handles configuration loading with injected dependencies
type Loader struct {
	env Environment
}

// NewLoader creates a production Loader using the process environment
func NewLoader() *Loader {
	return &Loader{env: OSEnvironment{}}
}

// NewLoaderWithEnv creates a Loader with a custom environment (for testing)
func NewLoaderWithEnv(env Environment) *Loader {
	return &Loader{env: env}
}

// Load starts from DefaultConfig, overlays the WINDIFF_* environment variables and validates the result.
// Numeric values are parsed from their string form.
// Returns an error for unparsable values or validation failures.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	overrides := l.overrides()
	if len(overrides) == 0 {
		return cfg, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(overrides); err != nil {
		return nil, fmt.Errorf("invalid environment override: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// overrides builds a nested map from the variables that are set, keyed like the mapstructure tags.
func (l *Loader) overrides() map[string]any {
	out := map[string]any{}
	for _, b := range envBindings {
		raw, ok := l.env.LookupEnv(b.Var)
		if !ok {
			continue
		}

		var value any = raw
		if b.Fields {
			value = strings.Fields(raw)
		}

		section, field, _ := strings.Cut(b.Key, ".")
		m, ok := out[section].(map[string]any)
		if !ok {
			m = map[string]any{}
			out[section] = m
		}
		m[field] = value
	}
	return out
}

// Load is a convenience function using the default loader
func Load() (*Config, error) {
	return NewLoader().Load()
}
