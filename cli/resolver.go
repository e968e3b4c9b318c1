package cli

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/scicalc/log"
)

// resolve returns a [kong.ConfigurationLoader] that reads flag values from
// a YAML document.
//
// Values may be given at the top level or nested under the key name, and
// flag names may use hyphens or underscores:
//
//	config:
//	  log-level: debug
//	  log_pretty: false
//	  define:
//	    - r = 2
//	    - area = 3.14159 * r ^ 2
//
// Command-line flags override config file values. A document that cannot
// be parsed is logged and ignored.
func resolve(ctx context.Context, name string) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}

		var doc map[string]any

		if err := yaml.UnmarshalContext(ctx, data, &doc); err != nil {
			log.WarnContext(ctx, "ignoring invalid configuration",
				slog.Any("error", err),
			)

			return config{}, nil
		}

		if nested, ok := doc[name].(map[string]any); ok {
			doc = nested
		}

		cfg := make(config, len(doc))
		for key, value := range doc {
			cfg[key] = normalize(value)
		}

		return cfg, nil
	}
}

// config implements [kong.Resolver] for YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	return nil, nil
}

// normalize converts YAML scalars to the forms kong decodes: numbers become
// strings, and sequences are normalized element-wise.
func normalize(value any) any {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = normalize(e)
		}

		return out
	default:
		return v
	}
}
