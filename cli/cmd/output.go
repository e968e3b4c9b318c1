package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/scicalc/calc"
)

// Output formats accepted by the --format flag.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// outputIndent is the number of spaces used to indent structured output.
const outputIndent = 2

// number is a float64 whose JSON form survives non-finite values, which
// encoding/json rejects. YAML encodes them natively as .inf and .nan.
type number float64

// MarshalJSON encodes finite values as JSON numbers in shortest decimal form
// and non-finite values as the strings "+Inf", "-Inf" and "NaN".
func (n number) MarshalJSON() ([]byte, error) {
	v := float64(n)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return json.Marshal(calc.FormatValue(v))
	}

	return []byte(calc.FormatValue(v)), nil
}

// write encodes v to w in the named format. The text format is delegated to
// text, which renders the human-readable form.
func write(
	ctx context.Context,
	w io.Writer,
	format string,
	v any,
	text func(io.Writer) error,
) error {
	switch format {
	case FormatText, "":
		if err := text(w); err != nil {
			return ErrWriteOutput.Wrap(err)
		}

		return nil

	case FormatJSON:
		data, err := json.MarshalIndent(v, "", strings.Repeat(" ", outputIndent))
		if err != nil {
			return ErrJSONMarshal.Wrap(err)
		}

		if _, err := fmt.Fprintln(w, string(data)); err != nil {
			return ErrWriteOutput.Wrap(err)
		}

		return nil

	case FormatYAML:
		data, err := yaml.MarshalContext(ctx, v, yaml.Indent(outputIndent))
		if err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}

		if _, err := fmt.Fprint(w, string(data)); err != nil {
			return ErrWriteOutput.Wrap(err)
		}

		return nil

	default:
		return ErrUnknownFormat.With(slog.String("format", format))
	}
}

// constants returns the table contents in a form both encoders accept.
func constants(t *calc.Table) map[string]number {
	m := make(map[string]number, t.Len())
	for name, v := range t.All() {
		m[name] = number(v)
	}

	return m
}

// writeConstants renders the table as one "NAME = X" line per constant.
func writeConstants(w io.Writer, t *calc.Table) error {
	for name, v := range t.All() {
		if _, err := fmt.Fprintf(w, "%s = %s\n", name, calc.FormatValue(v)); err != nil {
			return err
		}
	}

	return nil
}
