package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"slices"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/scicalc/calc"
)

func TestRPN(t *testing.T) {
	table := calc.NewTable()
	table.Store("r", 2)

	tests := []struct {
		name string
		expr []string
		want string
	}{
		{"precedence", []string{"3 + 4 * 2"}, "3 4 2 * +\n"},
		{"joined_args", []string{"(3", "+", "4)", "*", "2"}, "3 4 + 2 *\n"},
		{"right_assoc", []string{"2^3^2"}, "2 3 2 ^ ^\n"},
		{"function", []string{"sin(30) + 1"}, "30 sin 1 +\n"},
		{"constant", []string{"2 * r"}, "2 2 *\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			r := RPN{Expr: tt.expr, Format: FormatText}
			if err := r.run(t.Context(), table, &out); err != nil {
				t.Fatalf("run(%q) unexpected error: %v", tt.expr, err)
			}

			if got := out.String(); got != tt.want {
				t.Errorf("run(%q) = %q, want %q", tt.expr, got, tt.want)
			}
		})
	}
}

func TestRPN_Structured(t *testing.T) {
	want := rpnReport{Expression: "1 + 2 * 3", Postfix: []string{"1", "2", "3", "*", "+"}}

	for _, format := range []string{FormatJSON, FormatYAML} {
		t.Run(format, func(t *testing.T) {
			var out bytes.Buffer

			r := RPN{Expr: []string{want.Expression}, Format: format}
			if err := r.run(t.Context(), calc.NewTable(), &out); err != nil {
				t.Fatalf("run() unexpected error: %v", err)
			}

			var got rpnReport

			var err error
			if format == FormatJSON {
				err = json.Unmarshal(out.Bytes(), &got)
			} else {
				err = yaml.Unmarshal(out.Bytes(), &got)
			}

			if err != nil {
				t.Fatalf("decode %s: %v\n%s", format, err, out.String())
			}

			if got.Expression != want.Expression || !slices.Equal(got.Postfix, want.Postfix) {
				t.Errorf("report = %+v, want %+v", got, want)
			}
		})
	}
}

func TestRPN_Errors(t *testing.T) {
	tests := []struct {
		name string
		rpn  RPN
		want error
	}{
		{"empty", RPN{Expr: []string{"  "}}, ErrNoExpression},
		{"mismatched", RPN{Expr: []string{"(1 + 2"}}, calc.ErrMismatchedParens},
		{"unknown", RPN{Expr: []string{"x + 1"}}, calc.ErrUnknownIdentifier},
		{"format", RPN{Expr: []string{"1"}, Format: "xml"}, ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			if err := tt.rpn.run(t.Context(), calc.NewTable(), &out); !errors.Is(err, tt.want) {
				t.Errorf("run() error = %v, want %v", err, tt.want)
			}
		})
	}
}
