package calc

import (
	"errors"
	"slices"
	"testing"
)

func TestTokenize(t *testing.T) {
	table := NewTable()
	table.Store("x", 2)
	table.Store("rate_2", 0.5)

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"precedence", "3 + 4 * 2", []string{"3", "+", "4", "*", "2"}},
		{"no spaces", "3+4*2", []string{"3", "+", "4", "*", "2"}},
		{"decimal forms", ".5 + 5. + 1.25", []string{"0.5", "+", "5", "+", "1.25"}},
		{"leading minus folds", "-5 + 3", []string{"-5", "+", "3"}},
		{"minus after operator folds", "3 - -5", []string{"3", "-", "-5"}},
		{"minus with space folds", "3 - - 5", []string{"3", "-", "-5"}},
		{"minus after paren folds", "(-.5)", []string{"(", "-0.5", ")"}},
		{"function", "sin (30)", []string{"sin", "(", "30", ")"}},
		{"constants", "x * rate_2", []string{"2", "*", "0.5"}},
		{
			"negated group",
			"-(2+3)*2",
			[]string{"(", "0", "-", "(", "2", "+", "3", ")", ")", "*", "2"},
		},
		{"negated constant", "-x^2", []string{"(", "0", "-", "2", ")", "^", "2"}},
		{
			"negated call",
			"2^-sin(30)",
			[]string{"2", "^", "(", "0", "-", "sin", "(", "30", ")", ")"},
		},
		{
			"nested negation",
			"-(-(1))",
			[]string{"(", "0", "-", "(", "(", "0", "-", "(", "1", ")", ")", ")", ")"},
		},
		{"surrounding space", "  \t42\n", []string{"42"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.in, table)
			if err != nil {
				t.Fatalf("Tokenize(%q) error: %v", tt.in, err)
			}

			if got := Strings(tokens); !slices.Equal(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTokenize_Errors(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		want     error
		fragment string
	}{
		{"empty", "", ErrEmptyExpression, ""},
		{"blank", " \t ", ErrEmptyExpression, ""},
		{"unknown rune", "2 $ 3", ErrUnexpectedToken, "$"},
		{"function without paren", "sin 30", ErrExpectedParen, "sin"},
		{"function at end", "1 + cos", ErrExpectedParen, "cos"},
		{"unknown identifier", "2 * unknownVar", ErrUnknownIdentifier, "unknownVar"},
		{"case sensitive function", "Sin(30)", ErrUnknownIdentifier, "Sin"},
		{"double minus", "--5", ErrUnaryMinus, "--"},
		{"triple minus", "3---5", ErrUnaryMinus, "--"},
		{"minus plus", "-+5", ErrUnaryMinus, "-+"},
		{"lone minus", "-", ErrMissingOperand, "-"},
		{"two points", "1.2.3", ErrInvalidNumber, "1.2.3"},
		{"lone point", ".", ErrInvalidNumber, "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.in, nil)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Tokenize(%q) error = %v, want %v", tt.in, err, tt.want)
			}

			if !errors.Is(err, ErrSyntax) {
				t.Errorf("Tokenize(%q) error kind = %v, want syntax", tt.in, KindOf(err))
			}

			var e *Error
			if errors.As(err, &e) && e.Fragment() != tt.fragment {
				t.Errorf("fragment = %q, want %q", e.Fragment(), tt.fragment)
			}
		})
	}
}

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"pi", true},
		{"_tmp", true},
		{"x1", true},
		{"Ωmega", true},
		{"", false},
		{"1x", false},
		{"a-b", false},
		{"a b", false},
	}

	for _, tt := range tests {
		if got := IsIdentifier(tt.in); got != tt.want {
			t.Errorf("IsIdentifier(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
