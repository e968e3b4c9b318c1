package repl

import (
	"strings"
	"testing"
)

func TestDetectFunctionCall(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		cursor     int
		wantName   string
		wantInCall bool
	}{
		{"no_call", "radius", 6, "", false},
		{"open", "sin(", 4, "sin", true},
		{"with_arg", "cos(30", 6, "cos", true},
		{"closed", "tg(45)", 6, "", false},
		{"cursor_inside_closed", "tg(45)", 5, "tg", true},
		{"nested_inner", "sin(cos(", 8, "cos", true},
		{"nested_after_inner", "sin(cos(60) + ", 14, "sin", true},
		{"grouping_paren", "2 * (3", 6, "", false},
		{"grouping_inside_call", "ctg(2*(3", 8, "ctg", true},
		{"space_before_paren", "sin (", 5, "sin", true},
		{"unknown_function", "foo(", 4, "foo", true},
		{"cursor_before_call", "sin(30)", 2, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectFunctionCall(tt.input, tt.cursor)

			if got.inCall != tt.wantInCall || got.name != tt.wantName {
				t.Errorf("detectFunctionCall(%q, %d) = {%q, %v}, want {%q, %v}",
					tt.input, tt.cursor, got.name, got.inCall, tt.wantName, tt.wantInCall)
			}
		})
	}
}

func TestGetSignature(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"sin", "sin(θ°)"},
		{"cos", "cos(θ°)"},
		{"tg", "tg(θ°)"},
		{"ctg", "ctg(θ°)"},
		{"tan", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, _ := getSignature(tt.name)
			if got != tt.want {
				t.Errorf("getSignature(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestRenderSignatureHint(t *testing.T) {
	hint := renderSignatureHint("tg")
	if !strings.Contains(hint, "θ°") || !strings.Contains(hint, "tangent") {
		t.Errorf("renderSignatureHint(tg) = %q, want parameter and description", hint)
	}

	if hint := renderSignatureHint("foo"); hint != "" {
		t.Errorf("renderSignatureHint(foo) = %q, want empty", hint)
	}
}
