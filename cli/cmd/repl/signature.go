package repl

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/scicalc/calc"
)

// signatures describes the parameter and behavior of each function.
var signatures = map[calc.Func]struct {
	param string
	about string
}{
	calc.FuncSin: {"θ°", "sine"},
	calc.FuncCos: {"θ°", "cosine"},
	calc.FuncTan: {"θ°", "tangent, undefined at 90° + k·180°"},
	calc.FuncCot: {"θ°", "cotangent, division by zero at k·180°"},
}

var (
	signatureStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	signatureNameStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("6")).
				Bold(true)
	currentParamStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("11")).
				Bold(true)
)

// functionCall represents a detected function call in the input.
type functionCall struct {
	name   string // function name immediately before the open paren
	open   int    // byte offset of the open paren
	inCall bool   // true if cursor is inside the argument
}

// detectFunctionCall reports the innermost function call whose argument
// contains the cursor. Grouping parentheses inside the argument do not end
// the call, so the cursor in "sin(2*(3" is still inside sin.
func detectFunctionCall(input string, cursor int) functionCall {
	if cursor > len(input) {
		cursor = len(input)
	}

	depth := 0

	for i := cursor; i > 0; {
		r, size := utf8.DecodeLastRuneInString(input[:i])
		i -= size

		switch r {
		case ')':
			depth++

		case '(':
			if depth > 0 {
				depth--

				continue
			}

			if name := nameBefore(input, i); name != "" {
				return functionCall{name: name, open: i, inCall: true}
			}
		}
	}

	return functionCall{}
}

// nameBefore returns the identifier ending at offset end, skipping spaces
// between it and end.
func nameBefore(input string, end int) string {
	end = len(strings.TrimRight(input[:end], " \t"))
	start := end

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	return input[start:end]
}

// getSignature returns the display signature of a function, like "sin(θ°)",
// with its parameter and description. It returns empty strings if name is
// not a function.
func getSignature(name string) (signature, param, about string) {
	fn, ok := calc.LookupFunc(name)
	if !ok {
		return "", "", ""
	}

	sig := signatures[fn]

	return fn.String() + "(" + sig.param + ")", sig.param, sig.about
}

// renderSignatureHint renders the function signature with its parameter
// highlighted, followed by a short description.
func renderSignatureHint(name string) string {
	signature, param, about := getSignature(name)
	if signature == "" {
		return ""
	}

	var b strings.Builder

	b.WriteString(signatureNameStyle.Render(name))
	b.WriteString(signatureStyle.Render("("))
	b.WriteString(currentParamStyle.Render(param))
	b.WriteString(signatureStyle.Render(")"))

	if about != "" {
		b.WriteString(signatureStyle.Render("  " + about))
	}

	return b.String()
}
