package calc

//go:generate go tool stringer --linecomment --type TokenKind --output token_string.go

import (
	"strconv"
)

// TokenKind identifies the variant held by a [Token].
type TokenKind int

const (
	TokenNumber     TokenKind = iota + 1 // number
	TokenOperator                        // operator
	TokenFunction                        // function
	TokenLeftParen                       // (
	TokenRightParen                      // )
)

// Op is a binary arithmetic operator.
type Op byte

const (
	OpAdd Op = '+'
	OpSub Op = '-'
	OpMul Op = '*'
	OpDiv Op = '/'
	OpPow Op = '^'
)

// Operators contains the runes recognized as binary operators.
const Operators = "+-*/^"

// Assoc is the associativity of an operator.
type Assoc int

const (
	AssocLeft Assoc = iota
	AssocRight
)

// opInfo holds the precedence and associativity of each operator.
var opInfo = map[Op]struct {
	prec  int
	assoc Assoc
}{
	OpAdd: {1, AssocLeft},
	OpSub: {1, AssocLeft},
	OpMul: {2, AssocLeft},
	OpDiv: {2, AssocLeft},
	OpPow: {3, AssocRight},
}

// Precedence returns the binding strength of op. Higher binds tighter.
func (op Op) Precedence() int { return opInfo[op].prec }

// Assoc returns the associativity of op.
func (op Op) Assoc() Assoc { return opInfo[op].assoc }

// Valid reports whether op is one of the supported operators.
func (op Op) Valid() bool {
	_, ok := opInfo[op]

	return ok
}

func (op Op) String() string { return string(rune(op)) }

// Func is a trigonometric function taking an angle in degrees.
type Func int

const (
	FuncSin Func = iota + 1
	FuncCos
	FuncTan
	FuncCot
)

var funcNames = map[Func]string{
	FuncSin: "sin",
	FuncCos: "cos",
	FuncTan: "tg",
	FuncCot: "ctg",
}

var funcByName = map[string]Func{
	"sin": FuncSin,
	"cos": FuncCos,
	"tg":  FuncTan,
	"ctg": FuncCot,
}

// LookupFunc returns the function with the given name. Names are
// case-sensitive.
func LookupFunc(name string) (Func, bool) {
	fn, ok := funcByName[name]

	return fn, ok
}

// FuncNames returns the names of all functions in a fixed order.
func FuncNames() []string {
	return []string{"sin", "cos", "tg", "ctg"}
}

func (fn Func) String() string { return funcNames[fn] }

// Token is a single lexical element of an expression. The zero Token is
// invalid; construct tokens with [Num], [Oper], [Call], [LParen] and
// [RParen].
type Token struct {
	kind TokenKind
	num  float64
	op   Op
	fn   Func
}

// Num returns a number token.
func Num(v float64) Token { return Token{kind: TokenNumber, num: v} }

// Oper returns an operator token.
func Oper(op Op) Token { return Token{kind: TokenOperator, op: op} }

// Call returns a function token.
func Call(fn Func) Token { return Token{kind: TokenFunction, fn: fn} }

// LParen returns a left parenthesis token.
func LParen() Token { return Token{kind: TokenLeftParen} }

// RParen returns a right parenthesis token.
func RParen() Token { return Token{kind: TokenRightParen} }

// Kind returns the variant of t.
func (t Token) Kind() TokenKind { return t.kind }

// Number returns the value of a number token.
func (t Token) Number() float64 { return t.num }

// Op returns the operator of an operator token.
func (t Token) Op() Op { return t.op }

// Func returns the function of a function token.
func (t Token) Func() Func { return t.fn }

// String renders the token as it would appear in an expression.
func (t Token) String() string {
	switch t.kind {
	case TokenNumber:
		return FormatValue(t.num)
	case TokenOperator:
		return t.op.String()
	case TokenFunction:
		return t.fn.String()
	case TokenLeftParen:
		return "("
	case TokenRightParen:
		return ")"
	default:
		return "<invalid>"
	}
}

// FormatValue renders v in the shortest decimal form that round-trips,
// without an exponent.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Strings renders each token with [Token.String].
func Strings(tokens []Token) []string {
	s := make([]string, len(tokens))
	for i, t := range tokens {
		s[i] = t.String()
	}

	return s
}
