package calc

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// scanner converts a line of text into infix tokens.
//
// A unary minus that cannot be folded into a numeric literal is rewritten
// as "( 0 - operand )". The synthetic closing parenthesis is owed until the
// operand completes; closes records the real parenthesis depth at which
// each one is due.
type scanner struct {
	src    string
	pos    int
	table  *Table
	out    []Token
	depth  int
	closes []int
}

// Tokenize scans line into infix tokens, replacing each constant name with
// a number token holding its value in t. A nil t has no constants.
func Tokenize(line string, t *Table) ([]Token, error) {
	if strings.TrimSpace(line) == "" {
		return nil, ErrEmptyExpression
	}

	s := scanner{src: line, table: t}

	for {
		s.skipSpace()

		if s.pos >= len(s.src) {
			return s.out, nil
		}

		if err := s.next(); err != nil {
			return nil, err
		}
	}
}

func (s *scanner) peek() (rune, int) {
	return utf8.DecodeRuneInString(s.src[s.pos:])
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.src) {
		r, size := s.peek()
		if !unicode.IsSpace(r) {
			return
		}

		s.pos += size
	}
}

// operandPos reports whether the next token must begin an operand: at the
// start of the expression, after '(' or after an operator.
func (s *scanner) operandPos() bool {
	if len(s.out) == 0 {
		return true
	}

	switch s.out[len(s.out)-1].Kind() {
	case TokenLeftParen, TokenOperator:
		return true
	default:
		return false
	}
}

func (s *scanner) next() error {
	r, size := s.peek()

	switch {
	case isDigit(r), r == '.':
		return s.scanNumber(s.pos, false)

	case r == '_', unicode.IsLetter(r):
		return s.scanIdent()

	case r == '(':
		s.pos += size
		s.out = append(s.out, LParen())
		s.depth++

	case r == ')':
		s.pos += size
		s.out = append(s.out, RParen())
		s.depth--
		s.settle()

	case r == '-' && s.operandPos():
		return s.scanUnaryMinus()

	case strings.ContainsRune(Operators, r):
		s.pos += size
		s.out = append(s.out, Oper(Op(r)))

	default:
		return ErrUnexpectedToken.At(string(r))
	}

	return nil
}

// settle emits the synthetic closing parentheses owed at the current depth.
func (s *scanner) settle() {
	for n := len(s.closes); n > 0 && s.closes[n-1] == s.depth; n = len(s.closes) {
		s.closes = s.closes[:n-1]
		s.out = append(s.out, RParen())
	}
}

func (s *scanner) scanUnaryMinus() error {
	start := s.pos
	s.pos++ // '-'

	s.skipSpace()

	if s.pos >= len(s.src) {
		return ErrMissingOperand.At(s.src[start:])
	}

	r, size := s.peek()

	switch {
	case isDigit(r), r == '.':
		return s.scanNumber(start, true)

	case r == '-', r == '+':
		return ErrUnaryMinus.At(s.src[start : s.pos+size])

	default:
		s.out = append(s.out, LParen(), Num(0), Oper(OpSub))
		s.closes = append(s.closes, s.depth)

		return nil
	}
}

// scanNumber scans a decimal literal. The fragment reported on error begins
// at start, which includes a folded unary minus.
func (s *scanner) scanNumber(start int, neg bool) error {
	digits := s.pos

	for s.pos < len(s.src) && (isDigit(rune(s.src[s.pos])) || s.src[s.pos] == '.') {
		s.pos++
	}

	v, err := strconv.ParseFloat(s.src[digits:s.pos], 64)
	if err != nil {
		return ErrInvalidNumber.At(s.src[start:s.pos]).Wrap(err)
	}

	if neg {
		v = -v
	}

	s.out = append(s.out, Num(v))
	s.settle()

	return nil
}

func (s *scanner) scanIdent() error {
	start := s.pos

	for s.pos < len(s.src) {
		r, size := s.peek()
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}

		s.pos += size
	}

	name := s.src[start:s.pos]

	if fn, ok := LookupFunc(name); ok {
		s.skipSpace()

		if s.pos >= len(s.src) || s.src[s.pos] != '(' {
			return ErrExpectedParen.At(name)
		}

		s.out = append(s.out, Call(fn))

		return nil
	}

	v, ok := s.table.Lookup(name)
	if !ok {
		return ErrUnknownIdentifier.At(name)
	}

	s.out = append(s.out, Num(v))
	s.settle()

	return nil
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

// IsIdentifier reports whether name is a syntactically valid constant name:
// a letter or underscore followed by letters, digits or underscores.
func IsIdentifier(name string) bool {
	if name == "" {
		return false
	}

	for i, r := range name {
		switch {
		case r == '_', unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}

	return true
}
