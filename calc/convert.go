package calc

import (
	"github.com/edwingeng/deque"
)

// ToPostfix reorders infix tokens into postfix order with the shunting yard
// algorithm.
//
// Besides unbalanced parentheses, it rejects tokens out of place: an
// operator without a left operand, two operands in a row, empty
// parentheses and a function not followed by '('.
func ToPostfix(infix []Token) ([]Token, error) {
	if len(infix) == 0 {
		return nil, ErrEmptyExpression
	}

	out := make([]Token, 0, len(infix))
	ops := deque.NewDeque() // Operator, Function and LeftParen tokens

	var (
		expectOperand = true
		afterFunc     bool
		last          Token
	)

	for _, tok := range infix {
		if afterFunc && tok.Kind() != TokenLeftParen {
			return nil, ErrExpectedParen.At(last.String())
		}

		afterFunc = false

		switch tok.Kind() {
		case TokenNumber:
			if !expectOperand {
				return nil, ErrMissingOperator.At(last.String() + " " + tok.String())
			}

			out = append(out, tok)
			expectOperand = false

		case TokenFunction:
			if !expectOperand {
				return nil, ErrMissingOperator.At(last.String() + " " + tok.String())
			}

			ops.PushBack(tok)

			afterFunc = true

		case TokenLeftParen:
			if !expectOperand {
				return nil, ErrMissingOperator.At(last.String() + " (")
			}

			ops.PushBack(tok)

		case TokenRightParen:
			if expectOperand {
				return nil, ErrMissingOperand.At(last.String() + ")")
			}

			if !popToParen(ops, &out) {
				return nil, ErrMismatchedParens.At(")")
			}

			if !ops.Empty() && ops.Back().(Token).Kind() == TokenFunction {
				out = append(out, ops.PopBack().(Token))
			}

		case TokenOperator:
			if expectOperand {
				return nil, ErrMisplacedOperator.At(tok.String())
			}

			for !ops.Empty() {
				top := ops.Back().(Token)
				if top.Kind() != TokenOperator || !yields(top.Op(), tok.Op()) {
					break
				}

				out = append(out, ops.PopBack().(Token))
			}

			ops.PushBack(tok)

			expectOperand = true

		default:
			return nil, ErrUnexpectedToken.At(tok.String())
		}

		last = tok
	}

	if afterFunc {
		return nil, ErrExpectedParen.At(last.String())
	}

	if expectOperand {
		return nil, ErrMissingOperand.At(last.String())
	}

	for !ops.Empty() {
		top := ops.PopBack().(Token)
		if top.Kind() == TokenLeftParen {
			return nil, ErrMismatchedParens.At("(")
		}

		out = append(out, top)
	}

	return out, nil
}

// popToParen moves operators to out until a left parenthesis is popped and
// discarded. It reports false if the stack empties first.
func popToParen(ops deque.Deque, out *[]Token) bool {
	for !ops.Empty() {
		top := ops.PopBack().(Token)
		if top.Kind() == TokenLeftParen {
			return true
		}

		*out = append(*out, top)
	}

	return false
}

// yields reports whether top, already on the stack, must be output before
// op is pushed. A right-associative op only yields to strictly higher
// precedence, so "2^3^2" groups as 2^(3^2).
func yields(top, op Op) bool {
	switch {
	case top.Precedence() > op.Precedence():
		return true
	case top.Precedence() == op.Precedence():
		return op.Assoc() == AssocLeft
	default:
		return false
	}
}
