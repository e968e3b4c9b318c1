package calc

import (
	"log/slog"
	"math"

	"github.com/edwingeng/deque"
)

// EvalPostfix reduces postfix tokens to a single value.
func EvalPostfix(postfix []Token) (float64, error) {
	stack := deque.NewDeque() // float64 operands

	pop := func() float64 { return stack.PopBack().(float64) }

	for _, tok := range postfix {
		switch tok.Kind() {
		case TokenNumber:
			stack.PushBack(tok.Number())

		case TokenOperator:
			if stack.Len() < 2 {
				return 0, ErrInsufficientOperands.At(tok.String())
			}

			b := pop()
			a := pop()

			v, err := applyOp(tok.Op(), a, b)
			if err != nil {
				return 0, err
			}

			stack.PushBack(v)

		case TokenFunction:
			if stack.Empty() {
				return 0, ErrInsufficientOperands.At(tok.String())
			}

			v, err := applyFunc(tok.Func(), pop())
			if err != nil {
				return 0, err
			}

			stack.PushBack(v)

		default:
			return 0, ErrMalformedExpression.At(tok.String())
		}
	}

	if stack.Len() != 1 {
		return 0, ErrMalformedExpression.With(slog.Int("stack_depth", stack.Len()))
	}

	return pop(), nil
}

func applyOp(op Op, a, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSub:
		return a - b, nil
	case OpMul:
		return a * b, nil
	case OpDiv:
		if b == 0 {
			return 0, ErrDivisionByZero.At(FormatValue(a) + " / " + FormatValue(b))
		}

		return a / b, nil
	case OpPow:
		return math.Pow(a, b), nil
	default:
		return 0, ErrMalformedExpression.At(op.String())
	}
}

func applyFunc(fn Func, deg float64) (float64, error) {
	switch fn {
	case FuncSin:
		return math.Sin(radians(deg)), nil

	case FuncCos:
		return math.Cos(radians(deg)), nil

	case FuncTan:
		return tangent(deg)

	case FuncCot:
		t, err := tangent(deg)
		if err != nil {
			// tangent is undefined where cotangent is zero
			return 0, nil
		}

		if t == 0 {
			return 0, ErrDivisionByZero.At("ctg(" + FormatValue(deg) + ")")
		}

		return 1 / t, nil

	default:
		return 0, ErrMalformedExpression.At(fn.String())
	}
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// tangent returns the tangent of deg degrees. It is exactly zero at
// multiples of 180 and undefined at odd multiples of 90, where math.Tan of
// the rounded radian value would give a tiny or huge finite number.
func tangent(deg float64) (float64, error) {
	r := math.Mod(deg, 180)
	if r < 0 {
		r += 180
	}

	switch r {
	case 0:
		return 0, nil
	case 90:
		return 0, ErrUndefinedTangent.At("tg(" + FormatValue(deg) + ")")
	default:
		return math.Tan(radians(deg)), nil
	}
}
