package calc

import (
	"errors"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"

	"github.com/expr-lang/expr"
)

// oracle evaluates src with expr-lang, which shares the arithmetic
// precedence rules for binary operators.
func oracle(t *testing.T, src string) float64 {
	t.Helper()

	out, err := expr.Eval(src, nil)
	if err != nil {
		t.Fatalf("expr.Eval(%q) error: %v", src, err)
	}

	switch v := out.(type) {
	case int:
		return float64(v)
	case float64:
		return v
	default:
		t.Fatalf("expr.Eval(%q) = %v (%T), want a number", src, out, out)

		return 0
	}
}

func TestEvaluate_MatchesOracle(t *testing.T) {
	fixed := []string{
		"3 + 5 * 2",
		"3 + 4 * (2 - 5)",
		"8 - 3 - 2",
		"100 / 10 / 5",
		"2 * (3 + 4) * 5",
		"1.5 * 4 - 0.25",
		"2 ^ 10",
		"(1 + 2) ^ 2 / 3",
		"7 / 2 * 2",
		"((((1))))",
	}

	for _, src := range fixed {
		t.Run(src, func(t *testing.T) {
			checkOracle(t, src)
		})
	}
}

func TestEvaluate_MatchesOracle_Generated(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for i := range 500 {
		src := genExpr(rng, 3)

		t.Run(strconv.Itoa(i), func(t *testing.T) {
			checkOracle(t, src)
		})
	}
}

func checkOracle(t *testing.T, src string) {
	t.Helper()

	res, err := Evaluate(t.Context(), src, nil)
	if errors.Is(err, ErrDivisionByZero) {
		// expr-lang returns ±Inf here
		return
	}

	if err != nil {
		t.Fatalf("Evaluate(%q) error: %v", src, err)
	}

	if want := oracle(t, src); !approx(res.Value, want) {
		t.Errorf("Evaluate(%q) = %v, expr-lang = %v", src, res.Value, want)
	}
}

// genExpr returns a random arithmetic expression over the digits 1 to 9
// with at most depth levels of nested binary operations.
func genExpr(rng *rand.Rand, depth int) string {
	if depth == 0 || rng.IntN(4) == 0 {
		return strconv.Itoa(1 + rng.IntN(9))
	}

	ops := []string{"+", "-", "*", "/"}
	lhs := genExpr(rng, depth-1)
	rhs := genExpr(rng, depth-1)

	var b strings.Builder

	if rng.IntN(2) == 0 {
		b.WriteString("(" + lhs + ")")
	} else {
		b.WriteString(lhs)
	}

	b.WriteString(" " + ops[rng.IntN(len(ops))] + " ")

	if rng.IntN(2) == 0 {
		b.WriteString("(" + rhs + ")")
	} else {
		b.WriteString(rhs)
	}

	return b.String()
}
