package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ardnew/scicalc/calc"
	"github.com/ardnew/scicalc/log"
)

// RPN prints the postfix (reverse Polish) form of an infix expression
// without evaluating it.
type RPN struct {
	Expr   []string `arg:"" help:"Infix expression, joined with spaces" name:"expr"`
	Format string   `       help:"Output format (${enum})"                            default:"text" enum:"text,json,yaml" short:"o"`
}

type rpnReport struct {
	Expression string   `json:"expression" yaml:"expression"`
	Postfix    []string `json:"postfix"    yaml:"postfix"`
}

// Run executes the rpn command.
func (r *RPN) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	return r.run(ctx, tableFrom(ctx), os.Stdout)
}

func (r *RPN) run(ctx context.Context, t *calc.Table, out io.Writer) error {
	expr := strings.TrimSpace(strings.Join(r.Expr, " "))
	if expr == "" {
		return ErrNoExpression
	}

	postfix, err := calc.Postfix(expr, t)
	if err != nil {
		return err
	}

	report := rpnReport{Expression: expr, Postfix: calc.Strings(postfix)}

	log.DebugContext(ctx, "converted to postfix",
		slog.String("expression", expr),
		slog.Int("tokens", len(postfix)),
	)

	return write(ctx, out, r.Format, report, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, strings.Join(report.Postfix, " "))

		return err
	})
}
