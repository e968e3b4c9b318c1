package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ardnew/scicalc/calc"
	"github.com/ardnew/scicalc/log"
)

// commentPrefix starts a line that eval skips.
const commentPrefix = "#"

// Eval evaluates expressions and export lines in batch.
//
// Each argument is one line. Without arguments, lines are read from the
// --source files, or from stdin when no source is given. All lines share one
// constant table, so an export is visible to every later line.
type Eval struct {
	Expr   []string `arg:"" help:"Expressions or export lines to evaluate" name:"expr" optional:""`
	Vars   bool     `       help:"Print the constant table after evaluation"`
	Bare   bool     `       help:"Print values without the result label"`
	Format string   `       help:"Output format (${enum})"                                       default:"text" enum:"text,json,yaml" short:"o"`
}

// evalRecord is the structured form of one evaluated line.
type evalRecord struct {
	Line  int     `json:"line"            yaml:"line"`
	Input string  `json:"input"           yaml:"input"`
	Name  string  `json:"name,omitempty"  yaml:"name,omitempty"`
	Value *number `json:"value,omitempty" yaml:"value,omitempty"`
	Error string  `json:"error,omitempty" yaml:"error,omitempty"`
}

type evalReport struct {
	Results   []evalRecord      `json:"results"             yaml:"results"`
	Constants map[string]number `json:"constants,omitempty" yaml:"constants,omitempty"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	var in io.Reader = os.Stdin

	switch src := sourceFilesFrom(ctx); {
	case len(e.Expr) > 0:
		in = strings.NewReader(strings.Join(e.Expr, "\n"))

	case src != nil:
		defer src.Close()

		in = src
	}

	return e.run(ctx, tableFrom(ctx), in, os.Stdout, os.Stderr)
}

// run evaluates each line of in against t. Results go to out; in text format
// errors go to errOut, prefixed with their line number, and evaluation
// continues with the next line.
func (e *Eval) run(
	ctx context.Context,
	t *calc.Table,
	in io.Reader,
	out, errOut io.Writer,
) error {
	var (
		report  evalReport
		lineNo  int
		failed  int
		text    = e.Format == FormatText || e.Format == ""
		options = []calc.Option{calc.WithLogger(log.Default())}
	)

	scan := bufio.NewScanner(in)

	for scan.Scan() {
		lineNo++

		line := strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		rec := evalRecord{Line: lineNo, Input: line}

		res, err := calc.Evaluate(ctx, line, t, options...)
		if err != nil {
			failed++

			rec.Error = err.Error()

			log.DebugContext(ctx, "line failed",
				slog.Int("line", lineNo),
				slog.Any("error", err),
			)

			if text {
				if _, err := fmt.Fprintf(errOut, "line %d: %v\n", lineNo, err); err != nil {
					return ErrWriteOutput.Wrap(err)
				}
			}
		} else {
			v := number(res.Value)
			rec.Name, rec.Value = res.Name, &v

			if text {
				if _, err := fmt.Fprintln(out, e.render(res)); err != nil {
					return ErrWriteOutput.Wrap(err)
				}
			}
		}

		report.Results = append(report.Results, rec)
	}

	if err := scan.Err(); err != nil {
		return ErrReadInput.Wrap(err)
	}

	if e.Vars {
		report.Constants = constants(t)
	}

	err := write(ctx, out, e.Format, report, func(w io.Writer) error {
		if !e.Vars {
			return nil
		}

		return writeConstants(w, t)
	})
	if err != nil {
		return err
	}

	if failed > 0 {
		return ErrEvalFailed.With(
			slog.Int("failed", failed),
			slog.Int("lines", len(report.Results)),
		)
	}

	return nil
}

func (e *Eval) render(res calc.Result) string {
	if e.Bare {
		return calc.FormatValue(res.Value)
	}

	return res.String()
}
