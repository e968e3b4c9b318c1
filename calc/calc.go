package calc

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ardnew/scicalc/log"
)

// KeywordExport introduces the constant assignment form.
const KeywordExport = "export"

// Reserved lists the names that cannot be exported as constants.
var Reserved = []string{"sin", "cos", "tg", "ctg", KeywordExport, "help", "exit"}

// Result is the outcome of evaluating one line.
type Result struct {
	// Name is the constant stored by an export line, or empty for a plain
	// expression.
	Name  string
	Value float64
}

// Stored reports whether the result records an exported constant.
func (r Result) Stored() bool { return r.Name != "" }

// String renders the result as "Result = X" for an expression or
// "Variable: NAME, Value: X" for an export.
func (r Result) String() string {
	if r.Stored() {
		return "Variable: " + r.Name + ", Value: " + FormatValue(r.Value)
	}

	return "Result = " + FormatValue(r.Value)
}

// Option configures evaluation.
type Option func(*config)

type config struct {
	logger log.Logger
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func makeConfig(opts ...Option) config {
	var c config

	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// Evaluate runs one line through the pipeline.
//
// A line of the form "export NAME = EXPRESSION" evaluates EXPRESSION and
// stores the value in t under NAME, overwriting any previous value; the
// returned Result then carries NAME. Any other line is evaluated as an
// expression against the constants in t.
//
// Leading and trailing whitespace is ignored. The first error aborts the
// line and is returned unchanged; t is modified only on success.
func Evaluate(
	ctx context.Context,
	line string,
	t *Table,
	opts ...Option,
) (Result, error) {
	cfg := makeConfig(opts...)
	line = strings.TrimSpace(line)

	cfg.logger.TraceContext(ctx, "evaluate start", slog.String("line", line))

	name, expr, isExport, err := splitExport(line)
	if err != nil {
		return Result{}, err
	}

	if !isExport {
		v, err := cfg.compute(ctx, line, t)
		if err != nil {
			return Result{}, err
		}

		return Result{Value: v}, nil
	}

	if t == nil {
		return Result{}, ErrNoTable.At(name)
	}

	v, err := cfg.compute(ctx, expr, t)
	if err != nil {
		return Result{}, err
	}

	t.Store(name, v)

	cfg.logger.DebugContext(
		ctx,
		"constant stored",
		slog.String("name", name),
		slog.Float64("value", v),
	)

	return Result{Name: name, Value: v}, nil
}

// Compute evaluates a single expression against the constants in t.
func Compute(ctx context.Context, expr string, t *Table, opts ...Option) (float64, error) {
	cfg := makeConfig(opts...)

	return cfg.compute(ctx, expr, t)
}

// Postfix tokenizes and converts expr without evaluating it.
func Postfix(expr string, t *Table) ([]Token, error) {
	infix, err := Tokenize(expr, t)
	if err != nil {
		return nil, err
	}

	return ToPostfix(infix)
}

func (c config) compute(ctx context.Context, expr string, t *Table) (float64, error) {
	infix, err := Tokenize(expr, t)
	if err != nil {
		return 0, err
	}

	c.logger.TraceContext(ctx, "tokenized",
		slog.Any("infix", Strings(infix)),
	)

	postfix, err := ToPostfix(infix)
	if err != nil {
		return 0, err
	}

	c.logger.TraceContext(ctx, "converted",
		slog.Any("postfix", Strings(postfix)),
	)

	v, err := EvalPostfix(postfix)
	if err != nil {
		return 0, err
	}

	c.logger.TraceContext(ctx, "evaluated", slog.Float64("value", v))

	return v, nil
}

// splitExport recognizes "export NAME = EXPRESSION". It reports isExport
// false for any line that does not begin with the export keyword followed
// by whitespace.
func splitExport(line string) (name, expr string, isExport bool, err error) {
	rest, ok := strings.CutPrefix(line, KeywordExport)
	if !ok || rest == "" {
		return "", "", false, nil
	}

	if r, _ := utf8.DecodeRuneInString(rest); !unicode.IsSpace(r) {
		return "", "", false, nil
	}

	lhs, rhs, ok := strings.Cut(rest, "=")
	if !ok {
		return "", "", true, ErrExportForm.At(line)
	}

	name = strings.TrimSpace(lhs)

	if err := ValidateName(name); err != nil {
		return "", "", true, err
	}

	return name, rhs, true, nil
}

// ValidateName reports an error if name cannot be exported: it must be an
// identifier and must not be reserved.
func ValidateName(name string) error {
	if !IsIdentifier(name) || slices.Contains(Reserved, name) {
		return ErrInvalidName.At(name)
	}

	return nil
}
