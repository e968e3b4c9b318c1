package repl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ardnew/scicalc/calc"
	"github.com/ardnew/scicalc/log"
)

// Commands recognized at the start of an input line. Anything else is an
// expression or an export line.
const (
	cmdHelp  = "help"
	cmdExit  = "exit"
	cmdQuit  = "quit"
	cmdVars  = "vars"
	cmdRPN   = "rpn"
	cmdClear = "clear"
)

var commands = []string{cmdHelp, cmdVars, cmdRPN, cmdClear, cmdExit, cmdQuit}

func helpMessage() string {
	return `
Scientific calculator:

  Operators   + - * / ^ ( )        ^ is right-associative, -x negates
  Functions   sin(θ°) cos(θ°) tg(θ°) ctg(θ°)    angles in degrees
  Constants   export NAME = EXPRESSION

Commands:

  help        Print this cruft
  vars        List exported constants
  rpn EXPR    Show EXPR in postfix (reverse Polish) order
  clear       Clear screen
  exit, quit  Exit REPL

Examples:

  3 + 5 * 2
  sin(45) ^ 2
  export PI = 3.1415
  2 * PI / 180

Press Tab to complete function, constant and command names.
Use Up/Down arrows for history. Press Ctrl+C on empty line or Ctrl+D to exit.
`
}

// reply is the outcome of one input line.
type reply struct {
	text  string
	err   error
	quit  bool
	clear bool
}

// session evaluates REPL input against one constant table.
type session struct {
	table  *calc.Table
	logger log.Logger
}

// execute runs one line of input, which is either a command or a line for
// [calc.Evaluate].
func (s *session) execute(ctx context.Context, input string) reply {
	input = strings.TrimSpace(input)
	if input == "" {
		return reply{}
	}

	name, args, _ := strings.Cut(input, " ")

	s.logger.TraceContext(ctx, "repl execute",
		slog.String("input", input),
		slog.String("word", name),
	)

	switch name {
	case cmdExit, cmdQuit:
		if args == "" {
			return reply{text: "Exiting...", quit: true}
		}

	case cmdHelp:
		if args == "" {
			return reply{text: helpMessage()}
		}

	case cmdClear:
		if args == "" {
			return reply{clear: true}
		}

	case cmdVars:
		if args == "" {
			return reply{text: s.listConstants()}
		}

	case cmdRPN:
		return s.postfix(args)
	}

	res, err := calc.Evaluate(ctx, input, s.table, calc.WithLogger(s.logger))
	if err != nil {
		s.logger.DebugContext(ctx, "repl eval failed", slog.Any("error", err))

		return reply{err: err}
	}

	return reply{text: res.String()}
}

func (s *session) postfix(expr string) reply {
	postfix, err := calc.Postfix(expr, s.table)
	if err != nil {
		return reply{err: err}
	}

	return reply{text: strings.Join(calc.Strings(postfix), " ")}
}

func (s *session) listConstants() string {
	if s.table.Len() == 0 {
		return "no constants (try: export NAME = EXPRESSION)"
	}

	var b strings.Builder

	for name, v := range s.table.All() {
		fmt.Fprintf(&b, "  %s = %s\n", name, calc.FormatValue(v))
	}

	return strings.TrimSuffix(b.String(), "\n")
}
