// Package cli contains the command line interface for scicalc.
//
// # Usage
//
// Without a command, scicalc starts an interactive session:
//
//	scicalc
//	➜ export r = 2
//	Variable: r, Value: 2
//	➜ 2 * r ^ 2
//	Result = 8
//
// The eval command evaluates its arguments, or each line of the --source
// files or stdin, sharing one constant table:
//
//	scicalc -D r=2 eval '2 * r ^ 2' 'sin(30)'
//	echo 'tg(45)' | scicalc eval --bare
//
// The rpn command prints the postfix form of an expression:
//
//	scicalc rpn '3 + 4 * 2'
//	scicalc rpn --format yaml '(1 + 2) ^ 3'
//
// # Configuration
//
// Flag values are read from $XDG_CONFIG_HOME/scicalc/config.yaml, either at
// the top level or nested under a config key, and from config.json in the
// same directory. The init command writes the current flag values to the
// YAML file:
//
//	scicalc --log-level=debug -D 'g=9.81' init
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp layout (RFC3339, Kitchen, none, ...)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize text output
//
// At trace level, every evaluated line logs its infix tokens, postfix
// sequence and value.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o scicalc .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/scicalc/pprof)
package cli
