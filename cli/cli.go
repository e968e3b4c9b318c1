package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/scicalc/cli/cmd"
	"github.com/ardnew/scicalc/pkg"
)

// CLI is the top-level command-line interface for scicalc.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit." short:"V"`

	Define []string `help:"Export constant NAME=EXPR before running (repeatable)." placeholder:"NAME=EXPR" sep:"none" short:"D"`
	Source []string `help:"Input source file(s) for eval or '-' for stdin."        name:"source"          short:"s"  type:"existingfile"`

	Repl cmd.Repl `cmd:"" default:"1"  help:"Start an interactive calculator session"`
	Eval cmd.Eval `cmd:""              help:"Evaluate expressions and export lines"`
	RPN  cmd.RPN  `cmd:"" name:"rpn"    help:"Print the postfix form of an expression"`
	Init cmd.Init `cmd:""              help:"Initialize configuration file"`
}

// Run executes the scicalc CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(baseConfig)

	vars := kong.Vars{
		"version":            pkg.Name + " " + pkg.Version(),
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  cacheDir(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position. TextUnmarshaler on logFormat/logLevel handles those flags
	// during normal parsing, but this early scan also catches boolean flags
	// like --log-pretty.
	cli.Log.scan(args)

	var groups []kong.Group

	for _, g := range []kong.Group{cli.Log.group(), cli.Pprof.group()} {
		if g.Key != "" {
			groups = append(groups, g)
		}
	}

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(groups),
		// The provider reads ctx when a command runs, after the values below
		// have been added to it.
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configPath(baseJSONConfig)),
		kong.Configuration(resolve(ctx, cmd.ConfigIdentifier), configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	defer cli.Log.start(ctx)()

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	table, err := cmd.NewTable(ctx, cli.Define)
	if err != nil {
		return err
	}

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithSourceFiles(ctx, cli.Source)
	ctx = cmd.WithTable(ctx, table)

	return ktx.Run(ctx, &cli)
}
