package cmd

import (
	"context"

	"github.com/ardnew/scicalc/cli/cmd/repl"
	"github.com/ardnew/scicalc/log"
)

// Repl starts an interactive calculator session.
type Repl struct {
	History bool `default:"true" help:"Persist input history in the cache directory." negatable:""`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	opts := []repl.Option{repl.WithLogger(log.Default())}

	if ktx := kongContextFrom(ctx); ktx != nil && r.History {
		opts = append(opts, repl.WithCacheDir(ktx.Model.Vars()[CacheIdentifier]))
	}

	return repl.Run(ctx, tableFrom(ctx), opts...)
}
