package cmd

import (
	"context"
	"flag"

	"github.com/etnz/dce/renderer"
	"github.com/google/subcommands"
)

type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display the account name and balances" }
func (*balanceCmd) Usage() string {
	return `dce balance

  Logs in and displays the registered name, the principal, and the orange
  and green balances of the account.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {}

func (c *balanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	coord, log, err := openSession(ctx)
	if err != nil {
		return fail(err)
	}
	defer log.Sync()

	if err := coord.Refresh(ctx); err != nil {
		return fail(err)
	}
	printMarkdown(renderer.AccountMarkdown(coord.Snapshot().Account))
	return subcommands.ExitSuccess
}
