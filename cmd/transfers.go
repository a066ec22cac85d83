package cmd

import (
	"context"
	"flag"

	"github.com/etnz/dce/renderer"
	"github.com/google/subcommands"
)

type transfersCmd struct{}

func (*transfersCmd) Name() string     { return "transfers" }
func (*transfersCmd) Synopsis() string { return "display the shared transfer history" }
func (*transfersCmd) Usage() string {
	return `dce transfers

  Displays every transfer recorded by the ledger, in the order of the ledger.
`
}

func (c *transfersCmd) SetFlags(f *flag.FlagSet) {}

func (c *transfersCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	coord, log, err := openSession(ctx)
	if err != nil {
		return fail(err)
	}
	defer log.Sync()

	err = coord.Refresh(ctx)
	s := coord.Snapshot()
	if s.Transfers == nil {
		// the history itself failed, a balance failure alone is not fatal here.
		return fail(err)
	}
	printMarkdown(renderer.TransfersMarkdown(s.Transfers))
	return subcommands.ExitSuccess
}
