package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dce/renderer"
	"github.com/etnz/dce/workflow"
	"github.com/google/subcommands"
)

type nameCmd struct {
	email string
}

func (*nameCmd) Name() string     { return "name" }
func (*nameCmd) Synopsis() string { return "register the display name of the account" }
func (*nameCmd) Usage() string {
	return `dce name [-email <address>] <name>

  Registers the display name shown to other users in the transfer history,
  and optionally claims an email address.
`
}

func (c *nameCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "Email address to claim along with the name.")
}

func (c *nameCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one name is required")
		return subcommands.ExitUsageError
	}

	coord, log, err := openSession(ctx)
	if err != nil {
		return fail(err)
	}
	defer log.Sync()

	// an unregistered account is already in the registration workflow.
	if !coord.Open(workflow.AwaitingName) && coord.Snapshot().State != workflow.AwaitingName {
		return fail(fmt.Errorf("cannot register a name while %s", coord.Snapshot().State))
	}
	if err := coord.SubmitName(ctx, f.Arg(0), c.email); err != nil {
		return fail(err)
	}
	printMarkdown(renderer.AccountMarkdown(coord.Snapshot().Account))
	warn(coord)
	return subcommands.ExitSuccess
}
