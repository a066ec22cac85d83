package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dce/workflow"
	"github.com/google/subcommands"
)

// movementCmd is either the grant or the transfer command.
type movementCmd struct {
	grant  bool
	orange string
	green  string
	reason string
}

func (c *movementCmd) Name() string {
	if c.grant {
		return "grant"
	}
	return "transfer"
}

func (c *movementCmd) Synopsis() string {
	if c.grant {
		return "grant orange and green units to another account"
	}
	return "transfer orange and green units to another account"
}

func (c *movementCmd) Usage() string {
	return fmt.Sprintf(`dce %s [-orange <units>] [-green <units>] -m <description> <principal>

  Moves whole units of each currency to the account of <principal>, and
  displays the refreshed balance and history.
`, c.Name())
}

func (c *movementCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.orange, "orange", "0", "Number of orange units.")
	f.StringVar(&c.green, "green", "0", "Number of green units.")
	f.StringVar(&c.reason, "m", "", "Description of the movement.")
}

func (c *movementCmd) state() workflow.State {
	if c.grant {
		return workflow.AwaitingGrant
	}
	return workflow.AwaitingTransfer
}

func (c *movementCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one recipient principal is required")
		return subcommands.ExitUsageError
	}

	coord, log, err := openSession(ctx)
	if err != nil {
		return fail(err)
	}
	defer log.Sync()

	if coord.Cancel(workflow.AwaitingName) {
		fmt.Fprintln(os.Stderr, "This account has no name yet, register one with 'dce name'.")
	}
	if !coord.Open(c.state()) {
		return fail(fmt.Errorf("cannot open the %s workflow", c.Name()))
	}

	form := workflow.Form{To: f.Arg(0), Orange: c.orange, Green: c.green, Reason: c.reason}
	if c.grant {
		err = coord.SubmitGrant(ctx, form)
	} else {
		err = coord.SubmitTransfer(ctx, form)
	}
	if err != nil {
		return fail(err)
	}
	printMarkdown(page(coord.Snapshot()))
	warn(coord)
	return subcommands.ExitSuccess
}
