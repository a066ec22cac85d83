package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/dce/workflow"
	"github.com/google/subcommands"
)

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "start an interactive session" }
func (*shellCmd) Usage() string {
	return `dce shell

  Logs in and starts an interactive session on the account.
` + shellHelp
}

const shellHelp = `
Commands:
  refresh    reload the balance and the transfer history
  name       register the display name and email
  grant      grant units to another account
  transfer   transfer units to another account
  login      log in again, after the session expired
  quit       leave the session

Type 'cancel' in any form field to abort the form.
`

func (c *shellCmd) SetFlags(f *flag.FlagSet) {}

func (c *shellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	coord, log, err := openSession(ctx)
	if err != nil {
		return fail(err)
	}
	defer log.Sync()

	sh := &shell{coord: coord, in: bufio.NewScanner(os.Stdin), out: os.Stdout, render: renderMarkdown}
	sh.run(ctx)
	return subcommands.ExitSuccess
}

var errCancel = errors.New("cancelled")

// shell is an interactive session. When a workflow is open, it prompts for
// its form until the form is submitted successfully or cancelled.
type shell struct {
	coord  *workflow.Coordinator
	in     *bufio.Scanner
	out    io.Writer
	render func(io.Writer, string)
}

// run reads commands until the input ends or the user quits.
func (s *shell) run(ctx context.Context) {
	if err := s.coord.Refresh(ctx); err != nil {
		s.report(err)
	}
	s.show()
	for {
		if st := s.coord.Snapshot().State; st != workflow.Idle {
			if !s.fill(ctx, st) {
				return
			}
			continue
		}
		line, ok := s.prompt("dce> ")
		if !ok {
			return
		}
		switch line {
		case "":
		case "refresh":
			if err := s.coord.Refresh(ctx); err != nil {
				s.report(err)
			}
			s.show()
		case "name":
			s.open(workflow.AwaitingName)
		case "grant":
			s.open(workflow.AwaitingGrant)
		case "transfer":
			s.open(workflow.AwaitingTransfer)
		case "login":
			if err := s.coord.Login(ctx); err != nil {
				s.report(err)
				continue
			}
			if err := s.coord.Refresh(ctx); err != nil {
				s.report(err)
			}
			s.show()
		case "help", "?":
			fmt.Fprint(s.out, shellHelp)
		case "quit", "exit":
			return
		default:
			fmt.Fprintf(s.out, "unknown command %q, type 'help' for the list of commands\n", line)
		}
	}
}

func (s *shell) show() {
	s.render(s.out, page(s.coord.Snapshot()))
}

func (s *shell) report(err error) {
	fmt.Fprintf(s.out, "Error: %s\n", workflow.Notice(err))
}

func (s *shell) open(st workflow.State) {
	if s.coord.Open(st) {
		return
	}
	if !s.coord.Snapshot().LoggedIn {
		fmt.Fprintln(s.out, "You are not logged in, type 'login'.")
		return
	}
	fmt.Fprintf(s.out, "cannot start %s now\n", st)
}

func (s *shell) prompt(p string) (string, bool) {
	fmt.Fprint(s.out, p)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// field prompts for one form field. An empty answer selects def.
func (s *shell) field(label, def string) (string, error) {
	line, ok := s.prompt(label + ": ")
	switch {
	case !ok:
		return "", io.EOF
	case line == "cancel":
		return "", errCancel
	case line == "":
		return def, nil
	}
	return line, nil
}

// fill prompts for the form of the open workflow st and submits it.
// It returns false when the input ended.
func (s *shell) fill(ctx context.Context, st workflow.State) bool {
	err := s.submit(ctx, st)
	switch {
	case errors.Is(err, io.EOF):
		s.coord.Cancel(st)
		return false
	case errors.Is(err, errCancel):
		s.coord.Cancel(st)
		fmt.Fprintln(s.out, "cancelled")
	case err != nil:
		// the workflow stays open on failure, the form is prompted again.
		s.report(err)
	default:
		s.show()
		if n := s.coord.Snapshot().Notice; n != "" {
			fmt.Fprintf(s.out, "Warning: %s\n", n)
		}
	}
	return true
}

func (s *shell) submit(ctx context.Context, st workflow.State) (err error) {
	if st == workflow.AwaitingName {
		fmt.Fprintln(s.out, "Register your name (type 'cancel' to abort)")
		var name, email string
		if name, err = s.field("Name", ""); err != nil {
			return err
		}
		if email, err = s.field("Email (optional)", ""); err != nil {
			return err
		}
		return s.coord.SubmitName(ctx, name, email)
	}

	title := "New transfer"
	if st == workflow.AwaitingGrant {
		title = "New grant"
	}
	fmt.Fprintf(s.out, "%s (type 'cancel' to abort)\n", title)
	var f workflow.Form
	if f.To, err = s.field("To", ""); err != nil {
		return err
	}
	if f.Orange, err = s.field("Orange [0]", "0"); err != nil {
		return err
	}
	if f.Green, err = s.field("Green [0]", "0"); err != nil {
		return err
	}
	if f.Reason, err = s.field("Description", ""); err != nil {
		return err
	}
	if st == workflow.AwaitingGrant {
		return s.coord.SubmitGrant(ctx, f)
	}
	return s.coord.SubmitTransfer(ctx, f)
}
