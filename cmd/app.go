// Package cmd implements the dce command line client.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dce/account"
	"github.com/etnz/dce/config"
	"github.com/etnz/dce/ledger"
	"github.com/etnz/dce/logger"
	"github.com/etnz/dce/session"
	"github.com/etnz/dce/workflow"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&balanceCmd{}, "account")
	c.Register(&transfersCmd{}, "account")
	c.Register(&nameCmd{}, "account")

	c.Register(&movementCmd{grant: true}, "currency")
	c.Register(&movementCmd{}, "currency")

	c.Register(&shellCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerURL = flag.String("ledger-url", "", "Base URL of the ledger service (overrides DCE_LEDGER_URL)")
var network = flag.String("network", "", "Identity provider network, 'ic' or 'local' (overrides DFX_NETWORK)")
var token = flag.String("token", "", "Signed identity token, skips the browser login (overrides DCE_TOKEN)")
var Verbose = flag.Bool("v", false, "Verbose logging (overrides DCE_VERBOSE)")

// loadConfig reads the configuration and applies the global flags on top of it.
func loadConfig() (config.Config, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return cfg, fmt.Errorf("cannot load configuration: %w", err)
	}
	if *ledgerURL != "" {
		cfg.LedgerURL = *ledgerURL
	}
	if *network != "" {
		cfg.Network = *network
	}
	if *token != "" {
		cfg.Token = *token
	}
	if *Verbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

// openSession logs in and returns the coordinator of the session.
//
// The returned logger must be synced by the caller.
func openSession(ctx context.Context) (*workflow.Coordinator, *zap.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(logger.Options{Env: cfg.Env, Verbose: cfg.Verbose})
	if err != nil {
		return nil, nil, fmt.Errorf("cannot create logger: %w", err)
	}

	var provider session.Provider
	if cfg.Token != "" {
		provider = session.TokenProvider(cfg.Token)
	} else {
		provider = &session.BrowserProvider{
			Endpoint: cfg.ProviderEndpoint(),
			Addr:     cfg.CallbackAddr,
			Out:      os.Stderr,
		}
	}

	retry := ledger.DefaultRetryConfig()
	retry.MaxRetries = cfg.MaxRetries
	dial := func(id session.Identity) workflow.Ledger {
		return ledger.New(cfg.LedgerURL, id, log,
			ledger.WithTimeout(cfg.HTTPTimeout),
			ledger.WithRetryConfig(retry),
		)
	}

	coord := workflow.New(session.NewManager(provider, log), dial, new(account.Store), log)
	if err := coord.Login(ctx); err != nil {
		_ = log.Sync()
		return nil, nil, err
	}
	return coord, log, nil
}

// fail prints the user message for err and returns the failure status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %s\n", workflow.Notice(err))
	return subcommands.ExitFailure
}

// warn prints the pending notice of a session that otherwise succeeded,
// like a refresh failing after a transfer was recorded.
func warn(coord *workflow.Coordinator) {
	if n := coord.Snapshot().Notice; n != "" {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", n)
	}
}
