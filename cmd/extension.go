package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"

	"github.com/etnz/dce/config"
)

// Settings forwarded to extensions.
const (
	EnvLedgerURL = "DCE_LEDGER_URL"
	EnvNetwork   = "DFX_NETWORK"
	EnvToken     = "DCE_TOKEN"
	EnvVerbose   = "DCE_VERBOSE"
)

// extensionEnv returns the settings of cfg as environment variables.
// The token is only forwarded when there is one, so that an extension can
// still pick up its own.
func extensionEnv(cfg config.Config) []string {
	env := []string{
		EnvLedgerURL + "=" + cfg.LedgerURL,
		EnvNetwork + "=" + cfg.Network,
		EnvVerbose + "=" + strconv.FormatBool(cfg.Verbose),
	}
	if cfg.Token != "" {
		env = append(env, EnvToken+"="+cfg.Token)
	}
	return env
}

// RunExtension runs dce-<name> from the PATH with the effective settings in
// its environment.
// It reports whether an extension was found, and its exit code.
func RunExtension(name string, args []string) (bool, int) {
	bin := "dce-" + name
	lp, err := exec.LookPath(bin)
	if err != nil {
		if *Verbose {
			log.Printf("no extension %q: %v", bin, err)
		}
		return false, 0
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return true, 1
	}

	ext := exec.Command(lp, args...)
	ext.Stdin, ext.Stdout, ext.Stderr = os.Stdin, os.Stdout, os.Stderr
	ext.Env = append(os.Environ(), extensionEnv(cfg)...)

	var exit *exec.ExitError
	switch err := ext.Run(); {
	case err == nil:
		return true, 0
	case errors.As(err, &exit):
		return true, exit.ExitCode()
	default:
		fmt.Fprintf(os.Stderr, "Error running %q: %v\n", bin, err)
		return true, 1
	}
}
