package cmd

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/etnz/dce/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtensionEnv(t *testing.T) {
	testCases := []struct {
		name string
		cfg  config.Config
		want []string
	}{
		{
			name: "without token",
			cfg:  config.Config{LedgerURL: "http://ledger.test/api", Network: "local"},
			want: []string{"DCE_LEDGER_URL=http://ledger.test/api", "DFX_NETWORK=local", "DCE_VERBOSE=false"},
		},
		{
			name: "with token",
			cfg:  config.Config{LedgerURL: "http://ledger.test/api", Network: "ic", Token: "abc", Verbose: true},
			want: []string{"DCE_LEDGER_URL=http://ledger.test/api", "DFX_NETWORK=ic", "DCE_VERBOSE=true", "DCE_TOKEN=abc"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extensionEnv(tc.cfg))
		})
	}
}

// build compiles the go package or file src into dir/name.
func build(t *testing.T, dir, name, src string) string {
	t.Helper()
	out := filepath.Join(dir, name)
	cmd := exec.Command("go", "build", "-o", out, src)
	cmd.Stderr = os.Stderr
	require.NoError(t, cmd.Run(), "building %s", name)
	return out
}

func TestRunExtension(t *testing.T) {
	dir := t.TempDir()

	src := filepath.Join(dir, "hello.go")
	require.NoError(t, os.WriteFile(src, []byte(`package main

import (
	"fmt"
	"os"
)

func main() {
	for _, k := range []string{"DCE_LEDGER_URL", "DFX_NETWORK", "DCE_VERBOSE"} {
		fmt.Printf("%s=%s\n", k, os.Getenv(k))
	}
	if tok, ok := os.LookupEnv("DCE_TOKEN"); ok {
		fmt.Printf("DCE_TOKEN=%s\n", tok)
	}
	fmt.Printf("args=%v\n", os.Args[1:])
	os.Exit(3)
}
`), 0644))
	build(t, dir, "dce-hello", src)
	dce := build(t, dir, "dce", "../dce")

	testCases := []struct {
		name    string
		flags   []string
		want    []string
		notWant string
	}{
		{
			name:    "no token",
			flags:   []string{"--ledger-url", "http://ledger.test/api", "--network", "ic", "-v"},
			want:    []string{"DCE_LEDGER_URL=http://ledger.test/api", "DFX_NETWORK=ic", "DCE_VERBOSE=true", "args=[world]"},
			notWant: "DCE_TOKEN=",
		},
		{
			name:  "token flag",
			flags: []string{"--token", "abc"},
			want:  []string{"DFX_NETWORK=local", "DCE_TOKEN=abc", "args=[world]"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			run := exec.Command(dce, append(tc.flags, "hello", "world")...)
			run.Dir = dir
			run.Env = []string{"PATH=" + dir + string(os.PathListSeparator) + os.Getenv("PATH")}
			var stdout bytes.Buffer
			run.Stdout = &stdout

			err := run.Run()
			var exit *exec.ExitError
			require.ErrorAs(t, err, &exit)
			assert.Equal(t, 3, exit.ExitCode(), "exit code of the extension")

			for _, w := range tc.want {
				assert.Contains(t, stdout.String(), w)
			}
			if tc.notWant != "" {
				assert.NotContains(t, stdout.String(), tc.notWant)
			}
		})
	}
}
