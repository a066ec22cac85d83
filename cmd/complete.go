package cmd

import (
	"flag"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the commands registered in c.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub: map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{
			"ledger-url": predict.Something,
			"network":    predict.Set{"ic", "local"},
			"token":      predict.Something,
			"v":          predict.Nothing,
		},
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, sub subcommands.Command) {
		fs := flag.NewFlagSet(sub.Name(), flag.ContinueOnError)
		sub.SetFlags(fs)
		flags := map[string]complete.Predictor{}
		fs.VisitAll(func(f *flag.Flag) { flags[f.Name] = predict.Something })
		root.Sub[sub.Name()] = &complete.Command{Flags: flags}
	})
	return root
}
