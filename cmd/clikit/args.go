package main

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"
	"github.com/vbauerster/clikit/args"
)

func (a *app) argsCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "args -- [tokens...]",
		Short:              "Show how tokens are scanned into values, flags and positionals",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, rest []string) error {
			if len(rest) > 0 && rest[0] == "--" {
				rest = rest[1:]
			}
			p := args.New("clikit args")
			p.SetOutput(cmd.OutOrStdout())
			if err := p.Parse(append([]string{"args"}, rest...)); err != nil {
				if errors.Is(err, args.ErrHelp) {
					return nil
				}
				return err
			}
			out := cmd.OutOrStdout()
			values := p.Values()
			for _, k := range slices.Sorted(maps.Keys(values)) {
				fmt.Fprintf(out, "value\t%s=%s\n", k, values[k])
			}
			for _, f := range p.Flags() {
				fmt.Fprintf(out, "flag\t%s\n", f)
			}
			for i, v := range p.Positionals() {
				fmt.Fprintf(out, "arg[%d]\t%s\n", i, v)
			}
			return nil
		},
	}
}
