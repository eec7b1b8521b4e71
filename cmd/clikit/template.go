package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vbauerster/clikit/clierr"
)

func (a *app) templateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Inspect and render message templates",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Print template text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, rest []string) error {
			text, ok := a.tmpl.Get(rest[0])
			if !ok {
				return clierr.ConfigError("unknown template " + rest[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List templates",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, k := range a.tmpl.Keys() {
				text, _ := a.tmpl.Get(k)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", k, text)
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "render <key> [name=value...]",
		Short: "Render template with given values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, rest []string) error {
			ctx := make(map[string]string, len(rest)-1)
			for _, kv := range rest[1:] {
				k, v, ok := strings.Cut(kv, "=")
				if !ok {
					return fmt.Errorf("expected name=value, got %q", kv)
				}
				ctx[k] = v
			}
			out, err := a.tmpl.Render(rest[0], ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	})
	return cmd
}
