package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vbauerster/clikit/prompt"
)

var errDeclined = errors.New("declined")

func (a *app) askCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Ask interactive questions",
	}

	var def bool
	confirmCmd := &cobra.Command{
		Use:   "confirm <question>",
		Short: "Ask yes or no, exit status 1 on no",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, rest []string) error {
			p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
			yes, err := p.Confirm(rest[0], def)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), yes)
			if !yes {
				return errDeclined
			}
			return nil
		},
	}
	confirmCmd.Flags().BoolVar(&def, "default", false, "answer on empty input")
	cmd.AddCommand(confirmCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "select <question> <option> [option...]",
		Short: "Pick one option, prints its zero based index",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, rest []string) error {
			p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
			i, err := p.Select(rest[0], rest[1:])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "password <prompt>",
		Short: "Read a secret without echo, prints its length",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, rest []string) error {
			p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
			pw, err := p.ReadPassword(rest[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "read %d characters\n", len([]rune(pw)))
			return nil
		},
	})
	return cmd
}
