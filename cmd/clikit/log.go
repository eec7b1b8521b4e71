package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) logCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "log <debug|info|success|warn|error> <message...>",
		Short:     "Write a log line",
		Args:      cobra.MinimumNArgs(2),
		ValidArgs: []string{"debug", "info", "success", "warn", "error"},
		RunE: func(_ *cobra.Command, rest []string) error {
			msg := strings.Join(rest[1:], " ")
			switch strings.ToLower(rest[0]) {
			case "debug":
				a.log.Debug(msg)
			case "info":
				a.log.Info(msg)
			case "success":
				a.log.Success(msg)
			case "warn", "warning":
				a.log.Warn(msg)
			case "error":
				a.log.Error(msg)
			default:
				return fmt.Errorf("unknown level %q", rest[0])
			}
			return nil
		},
	}
}
