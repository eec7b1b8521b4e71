package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/vbauerster/clikit/config"
	"gopkg.in/yaml.v3"
)

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write default config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.path()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s exists, use --force to overwrite", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			if err := config.Default().Save(path); err != nil {
				return err
			}
			a.log.Success("wrote " + path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite existing file")
	cmd.AddCommand(initCmd)

	var asYAML bool
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print effective config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var data []byte
			var err error
			if asYAML {
				data, err = yaml.Marshal(a.conf)
			} else {
				data, err = toml.Marshal(a.conf)
			}
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	showCmd.Flags().BoolVar(&asYAML, "yaml", false, "print as YAML")
	cmd.AddCommand(showCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "watch",
		Short: "Report config changes until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.path()
			a.log.Info("watching " + path)
			return config.Watch(cmd.Context(), path, a.log.Logr(), func(c *config.Config) {
				if err := a.log.SetLevel(c.Logger.Level); err == nil {
					a.log.SetColor(c.Logger.Color && !a.noColor)
					a.log.SetTimestamp(c.Logger.Timestamp)
				}
				a.conf = c
				a.log.Success("reloaded " + path)
			})
		},
	})
	return cmd
}
