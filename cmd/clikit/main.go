// Command clikit exercises the clikit packages from a shell.
package main

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/vbauerster/clikit/config"
	"github.com/vbauerster/clikit/logger"
	"github.com/vbauerster/clikit/templates"
)

type app struct {
	configPath string
	logLevel   string
	noColor    bool

	conf *config.Config
	log  *logger.Logger
	tmpl *templates.Table
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdin, os.Stdout).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	a := new(app)
	rootCmd := &cobra.Command{
		Use:          "clikit",
		Short:        "Terminal support toolkit: logging, templates, progress bars and prompts",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.OutOrStdout())
		},
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	pf.StringVar(&a.logLevel, "log-level", "", "override logger level: debug, info, warn or error")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		a.logCmd(),
		a.templateCmd(),
		a.progressCmd(),
		a.configCmd(),
		a.askCmd(),
		a.argsCmd(),
	)
	return rootCmd
}

func (a *app) path() string {
	if a.configPath != "" {
		return a.configPath
	}
	return config.DefaultPath()
}

// setup loads config, falling back to defaults when the file does not
// exist yet.
func (a *app) setup(out io.Writer) error {
	conf, err := config.Load(a.path())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		conf = config.Default()
	}
	a.conf = conf

	a.log = logger.New(out)
	level := conf.Logger.Level
	if a.logLevel != "" {
		level = a.logLevel
	}
	if err := a.log.SetLevel(level); err != nil {
		return err
	}
	a.log.SetColor(conf.Logger.Color && !a.noColor)
	a.log.SetTimestamp(conf.Logger.Timestamp)

	a.tmpl = templates.New()
	a.tmpl.Merge(conf.Templates)
	return nil
}
