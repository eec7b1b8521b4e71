// Package boundary translates foreign caller conventions, optional text
// and plain integers, into clikit calls and flattens results to
// bool, int and handle codes.
package boundary

import (
	"io"
	"os"
	"sync/atomic"
	"unicode/utf8"

	"github.com/vbauerster/clikit"
	"github.com/vbauerster/clikit/args"
	"github.com/vbauerster/clikit/config"
	"github.com/vbauerster/clikit/logger"
	"github.com/vbauerster/clikit/prompt"
	"github.com/vbauerster/clikit/templates"
)

// Adapter owns one instance of every subsystem. It is safe for concurrent
// use, except for args.Parser values which belong to a single caller.
type Adapter struct {
	out       io.Writer
	registry  *clikit.Registry
	conf      atomic.Pointer[config.Config]
	templates *templates.Table
	log       *logger.Logger
	prompt    *prompt.Prompter
}

// New returns an Adapter reading answers from in and writing to out. Nil
// in or out mean os.Stdin and os.Stdout.
func New(in io.Reader, out io.Writer) *Adapter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	a := &Adapter{
		out:       out,
		templates: templates.New(),
		log:       logger.New(out),
		prompt:    prompt.New(in, out),
	}
	conf := config.Default()
	a.conf.Store(conf)
	a.registry = clikit.NewRegistry(append(conf.RegistryOptions(), clikit.WithOutput(out))...)
	return a
}

// Registry returns the registry progress calls go to.
func (a *Adapter) Registry() *clikit.Registry { return a.registry }

// Config returns the last applied config.
func (a *Adapter) Config() *config.Config { return a.conf.Load() }

func (a *Adapter) Templates() *templates.Table { return a.templates }

func (a *Adapter) Logger() *logger.Logger { return a.log }

// text returns *s if present and valid UTF-8.
func text(s *string) (string, bool) {
	if s == nil || !utf8.ValidString(*s) {
		return "", false
	}
	return *s, true
}

func (a *Adapter) LogInfo(msg *string) {
	if m, ok := text(msg); ok {
		a.log.Info(m)
	}
}

func (a *Adapter) LogWarn(msg *string) {
	if m, ok := text(msg); ok {
		a.log.Warn(m)
	}
}

func (a *Adapter) LogError(msg *string) {
	if m, ok := text(msg); ok {
		a.log.Error(m)
	}
}

func (a *Adapter) LogSuccess(msg *string) {
	if m, ok := text(msg); ok {
		a.log.Success(m)
	}
}

// GetTemplate looks key up in the template table.
func (a *Adapter) GetTemplate(key *string) (string, bool) {
	k, ok := text(key)
	if !ok {
		return "", false
	}
	return a.templates.Get(k)
}

// LoadConfig loads path and applies logger settings and template entries.
// Progress defaults take effect only while no bar exists, so issued handles
// stay valid.
func (a *Adapter) LoadConfig(path *string) bool {
	p, ok := text(path)
	if !ok {
		return false
	}
	c, err := config.Load(p)
	if err != nil {
		return false
	}
	if err := a.log.SetLevel(c.Logger.Level); err != nil {
		return false
	}
	a.log.SetColor(c.Logger.Color)
	a.log.SetTimestamp(c.Logger.Timestamp)
	a.templates.Merge(c.Templates)
	a.registry.Reconfigure(c.RegistryOptions()...)
	a.conf.Store(c)
	return true
}

// CreateProgressBar returns clikit.InvalidHandle if the registry is
// poisoned.
func (a *Adapter) CreateProgressBar(total uint64) clikit.Handle {
	h, err := a.registry.Create(total)
	if err != nil {
		return clikit.InvalidHandle
	}
	return h
}

// UpdateProgress keeps the bar's message when msg is absent.
func (a *Adapter) UpdateProgress(h clikit.Handle, current uint64, msg *string) bool {
	if m, ok := text(msg); ok {
		return a.registry.Update(h, current, m)
	}
	return a.registry.Update(h, current)
}

// FinishProgress uses the finish message when msg is absent.
func (a *Adapter) FinishProgress(h clikit.Handle, msg *string) bool {
	if m, ok := text(msg); ok {
		return a.registry.Finish(h, m)
	}
	return a.registry.Finish(h)
}

// NewArgParser returns nil if program is absent.
func (a *Adapter) NewArgParser(program *string) *args.Parser {
	name, ok := text(program)
	if !ok {
		return nil
	}
	p := args.New(name)
	p.SetOutput(a.out)
	return p
}

func (a *Adapter) SetParserDescription(p *args.Parser, description *string) {
	if d, ok := text(description); ok && p != nil {
		p.WithDescription(d)
	}
}

// ParseArgs reports false on absent tokens and when help was requested.
func (a *Adapter) ParseArgs(p *args.Parser, argv []*string) bool {
	if p == nil {
		return false
	}
	tokens := make([]string, 0, len(argv))
	for _, s := range argv {
		t, ok := text(s)
		if !ok {
			return false
		}
		tokens = append(tokens, t)
	}
	return p.Parse(tokens) == nil
}

func (a *Adapter) ArgGet(p *args.Parser, key *string) (string, bool) {
	k, ok := text(key)
	if !ok || p == nil {
		return "", false
	}
	return p.Get(k)
}

func (a *Adapter) ArgHasFlag(p *args.Parser, flag *string) bool {
	f, ok := text(flag)
	return ok && p != nil && p.HasFlag(f)
}

func (a *Adapter) ArgPrintHelp(p *args.Parser) {
	if p != nil {
		p.PrintHelp()
	}
}

func (a *Adapter) Prompt(msg *string) (string, bool) {
	m, ok := text(msg)
	if !ok {
		return "", false
	}
	answer, err := a.prompt.Prompt(m)
	return answer, err == nil
}

// Confirm returns def on absent message or read failure.
func (a *Adapter) Confirm(msg *string, def bool) bool {
	m, ok := text(msg)
	if !ok {
		return def
	}
	answer, _ := a.prompt.Confirm(m, def)
	return answer
}

// SelectOption skips absent options and returns -1 on failure.
func (a *Adapter) SelectOption(msg *string, options []*string) int {
	m, ok := text(msg)
	if !ok {
		return -1
	}
	opts := make([]string, 0, len(options))
	for _, o := range options {
		if s, ok := text(o); ok {
			opts = append(opts, s)
		}
	}
	i, err := a.prompt.Select(m, opts)
	if err != nil {
		return -1
	}
	return i
}

func (a *Adapter) ReadPassword(msg *string) (string, bool) {
	m, ok := text(msg)
	if !ok {
		return "", false
	}
	pw, err := a.prompt.ReadPassword(m)
	return pw, err == nil
}
