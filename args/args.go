// Package args scans command line tokens into keyed values, bare flags and
// positionals, without declaring them up front.
//
//	--key=value   value
//	--key value   value
//	-k value      value
//	--key         flag, when followed by another key or nothing
//	anything else positional
package args

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ErrHelp is returned by Parse after help was printed.
var ErrHelp = errors.New("args: help requested")

// Parser holds results of the last Parse.
type Parser struct {
	program     string
	description string
	options     []option
	out         io.Writer

	values      map[string]string
	flags       []string
	positionals []string
}

type option struct {
	names string
	usage string
}

// New returns a Parser for program, printing help to os.Stdout.
func New(program string) *Parser {
	return &Parser{
		program: program,
		out:     os.Stdout,
		values:  make(map[string]string),
	}
}

// WithDescription sets text printed under the help title.
func (p *Parser) WithDescription(description string) *Parser {
	p.description = description
	return p
}

// Option documents an option in help output. It doesn't affect parsing.
func (p *Parser) Option(names, usage string) *Parser {
	p.options = append(p.options, option{names, usage})
	return p
}

// SetOutput sets help destination. Nil means io.Discard.
func (p *Parser) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	p.out = w
}

// Parse scans argv, skipping argv[0]. Results of a previous Parse are
// dropped.
func (p *Parser) Parse(argv []string) error {
	p.values = make(map[string]string)
	p.flags = nil
	p.positionals = nil
	if len(argv) == 0 {
		return nil
	}

	var pending *string
	for _, arg := range argv[1:] {
		if arg == "--help" || arg == "-h" {
			p.PrintHelp()
			return ErrHelp
		}
		switch {
		case strings.HasPrefix(arg, "--") && strings.Contains(arg, "="):
			key, value, _ := strings.Cut(strings.TrimLeft(arg, "-"), "=")
			p.values[key] = value
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			if pending != nil {
				p.flags = append(p.flags, *pending)
			}
			key := strings.TrimLeft(arg, "-")
			pending = &key
		case pending != nil:
			p.values[*pending] = arg
			pending = nil
		default:
			p.positionals = append(p.positionals, arg)
		}
	}
	if pending != nil {
		p.flags = append(p.flags, *pending)
	}
	return nil
}

// Get returns value of key.
func (p *Parser) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Values returns a copy of all keyed values.
func (p *Parser) Values() map[string]string {
	return maps.Clone(p.values)
}

// Flags returns bare flags in order of appearance.
func (p *Parser) Flags() []string {
	return slices.Clone(p.flags)
}

// HasFlag reports whether name was given as a bare flag.
func (p *Parser) HasFlag(name string) bool {
	return slices.Contains(p.flags, name)
}

// Positional returns i-th positional.
func (p *Parser) Positional(i int) (string, bool) {
	if i < 0 || i >= len(p.positionals) {
		return "", false
	}
	return p.positionals[i], true
}

func (p *Parser) PositionalCount() int {
	return len(p.positionals)
}

// Positionals returns a copy of all positionals.
func (p *Parser) Positionals() []string {
	return slices.Clone(p.positionals)
}

// PrintHelp writes usage to the parser's output.
func (p *Parser) PrintHelp() {
	fmt.Fprintf(p.out, "-- %s --\n", p.program)
	if p.description != "" {
		fmt.Fprintln(p.out, p.description)
	}
	fmt.Fprintf(p.out, "\nUsage:\n  %s [options] [args...]\n", p.program)
	fmt.Fprintln(p.out, "\nOptions:")

	opts := append([]option{{"-h, --help", "Show this help message and exit"}}, p.options...)
	var width int
	for _, o := range opts {
		width = max(width, runewidth.StringWidth(o.names))
	}
	for _, o := range opts {
		fmt.Fprintf(p.out, "  %s    %s\n", runewidth.FillRight(o.names, width), o.usage)
	}
}
