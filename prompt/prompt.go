// Package prompt asks line oriented questions on a reader/writer pair.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/vbauerster/clikit/internal/termios"
)

// ErrNoOptions is returned by Select given no options.
var ErrNoOptions = errors.New("prompt: no options")

const dotInterval = 500 * time.Millisecond

// Prompter reads answers from in and writes questions to out.
type Prompter struct {
	in   *bufio.Reader
	file *os.File
	out  io.Writer
	tick time.Duration

	question lipgloss.Style
	warn     lipgloss.Style
	number   lipgloss.Style
	faint    lipgloss.Style
}

// New returns a Prompter. Nil in or out mean os.Stdin and os.Stdout.
func New(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	re := lipgloss.NewRenderer(out)
	p := &Prompter{
		in:       bufio.NewReader(in),
		out:      out,
		tick:     dotInterval,
		question: re.NewStyle().Foreground(lipgloss.Color("14")),
		warn:     re.NewStyle().Foreground(lipgloss.Color("11")),
		number:   re.NewStyle().Foreground(lipgloss.Color("2")),
		faint:    re.NewStyle().Foreground(lipgloss.Color("8")),
	}
	if f, ok := in.(*os.File); ok {
		p.file = f
	}
	return p
}

// Prompt prints message and returns the trimmed answer line.
func (p *Prompter) Prompt(message string) (string, error) {
	fmt.Fprint(p.out, p.question.Render(message)+" ")
	return p.readLine()
}

// Confirm asks a yes/no question. Empty answer means def. On read error def
// is returned along with the error.
func (p *Prompter) Confirm(message string, def bool) (bool, error) {
	hint := "[y/N]:"
	if def {
		hint = "[Y/n]:"
	}
	for {
		answer, err := p.Prompt(message + " " + hint)
		if err != nil {
			return def, err
		}
		switch strings.ToLower(answer) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, p.warn.Render("⚠")+" Enter y or n")
	}
}

// Select lists options and returns zero based index of the chosen one.
func (p *Prompter) Select(message string, options []string) (int, error) {
	if len(options) == 0 {
		return -1, ErrNoOptions
	}
	fmt.Fprintln(p.out, p.question.Render(message))
	for i, o := range options {
		fmt.Fprintf(p.out, "  %s. %s\n", p.number.Render(strconv.Itoa(i+1)), o)
	}
	for {
		answer, err := p.Prompt(fmt.Sprintf("Enter a number (1-%d):", len(options)))
		if err != nil {
			return -1, err
		}
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		fmt.Fprintf(p.out, "%s Enter a valid number (1-%d)\n", p.warn.Render("⚠"), len(options))
	}
}

// ReadPassword reads a line with terminal echo turned off, when input is a
// terminal.
func (p *Prompter) ReadPassword(message string) (string, error) {
	fmt.Fprint(p.out, p.question.Render(message)+" ")
	if p.file != nil && isatty.IsTerminal(p.file.Fd()) {
		restore, err := termios.DisableEcho(int(p.file.Fd()))
		if err == nil {
			defer func() {
				_ = restore()
				fmt.Fprintln(p.out)
			}()
		}
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadMultiline reads everything up to EOF.
func (p *Prompter) ReadMultiline(message string) (string, error) {
	fmt.Fprintln(p.out, p.question.Render(message)+" (press Ctrl+D when finished)")
	fmt.Fprintln(p.out, p.faint.Render("---------- begin input ----------"))
	b, err := io.ReadAll(p.in)
	fmt.Fprintln(p.out, p.faint.Render("---------- end input ----------"))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// AnimatedWait prints message followed by a dot every half second for d,
// then "done". It returns ctx.Err() if ctx ends first.
func (p *Prompter) AnimatedWait(ctx context.Context, message string, d time.Duration) error {
	fmt.Fprint(p.out, message)
	ticker := time.NewTicker(p.tick)
	defer ticker.Stop()
	for i := time.Duration(0); i < d/p.tick; i++ {
		fmt.Fprint(p.out, ".")
		select {
		case <-ctx.Done():
			fmt.Fprintln(p.out)
			return ctx.Err()
		case <-ticker.C:
		}
	}
	fmt.Fprintln(p.out, "done")
	return nil
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

var std = New(os.Stdin, os.Stdout)

// Default returns the Prompter on os.Stdin and os.Stdout.
func Default() *Prompter { return std }
