package clikit

import (
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/vbauerster/clikit/decor"
)

const (
	// default bar width
	rwidth = 30
	// default bar style
	rstyle = "[=> ]"
	// default finish message
	rfinish = "done"
)

// RegistryOption is a func option to alter default behavior of a Registry.
type RegistryOption func(*rConf)

type rConf struct {
	out      io.Writer
	debugOut io.Writer
	width    int
	style    string
	finish   string
	ewma     bool
	ewmaAge  float64
	unit     decor.Unit
	now      func() time.Time
}

func defaultConf() rConf {
	return rConf{
		out:      os.Stdout,
		debugOut: io.Discard,
		width:    rwidth,
		style:    rstyle,
		finish:   rfinish,
		now:      time.Now,
	}
}

// WithOutput overrides default os.Stdout output. Setting it to nil will
// effectively disable rendering.
func WithOutput(w io.Writer) RegistryOption {
	return func(c *rConf) {
		if w == nil {
			w = io.Discard
		}
		c.out = w
	}
}

// WithDebugOutput sets debug output, where swallowed render errors go.
func WithDebugOutput(w io.Writer) RegistryOption {
	if w == nil {
		return nil
	}
	return func(c *rConf) {
		c.debugOut = w
	}
}

// WithWidth sets default bar width of every bar. Values below 1 are
// ignored.
func WithWidth(width int) RegistryOption {
	return func(c *rConf) {
		if width > 0 {
			c.width = width
		}
	}
}

// WithStyle overrides default bar style "[=> ]". See BarStyle.
func WithStyle(style string) RegistryOption {
	return func(c *rConf) {
		if validStyle(style) {
			c.style = style
		}
	}
}

// WithFinishMessage overrides default "done" message, used when a bar is
// finished without one.
func WithFinishMessage(message string) RegistryOption {
	return func(c *rConf) {
		c.finish = message
	}
}

// WithEwmaSpeed makes every bar estimate speed with exponentially weighted
// moving average of the given age, instead of plain average since start.
func WithEwmaSpeed(age float64) RegistryOption {
	return func(c *rConf) {
		c.ewma = true
		c.ewmaAge = age
	}
}

// WithBytesUnit prints counters and speed of every bar in IEC byte units.
func WithBytesUnit() RegistryOption {
	return func(c *rConf) {
		c.unit = decor.UnitBytes
	}
}

func validStyle(style string) bool {
	return utf8.ValidString(style) && utf8.RuneCountInString(style) == formatLen
}
