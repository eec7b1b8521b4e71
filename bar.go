package clikit

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/acarl005/stripansi"
	"github.com/mattn/go-runewidth"
	"github.com/vbauerster/clikit/cwriter"
	"github.com/vbauerster/clikit/decor"
)

// Bar represents a progress bar. Every operation holds the bar's own lock
// for its whole duration, render included.
type Bar struct {
	mu       sync.Mutex
	poisoned bool
	state    bState
	cw       *cwriter.Writer
	debugOut io.Writer
	now      func() time.Time
}

type bState struct {
	total      uint64
	current    uint64
	width      int
	style      string
	filler     *barFiller
	message    string
	finish     string
	finished   bool
	unit       decor.Unit
	average    decor.MovingAverage
	glyphs     [2]string
	startTime  time.Time
	lastUpdate time.Time
}

func newBar(total uint64, c *rConf, glyphs [2]string, options ...BarOption) *Bar {
	now := c.now()
	s := bState{
		total:      total,
		width:      c.width,
		style:      c.style,
		finish:     c.finish,
		unit:       c.unit,
		glyphs:     glyphs,
		startTime:  now,
		lastUpdate: now,
	}
	if c.ewma {
		s.average = decor.NewEwma(c.ewmaAge)
	}
	for _, opt := range options {
		if opt != nil {
			opt(&s)
		}
	}
	s.filler = newBarFiller(s.style)
	return &Bar{
		state:    s,
		cw:       cwriter.New(c.out),
		debugOut: c.debugOut,
		now:      c.now,
	}
}

// Update sets current, clamped to total, and optionally replaces message,
// then renders once.
func (b *Bar) Update(current uint64, message ...string) error {
	return b.apply(func(s *bState) {
		s.setCurrent(current, b.now())
		for _, m := range message {
			s.message = m
		}
		b.render(s, false)
	})
}

// Increment adds n to current, saturating at total, then renders.
func (b *Bar) Increment(n uint64) error {
	return b.apply(func(s *bState) {
		sum := s.current + n
		if sum < s.current {
			sum = s.total
		}
		s.setCurrent(sum, b.now())
		b.render(s, false)
	})
}

// SetMessage replaces message and renders.
func (b *Bar) SetMessage(message string) error {
	return b.apply(func(s *bState) {
		s.message = message
		b.render(s, false)
	})
}

// Finish sets current to total, marks the bar finished and renders a
// terminating line. Calling it again renders again.
func (b *Bar) Finish(message ...string) error {
	return b.apply(func(s *bState) {
		msg := s.finish
		for _, m := range message {
			msg = m
		}
		s.setCurrent(s.total, b.now())
		s.message = msg
		s.finished = true
		b.render(s, true)
	})
}

// Stats returns a snapshot of bar's statistics.
func (b *Bar) Stats() (st decor.Statistics, err error) {
	err = b.apply(func(s *bState) {
		st = s.statistics(b.now())
	})
	return st, err
}

func (b *Bar) apply(op func(*bState)) (err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.poisoned {
		return ErrPoisoned
	}
	defer func() {
		if p := recover(); p != nil {
			b.poisoned = true
			err = fmt.Errorf("%w: %v", ErrPoisoned, p)
			fmt.Fprintf(b.debugOut, "%s %s bar panic: %q\n", "[clikit]", time.Now().Format(time.RFC3339), p)
		}
	}()
	op(&b.state)
	return nil
}

// render writes one line, terminated with newline only if terminate is set.
func (b *Bar) render(s *bState, terminate bool) {
	_, _ = b.cw.WriteString("\r")
	_, _ = b.cw.WriteString(s.draw(s.statistics(b.now()), b.termWidth()))
	if terminate {
		_, _ = b.cw.WriteString("\n")
	}
	if err := b.cw.Flush(); err != nil {
		fmt.Fprintf(b.debugOut, "%s %s %v\n", "[clikit]", time.Now().Format(time.RFC3339), err)
	}
}

func (b *Bar) termWidth() int {
	if !b.cw.IsTerminal() {
		return 0
	}
	width, _, err := b.cw.GetTermSize()
	if err != nil {
		return 0
	}
	return width
}

func (s *bState) setCurrent(n uint64, now time.Time) {
	if n > s.total {
		n = s.total
	}
	if s.average != nil && n > s.current {
		if dt := now.Sub(s.lastUpdate); dt > 0 {
			s.average.Add(float64(n-s.current) / dt.Seconds())
		}
	}
	s.lastUpdate = now
	s.current = n
}

func (s *bState) statistics(now time.Time) decor.Statistics {
	st := decor.Statistics{
		Total:    s.total,
		Current:  s.current,
		Width:    s.width,
		Message:  s.message,
		Elapsed:  now.Sub(s.startTime),
		Finished: s.finished,
	}
	if s.average != nil {
		st.Speed = s.average.Value()
	}
	return st
}

// draw composes one line without leading carriage return. Positive
// termWidth truncates message so the line fits.
func (s *bState) draw(st decor.Statistics, termWidth int) string {
	status := s.glyphs[0]
	if st.Finished {
		status = s.glyphs[1]
	}
	percent := st.Percent()
	line := fmt.Sprintf("%s %d%% %s %s [%s, %s] ",
		status,
		percent,
		s.filler.fill(st.Width, percent),
		decor.FormatCounters(st.Current, st.Total, s.unit),
		decor.FormatSpeed(st.Throughput(), s.unit),
		decor.FormatETA(st.ETA()),
	)
	msg := st.Message
	if termWidth > 0 {
		avail := termWidth - runewidth.StringWidth(stripansi.Strip(line))
		switch {
		case avail <= 1:
			msg = ""
		case runewidth.StringWidth(msg) > avail:
			msg = runewidth.Truncate(msg, avail, "…")
		}
	}
	return line + msg
}
