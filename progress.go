package clikit

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Handle identifies a bar within a Registry. Handles are assigned
// sequentially from zero and never reused.
type Handle uint

// InvalidHandle is returned by operations that could not create a bar.
const InvalidHandle = ^Handle(0)

var (
	// ErrUnknownHandle is returned when a handle was never issued.
	ErrUnknownHandle = errors.New("clikit: unknown handle")
	// ErrPoisoned is returned once a lock holder panicked.
	ErrPoisoned = errors.New("clikit: poisoned")
)

// Registry is a table of bars addressed by Handle. Bars are never removed.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.Mutex
	poisoned bool
	bars     []*Bar
	conf     rConf
	glyphs   [2]string
}

// NewRegistry creates new Registry instance. It's not possible to reuse
// options of one Registry to create another.
func NewRegistry(options ...RegistryOption) *Registry {
	r := new(Registry)
	r.configure(defaultConf(), options)
	return r
}

func (r *Registry) configure(c rConf, options []RegistryOption) {
	for _, opt := range options {
		if opt != nil {
			opt(&c)
		}
	}
	re := lipgloss.NewRenderer(c.out)
	r.conf = c
	r.glyphs = [2]string{
		re.NewStyle().Foreground(lipgloss.Color("12")).Render("•"),
		re.NewStyle().Foreground(lipgloss.Color("2")).Render("✓"),
	}
}

// Reconfigure resets defaults of an empty registry and applies options on
// top. Output, debug output and clock are kept unless options override
// them. Reports false without changes once any bar exists or the registry
// is poisoned, so issued handles stay valid.
func (r *Registry) Reconfigure(options ...RegistryOption) bool {
	var ok bool
	err := r.locked(func() {
		if len(r.bars) != 0 {
			return
		}
		c := defaultConf()
		c.out, c.debugOut, c.now = r.conf.out, r.conf.debugOut, r.conf.now
		r.configure(c, options)
		ok = true
	})
	return err == nil && ok
}

// Create adds a bar with given total and returns its handle. Handles of
// concurrent calls are distinct and consecutive.
func (r *Registry) Create(total uint64, options ...BarOption) (Handle, error) {
	h := InvalidHandle
	err := r.locked(func() {
		b := newBar(total, &r.conf, r.glyphs, options...)
		h = Handle(len(r.bars))
		r.bars = append(r.bars, b)
	})
	if err != nil {
		return InvalidHandle, err
	}
	return h, nil
}

// Resolve returns the bar of given handle. The table lock is released
// before return, so callers never hold it together with a bar lock.
func (r *Registry) Resolve(h Handle) (*Bar, error) {
	var b *Bar
	err := r.locked(func() {
		if h < Handle(len(r.bars)) {
			b = r.bars[h]
		}
	})
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrUnknownHandle
	}
	return b, nil
}

// Len returns number of bars created so far.
func (r *Registry) Len() (n int) {
	_ = r.locked(func() {
		n = len(r.bars)
	})
	return n
}

// Update sets current of bar h, clamped to its total. Optional message, if
// any, replaces the bar's message. Reports false if h is unknown or
// poisoned.
func (r *Registry) Update(h Handle, current uint64, message ...string) bool {
	return r.with(h, func(b *Bar) error {
		return b.Update(current, message...)
	})
}

// Increment adds amount to current of bar h, saturating at its total.
func (r *Registry) Increment(h Handle, amount uint64) bool {
	return r.with(h, func(b *Bar) error {
		return b.Increment(amount)
	})
}

// SetMessage replaces message of bar h.
func (r *Registry) SetMessage(h Handle, message string) bool {
	return r.with(h, func(b *Bar) error {
		return b.SetMessage(message)
	})
}

// Finish completes bar h. Without message the finish message is used.
func (r *Registry) Finish(h Handle, message ...string) bool {
	return r.with(h, func(b *Bar) error {
		return b.Finish(message...)
	})
}

// ProxyReader wraps r with metrics required for progress tracking of bar h.
func (r *Registry) ProxyReader(h Handle, reader io.Reader) (io.ReadCloser, error) {
	b, err := r.Resolve(h)
	if err != nil {
		return nil, err
	}
	return b.ProxyReader(reader), nil
}

// ProxyWriter wraps w with metrics required for progress tracking of bar h.
func (r *Registry) ProxyWriter(h Handle, w io.Writer) (io.WriteCloser, error) {
	b, err := r.Resolve(h)
	if err != nil {
		return nil, err
	}
	return b.ProxyWriter(w), nil
}

func (r *Registry) with(h Handle, fn func(*Bar) error) bool {
	b, err := r.Resolve(h)
	if err != nil {
		return false
	}
	return fn(b) == nil
}

func (r *Registry) locked(fn func()) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.poisoned {
		return ErrPoisoned
	}
	defer func() {
		if p := recover(); p != nil {
			r.poisoned = true
			err = fmt.Errorf("%w: %v", ErrPoisoned, p)
		}
	}()
	fn()
	return nil
}
