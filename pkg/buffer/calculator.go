// Package buffer computes the sizes and counts of the buffers a video
// hardware session needs.
//
// Three entry points serve buffer negotiation: Size, MinCount and
// ExtraCount. None of them fails or panics. A size of 0 means the buffer does
// not exist for the session, or the session is not far enough in its setup to
// size it; the reason is logged and can be queried with Validate.
package buffer

import (
	"sync"

	"github.com/pion/logging"
	internallog "github.com/pion/vidcbuf/internal/logging"
	"github.com/pion/vidcbuf/pkg/hfi"
	"github.com/pion/vidcbuf/pkg/session"
)

// InvalidCount is returned by MinCount when no session is given.
const InvalidCount = -1

const loggerScope = "buffer"

// Calculator sizes buffers with a set of firmware formulas and a port
// policy. It holds no per-session state and is safe for concurrent use.
type Calculator struct {
	provider hfi.Provider
	ports    PortPolicy
	log      logging.LeveledLogger
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithProvider replaces the firmware formulas. The default is hfi.Iris2().
func WithProvider(p hfi.Provider) Option {
	return func(c *Calculator) {
		c.provider = p
	}
}

// WithPortPolicy replaces the policy sizing and counting client buffers.
func WithPortPolicy(p PortPolicy) Option {
	return func(c *Calculator) {
		c.ports = p
	}
}

// WithLoggerFactory makes the calculator log through f.
func WithLoggerFactory(f logging.LoggerFactory) Option {
	return func(c *Calculator) {
		c.log = f.NewLogger("vidcbuf/" + loggerScope)
	}
}

// New returns a calculator configured by opts.
func New(opts ...Option) *Calculator {
	c := &Calculator{}
	for _, opt := range opts {
		opt(c)
	}
	if c.provider == nil {
		c.provider = hfi.Iris2()
	}
	if c.ports == nil {
		c.ports = DefaultPortPolicy{}
	}
	if c.log == nil {
		c.log = internallog.NewLogger(loggerScope)
	}
	return c
}

var (
	defaultOnce       sync.Once
	defaultCalculator *Calculator
)

// Default returns the calculator used by the package level functions.
func Default() *Calculator {
	defaultOnce.Do(func() {
		defaultCalculator = New()
	})
	return defaultCalculator
}

// Size returns the size in bytes of a buffer of type t for s, using the
// default calculator.
func Size(s *session.Session, t Type) uint32 {
	return Default().Size(s, t)
}

// MinCount returns the minimum number of buffers of type t for s, using the
// default calculator.
func MinCount(s *session.Session, t Type) int {
	return Default().MinCount(s, t)
}

// ExtraCount returns the number of buffers of type t to allocate beyond the
// minimum, using the default calculator.
func ExtraCount(s *session.Session, t Type) int {
	return Default().ExtraCount(s, t)
}
