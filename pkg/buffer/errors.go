package buffer

import (
	"errors"
	"fmt"

	"github.com/pion/vidcbuf/pkg/session"
)

var (
	// ErrNilSession is reported when no session was passed.
	ErrNilSession = errors.New("buffer: nil session")
	// ErrNoCore is reported when the session is not bound to a core.
	ErrNoCore = errors.New("buffer: session has no core")
	// ErrNoCoreCapabilities is reported when the core capability table is
	// missing.
	ErrNoCoreCapabilities = errors.New("buffer: invalid core capabilities")
	// ErrNoCapabilities is reported when the session capability table is
	// missing.
	ErrNoCapabilities = errors.New("buffer: invalid session capabilities")
	// ErrMissingCapability is reported when a required capability is absent
	// or zero.
	ErrMissingCapability = errors.New("buffer: missing capability")
	// ErrFrameTooLarge is reported when a port resolution exceeds what the
	// hardware, or this package, can size.
	ErrFrameTooLarge = errors.New("buffer: frame too large")
)

// maxFrameDimension bounds port dimensions when the session does not state
// tighter limits. Every formula stays within 32 bits below it.
const maxFrameDimension = 16384

// requirement lists the parts of a session a formula reads beyond the
// session itself.
type requirement uint8

const (
	needCore requirement = 1 << iota
	needPipes
	needStage
	needLimits
)

// inputs carries the values extracted while validating a session, so the
// formulas do not look them up again.
type inputs struct {
	s        *session.Session
	numPipes uint32
	stage    uint32
}

func check(s *session.Session, need requirement) (inputs, error) {
	in := inputs{s: s}
	if s == nil {
		return in, ErrNilSession
	}
	if need&(needCore|needPipes|needStage) != 0 && s.Core == nil {
		return in, ErrNoCore
	}
	if need&needPipes != 0 {
		if s.Core.Capabilities == nil {
			return in, ErrNoCoreCapabilities
		}
		pipes, ok := s.Core.Capabilities.Lookup(session.NumVPPPipes)
		if !ok || pipes == 0 {
			return in, fmt.Errorf("%w: %s", ErrMissingCapability, session.NumVPPPipes)
		}
		in.numPipes = pipes
	}
	if need&needStage != 0 {
		if s.Capabilities == nil {
			return in, ErrNoCapabilities
		}
		// A missing stage reads as 0, the single stage work mode.
		in.stage = s.Capabilities.Value(session.Stage)
	}
	if need&needLimits != 0 {
		if err := checkLimits(s); err != nil {
			return in, err
		}
	}
	return in, nil
}

// checkLimits rejects port resolutions above the session frame size limits,
// above the macroblocks per frame of the core, or above maxFrameDimension.
func checkLimits(s *session.Session) error {
	maxWidth, maxHeight := uint32(maxFrameDimension), uint32(maxFrameDimension)
	if w := s.Capabilities.Value(session.FrameWidth); w > 0 && w < maxWidth {
		maxWidth = w
	}
	if h := s.Capabilities.Value(session.FrameHeight); h > 0 && h < maxHeight {
		maxHeight = h
	}
	var maxMBs uint32
	if s.Core != nil {
		maxMBs = s.Core.Capabilities.Value(session.MaxMBPerFrame)
	}
	for p := session.InputPort; p < session.NumPorts; p++ {
		f := s.Format(p)
		if f.Width > maxWidth || f.Height > maxHeight {
			return fmt.Errorf("%w: %s port %dx%d exceeds %dx%d",
				ErrFrameTooLarge, p, f.Width, f.Height, maxWidth, maxHeight)
		}
		if mbs := ((f.Width + 15) >> 4) * ((f.Height + 15) >> 4); maxMBs > 0 && mbs > maxMBs {
			return fmt.Errorf("%w: %s port has %d macroblocks, limit %d",
				ErrFrameTooLarge, p, mbs, maxMBs)
		}
	}
	return nil
}

// Validate reports whether every buffer of the session can be sized. The
// sizing entry points never fail; Validate explains why one of them would
// return 0.
func Validate(s *session.Session) error {
	if s == nil {
		return ErrNilSession
	}
	var need requirement
	for key, e := range sizeTable {
		if key.dir == s.Direction {
			need |= e.needs
		}
	}
	_, err := check(s, need)
	return err
}
