package buffer

import "github.com/pion/vidcbuf/pkg/session"

// MinCount returns the minimum number of buffers of type t that must be
// available to keep the hardware fed. Internal buffers are reused in place
// from frame to frame, so a session needs exactly one of each. Types that do
// not exist for the session direction count 0, and a nil session yields
// InvalidCount.
func (c *Calculator) MinCount(s *session.Session, t Type) int {
	if s == nil {
		c.log.Errorf("min count of %s: %v", t, ErrNilSession)
		return InvalidCount
	}
	switch t {
	case Input, InputMeta:
		return c.ports.InputMinCount(s)
	case Output, OutputMeta:
		return c.ports.OutputMinCount(s)
	}
	if t.Internal() && Supported(s.Direction, t) {
		return 1
	}
	return 0
}

// ExtraCount returns the number of client buffers of type t to allocate on
// top of MinCount to absorb scheduling jitter. Internal buffers never get
// extra copies.
func (c *Calculator) ExtraCount(s *session.Session, t Type) int {
	if s == nil {
		c.log.Errorf("extra count of %s: %v", t, ErrNilSession)
		return 0
	}
	switch t {
	case Input, InputMeta:
		return c.ports.InputExtraCount(s)
	case Output, OutputMeta:
		return c.ports.OutputExtraCount(s)
	}
	return 0
}
