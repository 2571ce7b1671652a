package buffer

import "github.com/pion/vidcbuf/pkg/session"

// Requirement is the negotiated need of a session for one buffer type.
type Requirement struct {
	Type       Type
	Size       uint32
	MinCount   int
	ExtraCount int
}

// Total returns the number of bytes to allocate for the buffer type.
func (r Requirement) Total() uint64 {
	return uint64(r.Size) * uint64(r.MinCount+r.ExtraCount)
}

// Requirements returns, in type order, every buffer the session needs.
// Buffers sized 0 are left out.
func (c *Calculator) Requirements(s *session.Session) []Requirement {
	if s == nil {
		c.log.Errorf("requirements: %v", ErrNilSession)
		return nil
	}
	var reqs []Requirement
	for _, t := range Types() {
		r := Requirement{
			Type:       t,
			Size:       c.Size(s, t),
			MinCount:   c.MinCount(s, t),
			ExtraCount: c.ExtraCount(s, t),
		}
		if r.Size == 0 {
			continue
		}
		reqs = append(reqs, r)
	}
	return reqs
}
