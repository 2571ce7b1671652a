package session

import (
	"fmt"
	"strings"
)

// Capability tags a value in a core or instance capability table.
type Capability int

// List of the capabilities known to this module.
const (
	// NumVPPPipes is the number of parallel video processing pipes of the core.
	NumVPPPipes Capability = iota + 1
	// MaxMBPerFrame is the largest frame, in macroblocks, the core can process.
	MaxMBPerFrame
	// Stage is the encoder work mode: one or two hardware stages.
	Stage
	// MBPF is the macroblocks-per-frame limit of a session.
	MBPF
	// FrameWidth is the largest width a session accepts.
	FrameWidth
	// FrameHeight is the largest height a session accepts.
	FrameHeight
)

var capabilityNames = map[Capability]string{
	NumVPPPipes:   "num_vpp_pipes",
	MaxMBPerFrame: "max_mbpf",
	Stage:         "stage",
	MBPF:          "mbpf",
	FrameWidth:    "frame_width",
	FrameHeight:   "frame_height",
}

func (c Capability) String() string {
	if n, ok := capabilityNames[c]; ok {
		return n
	}
	return fmt.Sprintf("capability(%d)", int(c))
}

// ParseCapability resolves the snake_case name of a capability.
func ParseCapability(name string) (Capability, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range capabilityNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("session: unknown capability %q", name)
}

// Capabilities maps capability tags to their values. A nil table means the
// owner has not been initialized yet.
type Capabilities map[Capability]uint32

// Lookup returns the value of c and whether it is present.
func (caps Capabilities) Lookup(c Capability) (uint32, bool) {
	if caps == nil {
		return 0, false
	}
	v, ok := caps[c]
	return v, ok
}

// Value returns the value of c, or 0 when it is absent.
func (caps Capabilities) Value(c Capability) uint32 {
	v, _ := caps.Lookup(c)
	return v
}

// Clone returns a copy that can be mutated independently. Cloning a nil table
// returns nil.
func (caps Capabilities) Clone() Capabilities {
	if caps == nil {
		return nil
	}
	out := make(Capabilities, len(caps))
	for k, v := range caps {
		out[k] = v
	}
	return out
}
