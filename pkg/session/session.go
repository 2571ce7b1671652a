// Package session describes the state of a video hardware session as far as
// buffer negotiation needs it. The types are owned by the caller and are only
// read by the sizing code.
package session

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pion/vidcbuf/pkg/codec"
	"github.com/pion/vidcbuf/pkg/frame"
)

// DefaultBSEVPPDelay is the number of frames the bitstream engine runs ahead
// of the pixel pipe when the session does not override it.
const DefaultBSEVPPDelay uint32 = 2

// Direction tells whether a session decodes or encodes.
type Direction int

// List of the directions. DirectionUnknown matches neither path.
const (
	DirectionUnknown Direction = iota
	Decode
	Encode
)

func (d Direction) String() string {
	switch d {
	case Decode:
		return "decode"
	case Encode:
		return "encode"
	}
	return "unknown"
}

// ParseDirection resolves "decode"/"dec" or "encode"/"enc".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "decode", "dec", "decoder":
		return Decode, nil
	case "encode", "enc", "encoder":
		return Encode, nil
	}
	return DirectionUnknown, fmt.Errorf("session: unknown direction %q", s)
}

// Port selects one side of the session. The input port of a decoder carries
// the bitstream; the input port of an encoder carries raw pictures.
type Port int

// List of the ports.
const (
	InputPort Port = iota
	OutputPort
	NumPorts
)

func (p Port) String() string {
	switch p {
	case InputPort:
		return "input"
	case OutputPort:
		return "output"
	}
	return fmt.Sprintf("port(%d)", int(p))
}

// Format is the negotiated format of a port.
type Format struct {
	Width       uint32
	Height      uint32
	PixelFormat frame.Format
}

// VPPDelay overrides the decode pipeline delay when Enable is set.
type VPPDelay struct {
	Enable bool
	Size   uint32
}

// PortCount holds the buffer counts already agreed for a port.
type PortCount struct {
	MinCount   uint32
	ExtraCount uint32
}

// Counts holds the client-visible buffer counts of both ports.
type Counts struct {
	Input  PortCount
	Output PortCount
}

// RefParams describes the reference structure of an encode session, which
// determines how many reconstructed pictures the hardware keeps.
type RefParams struct {
	BFrames  uint32
	LTRCount uint32
	HPLayers uint32
	HBLayers uint32
	HybridHP bool
}

// Features carries the feature switches that feed the buffer formulas. The
// zero value is the configuration currently negotiated for every session:
// progressive content, no downscale, no rotation, no flip and a single
// reference picture.
type Features struct {
	Interlaced bool
	Downscale  bool
	Rotate     bool
	Flip       bool
	Reference  RefParams
}

// Core is the device a session runs on.
type Core struct {
	Capabilities Capabilities
}

// Session is a single decode or encode instance.
type Session struct {
	ID             uuid.UUID
	Codec          codec.Codec
	Direction      Direction
	Formats        [NumPorts]Format
	DecodeVPPDelay VPPDelay
	Buffers        Counts
	Capabilities   Capabilities
	Core           *Core
	Features       Features
}

// New returns a session bound to core with a fresh ID. Formats, counts and
// instance capabilities are left for the caller to negotiate.
func New(c codec.Codec, d Direction, core *Core) *Session {
	return &Session{
		ID:        uuid.New(),
		Codec:     c,
		Direction: d,
		Core:      core,
	}
}

// Format returns the format of port p.
func (s *Session) Format(p Port) Format {
	if p < 0 || p >= NumPorts {
		return Format{}
	}
	return s.Formats[p]
}

// SetFormat sets the format of port p.
func (s *Session) SetFormat(p Port, f Format) {
	if p < 0 || p >= NumPorts {
		return
	}
	s.Formats[p] = f
}

// PipelineDelay returns the decode pipeline delay in frames.
func (s *Session) PipelineDelay() uint32 {
	if s.DecodeVPPDelay.Enable {
		return s.DecodeVPPDelay.Size
	}
	return DefaultBSEVPPDelay
}

// IsDecode reports whether s is a decode session.
func (s *Session) IsDecode() bool { return s.Direction == Decode }

// IsEncode reports whether s is an encode session.
func (s *Session) IsEncode() bool { return s.Direction == Encode }

// String is used to tag log lines.
func (s *Session) String() string {
	return fmt.Sprintf("%s %s %s", s.ID, s.Codec, s.Direction)
}
