package buffer

import (
	"math"

	"github.com/pion/vidcbuf/pkg/codec"
	"github.com/pion/vidcbuf/pkg/frame"
	"github.com/pion/vidcbuf/pkg/session"
)

// PortPolicy sizes and counts the buffers the client exchanges with the
// hardware. Implementations must tolerate sessions whose direction is
// neither decode nor encode.
type PortPolicy interface {
	InputSize(s *session.Session) uint32
	OutputSize(s *session.Session) uint32
	InputMetaSize(s *session.Session) uint32
	OutputMetaSize(s *session.Session) uint32
	InputMinCount(s *session.Session) int
	OutputMinCount(s *session.Session) int
	InputExtraCount(s *session.Session) int
	OutputExtraCount(s *session.Session) int
}

const (
	mbSize       = 16 * 16
	numMBs4K     = (4096 / 16) * (2304 / 16)
	pageSize     = 4096
	metaDataSize = 16 * 1024

	minDecInputBuffers     = 4
	minDecOutputBuffers    = 4
	minDecOutputBuffersVP9 = 9
	minEncInputBuffers     = 4
	minEncOutputBuffers    = 4

	dcvsDecExtraOutputBuffers = 4
	dcvsEncExtraInputBuffers  = 4
)

// DefaultPortPolicy sizes bitstream buffers from a macroblock budget and raw
// buffers from the padded layout of their pixel format.
type DefaultPortPolicy struct{}

// InputSize returns the bitstream budget of a decoder or the raw picture
// size of an encoder.
func (p DefaultPortPolicy) InputSize(s *session.Session) uint32 {
	switch {
	case s.IsDecode():
		return decoderBitstreamSize(s)
	case s.IsEncode():
		return rawSize(s, session.InputPort, session.OutputPort)
	}
	return 0
}

// OutputSize returns the raw picture size of a decoder or the bitstream
// budget of an encoder.
func (p DefaultPortPolicy) OutputSize(s *session.Session) uint32 {
	switch {
	case s.IsDecode():
		return rawSize(s, session.OutputPort, session.InputPort)
	case s.IsEncode():
		return encoderBitstreamSize(s)
	}
	return 0
}

// InputMetaSize returns the fixed size of an input metadata buffer.
func (p DefaultPortPolicy) InputMetaSize(s *session.Session) uint32 {
	return metaSize(s)
}

// OutputMetaSize returns the fixed size of an output metadata buffer.
func (p DefaultPortPolicy) OutputMetaSize(s *session.Session) uint32 {
	return metaSize(s)
}

// InputMinCount returns the number of input buffers the firmware queues.
func (p DefaultPortPolicy) InputMinCount(s *session.Session) int {
	switch {
	case s.IsDecode():
		return minDecInputBuffers
	case s.IsEncode():
		return minEncInputBuffers
	}
	return 0
}

// OutputMinCount returns the number of output buffers the firmware queues.
// VP9 decoding holds more reference pictures.
func (p DefaultPortPolicy) OutputMinCount(s *session.Session) int {
	switch {
	case s.IsDecode():
		if s.Codec == codec.VP9 {
			return minDecOutputBuffersVP9
		}
		return minDecOutputBuffers
	case s.IsEncode():
		return minEncOutputBuffers
	}
	return 0
}

// InputExtraCount returns the extra raw pictures given to an encoder.
func (p DefaultPortPolicy) InputExtraCount(s *session.Session) int {
	if s.IsEncode() {
		return dcvsEncExtraInputBuffers
	}
	return 0
}

// OutputExtraCount returns the extra decoded pictures given to a decoder.
func (p DefaultPortPolicy) OutputExtraCount(s *session.Session) int {
	if s.IsDecode() {
		return dcvsDecExtraOutputBuffers
	}
	return 0
}

// decoderBitstreamSize budgets a compressed frame against a 4K picture, half
// of it for H.264 and HEVC. Larger pictures get a quarter of their own raw
// size, or of the session limit when it is known.
func decoderBitstreamSize(s *session.Session) uint32 {
	f := s.Format(session.InputPort)
	mbs := uint64((f.Width+15)>>4) * uint64((f.Height+15)>>4)

	base := uint64(numMBs4K)
	div := uint64(2)
	if s.Codec == codec.VP9 {
		div = 1
	}
	if mbs > numMBs4K {
		base, div = mbs, 4
		if mbpf, ok := s.Capabilities.Lookup(session.MBPF); ok && uint64(mbpf) > mbs {
			base = uint64(mbpf)
		}
	}
	size := base * mbSize * 3 / 2 / div
	if s.Codec == codec.HEVC || s.Codec == codec.VP9 {
		size += size >> 2
	}
	if size > math.MaxUint32-pageSize {
		return math.MaxUint32 &^ (pageSize - 1)
	}
	return alignPage(uint32(size))
}

func encoderBitstreamSize(s *session.Session) uint32 {
	f := s.Format(session.OutputPort)
	if f.Width == 0 || f.Height == 0 {
		return 0
	}
	size := ((f.Width + 15) &^ 15) * ((f.Height + 15) &^ 15) * 3 / 2
	if s.Codec == codec.HEVC {
		size += size >> 2
	}
	return alignPage(size)
}

// rawSize sizes a picture buffer of port p. The dimensions of the other port
// stand in while p has not been configured yet.
func rawSize(s *session.Session, p, fallback session.Port) uint32 {
	f := s.Format(p)
	w, h := f.Width, f.Height
	if w == 0 || h == 0 {
		other := s.Format(fallback)
		w, h = other.Width, other.Height
	}
	return frame.Size(f.PixelFormat, w, h)
}

func metaSize(s *session.Session) uint32 {
	if !s.IsDecode() && !s.IsEncode() {
		return 0
	}
	return alignPage(metaDataSize)
}

func alignPage(v uint32) uint32 {
	return (v + pageSize - 1) &^ (pageSize - 1)
}
