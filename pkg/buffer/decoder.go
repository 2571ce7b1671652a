package buffer

import (
	"math"

	"github.com/pion/vidcbuf/pkg/frame"
	"github.com/pion/vidcbuf/pkg/session"
)

// Decoder scratch buffers track the resolution of the bitstream, so they are
// sized from the input port even when they serve the output side.

func (c *Calculator) decoderBinSize(in inputs) uint32 {
	s := in.s
	bin := c.provider.Decoder(s.Codec).Bin
	if bin == nil {
		return 0
	}
	f := s.Format(session.InputPort)
	return bin(f.Width, f.Height, s.Features.Interlaced, s.PipelineDelay(), in.numPipes)
}

func (c *Calculator) decoderComvSize(in inputs) uint32 {
	s := in.s
	comv := c.provider.Decoder(s.Codec).Comv
	if comv == nil {
		return 0
	}
	f := s.Format(session.InputPort)
	return comv(f.Width, f.Height, effectiveOutputMinCount(s))
}

func (c *Calculator) decoderNonComvSize(in inputs) uint32 {
	s := in.s
	nonComv := c.provider.Decoder(s.Codec).NonComv
	if nonComv == nil {
		return 0
	}
	f := s.Format(session.InputPort)
	return nonComv(f.Width, f.Height, in.numPipes)
}

func (c *Calculator) decoderLineSize(in inputs) uint32 {
	s := in.s
	line := c.provider.Decoder(s.Codec).Line
	if line == nil {
		return 0
	}
	f := s.Format(session.InputPort)
	return line(f.Width, f.Height, effectiveOutputMinCount(s), isOPB(s), in.numPipes)
}

func (c *Calculator) decoderPersistSize(in inputs) uint32 {
	persist := c.provider.Decoder(in.s.Codec).Persist
	if persist == nil {
		return 0
	}
	return persist()
}

// effectiveOutputMinCount covers every picture in flight in the pipeline, even
// when the client asked for fewer output buffers.
func effectiveOutputMinCount(s *session.Session) uint32 {
	count := s.PipelineDelay()
	if count < math.MaxUint32 {
		count++
	}
	if s.Buffers.Output.MinCount > count {
		count = s.Buffers.Output.MinCount
	}
	return count
}

// isOPB reports whether the decoder writes a linear output picture, which
// routes pixels through the post-processor line buffers.
func isOPB(s *session.Session) bool {
	f := s.Format(session.OutputPort).PixelFormat
	return f == frame.FormatNV12 || f == frame.FormatP010
}
