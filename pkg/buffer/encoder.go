package buffer

import (
	"github.com/pion/vidcbuf/pkg/hfi"
	"github.com/pion/vidcbuf/pkg/session"
)

// Encoder scratch buffers are sized from the output port, the coded side of
// the session.

func (c *Calculator) encoderBinSize(in inputs) uint32 {
	s := in.s
	bin := c.provider.Encoder(s.Codec).Bin
	if bin == nil {
		return 0
	}
	f := s.Format(session.OutputPort)
	return bin(f.Width, f.Height, in.stage, in.numPipes)
}

func (c *Calculator) encoderComvSize(in inputs) uint32 {
	s := in.s
	comv := c.provider.Encoder(s.Codec).Comv
	if comv == nil {
		return 0
	}
	f := s.Format(session.OutputPort)
	numRef := hfi.ReconBufCount(s.Features.Reference, s.Codec)
	return comv(f.Width, f.Height, numRef)
}

func (c *Calculator) encoderNonComvSize(in inputs) uint32 {
	s := in.s
	nonComv := c.provider.Encoder(s.Codec).NonComv
	if nonComv == nil {
		return 0
	}
	f := s.Format(session.OutputPort)
	return nonComv(f.Width, f.Height, in.numPipes)
}

func (c *Calculator) encoderLineSize(in inputs) uint32 {
	s := in.s
	line := c.provider.Encoder(s.Codec).Line
	if line == nil {
		return 0
	}
	f := s.Format(session.OutputPort)
	return line(f.Width, f.Height, f.PixelFormat.TenBit(), in.numPipes)
}

func (c *Calculator) encoderDPBSize(in inputs) uint32 {
	s := in.s
	dpb := c.provider.Encoder(s.Codec).DPB
	if dpb == nil {
		return 0
	}
	f := s.Format(session.OutputPort)
	return dpb(f.Width, f.Height, f.PixelFormat.TenBit())
}

func (c *Calculator) encoderARPSize(inputs) uint32 {
	return c.provider.ARPSize()
}

func (c *Calculator) encoderVPSSSize(in inputs) uint32 {
	s := in.s
	f := s.Format(session.OutputPort)
	return c.provider.VPSSSize(f.Width, f.Height,
		s.Features.Downscale, s.Features.Rotate, s.Features.Flip, f.PixelFormat.TenBit())
}
