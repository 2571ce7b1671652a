package buffer

import (
	"bytes"

	"github.com/pion/logging"
	"github.com/pion/vidcbuf/pkg/codec"
	"github.com/pion/vidcbuf/pkg/frame"
	"github.com/pion/vidcbuf/pkg/hfi"
	"github.com/pion/vidcbuf/pkg/session"
)

func newTestCore() *session.Core {
	return &session.Core{Capabilities: session.Capabilities{
		session.NumVPPPipes: 4,
	}}
}

func newDecodeSession(c codec.Codec, width, height uint32, out frame.Format) *session.Session {
	s := session.New(c, session.Decode, newTestCore())
	s.Capabilities = session.Capabilities{session.Stage: 2}
	s.SetFormat(session.InputPort, session.Format{Width: width, Height: height, PixelFormat: c.Format()})
	s.SetFormat(session.OutputPort, session.Format{Width: width, Height: height, PixelFormat: out})
	return s
}

func newEncodeSession(c codec.Codec, width, height uint32, in frame.Format) *session.Session {
	s := session.New(c, session.Encode, newTestCore())
	s.Capabilities = session.Capabilities{session.Stage: 2}
	s.SetFormat(session.InputPort, session.Format{Width: width, Height: height, PixelFormat: in})
	s.SetFormat(session.OutputPort, session.Format{Width: width, Height: height, PixelFormat: c.Format()})
	return s
}

func newTestCalculator(buf *bytes.Buffer, opts ...Option) *Calculator {
	f := logging.NewDefaultLoggerFactory()
	f.Writer = buf
	f.DefaultLogLevel = logging.LogLevelTrace
	return New(append([]Option{WithLoggerFactory(f)}, opts...)...)
}

type decBinArgs struct {
	width, height   uint32
	interlaced      bool
	delay, numPipes uint32
}

type decLineArgs struct {
	width, height, count uint32
	opb                  bool
	numPipes             uint32
}

type encBinArgs struct {
	width, height, stage, numPipes uint32
}

type vpssArgs struct {
	width, height                   uint32
	downscale, rotate, flip, tenBit bool
}

// recordingProvider returns 1 from every formula and keeps the arguments of
// the last call.
type recordingProvider struct {
	decBin       decBinArgs
	decComvCount uint32
	decNonComv   [3]uint32
	decLine      decLineArgs
	encBin       encBinArgs
	encComvRef   uint32
	encLineTen   bool
	encDPBTen    bool
	encDims      [2]uint32
	vpss         vpssArgs
}

var _ hfi.Provider = (*recordingProvider)(nil)

func (p *recordingProvider) Decoder(codec.Codec) hfi.DecoderFormulas {
	return hfi.DecoderFormulas{
		Bin: func(w, h uint32, interlaced bool, delay, pipes uint32) uint32 {
			p.decBin = decBinArgs{w, h, interlaced, delay, pipes}
			return 1
		},
		Comv: func(_, _, count uint32) uint32 {
			p.decComvCount = count
			return 1
		},
		NonComv: func(w, h, pipes uint32) uint32 {
			p.decNonComv = [3]uint32{w, h, pipes}
			return 1
		},
		Line: func(w, h, count uint32, opb bool, pipes uint32) uint32 {
			p.decLine = decLineArgs{w, h, count, opb, pipes}
			return 1
		},
		Persist: func() uint32 { return 1 },
	}
}

func (p *recordingProvider) Encoder(codec.Codec) hfi.EncoderFormulas {
	return hfi.EncoderFormulas{
		Bin: func(w, h, stage, pipes uint32) uint32 {
			p.encBin = encBinArgs{w, h, stage, pipes}
			return 1
		},
		Comv: func(w, h, numRef uint32) uint32 {
			p.encDims = [2]uint32{w, h}
			p.encComvRef = numRef
			return 1
		},
		NonComv: func(uint32, uint32, uint32) uint32 { return 1 },
		Line: func(_, _ uint32, tenBit bool, _ uint32) uint32 {
			p.encLineTen = tenBit
			return 1
		},
		DPB: func(_, _ uint32, tenBit bool) uint32 {
			p.encDPBTen = tenBit
			return 1
		},
	}
}

func (p *recordingProvider) ARPSize() uint32 { return 1 }

func (p *recordingProvider) VPSSSize(w, h uint32, downscale, rotate, flip, tenBit bool) uint32 {
	p.vpss = vpssArgs{w, h, downscale, rotate, flip, tenBit}
	return 1
}
