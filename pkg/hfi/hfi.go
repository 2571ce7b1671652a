// Package hfi holds the buffer size formulas of the video firmware interface.
//
// The formulas are grouped per codec and direction into tables of functions.
// A nil entry means the firmware has no such buffer for that codec, and
// callers treat it as a zero size. Tables are registered with Register and
// served through a Provider, so tests and other firmware generations can
// substitute their own.
package hfi

import "github.com/pion/vidcbuf/pkg/codec"

// DecoderFormulas sizes the internal buffers of a decode session.
type DecoderFormulas struct {
	Bin     func(width, height uint32, interlaced bool, vppDelay, numPipes uint32) uint32
	Comv    func(width, height, bufCount uint32) uint32
	NonComv func(width, height, numPipes uint32) uint32
	Line    func(width, height, outMinCount uint32, isOPB bool, numPipes uint32) uint32
	Persist func() uint32
}

// EncoderFormulas sizes the codec specific internal buffers of an encode
// session.
type EncoderFormulas struct {
	Bin     func(width, height, stage, numPipes uint32) uint32
	Comv    func(width, height, numRef uint32) uint32
	NonComv func(width, height, numPipes uint32) uint32
	Line    func(width, height uint32, tenBit bool, numPipes uint32) uint32
	DPB     func(width, height uint32, tenBit bool) uint32
}

// Provider serves the formula tables of one firmware generation.
type Provider interface {
	// Decoder returns the decode formulas of c. The zero value is returned
	// for codecs the firmware cannot decode.
	Decoder(c codec.Codec) DecoderFormulas
	// Encoder returns the encode formulas of c. The zero value is returned
	// for codecs the firmware cannot encode.
	Encoder(c codec.Codec) EncoderFormulas
	// ARPSize returns the size of the encoder auto reference picture buffer.
	ARPSize() uint32
	// VPSSSize returns the size of the encoder pre-processing scratch buffer.
	VPSSSize(width, height uint32, downscale, rotate, flip, tenBit bool) uint32
}
