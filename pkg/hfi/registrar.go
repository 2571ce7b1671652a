package hfi

import "github.com/pion/vidcbuf/pkg/codec"

var (
	decoders = make(map[codec.Codec]DecoderFormulas)
	encoders = make(map[codec.Codec]EncoderFormulas)
)

// Register installs the formula table of codec c. formulas must be a
// DecoderFormulas or an EncoderFormulas; other values are ignored.
// Registration is meant to happen from init functions.
func Register(c codec.Codec, formulas interface{}) {
	switch f := formulas.(type) {
	case DecoderFormulas:
		decoders[c] = f
	case EncoderFormulas:
		encoders[c] = f
	}
}

type iris2 struct{}

// Iris2 returns the provider backed by the registered tables.
func Iris2() Provider {
	return iris2{}
}

func (iris2) Decoder(c codec.Codec) DecoderFormulas {
	return decoders[c]
}

func (iris2) Encoder(c codec.Codec) EncoderFormulas {
	return encoders[c]
}

func (iris2) ARPSize() uint32 {
	return arpEnc()
}

func (iris2) VPSSSize(width, height uint32, downscale, rotate, flip, tenBit bool) uint32 {
	return vpssEnc(width, height, downscale, rotate, flip, tenBit)
}
