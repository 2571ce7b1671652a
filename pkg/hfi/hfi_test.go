package hfi

import (
	"math"
	"testing"

	"github.com/pion/vidcbuf/pkg/codec"
	"github.com/pion/vidcbuf/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pipes = 4

type resolution struct{ width, height uint32 }

var (
	res720p  = resolution{1280, 720}
	res1080p = resolution{1920, 1080}
	res4K    = resolution{3840, 2160}
)

func TestDecoderFormulasPositive(t *testing.T) {
	p := Iris2()
	for _, c := range []codec.Codec{codec.H264, codec.HEVC, codec.VP9} {
		f := p.Decoder(c)
		for _, r := range []resolution{{16, 16}, res720p, res1080p, res4K} {
			assert.Greater(t, f.Bin(r.width, r.height, false, 2, pipes), uint32(0), "%s bin %v", c, r)
			assert.Greater(t, f.Line(r.width, r.height, 3, false, pipes), uint32(0), "%s line %v", c, r)
			if c != codec.VP9 {
				assert.Greater(t, f.Comv(r.width, r.height, 3), uint32(0), "%s comv %v", c, r)
				assert.Greater(t, f.NonComv(r.width, r.height, pipes), uint32(0), "%s non comv %v", c, r)
			}
		}
		assert.Greater(t, f.Persist(), uint32(0), c.String())
	}
}

func TestDecoderVP9HasNoMotionVectorBuffers(t *testing.T) {
	f := Iris2().Decoder(codec.VP9)
	assert.Nil(t, f.Comv)
	assert.Nil(t, f.NonComv)
}

func TestUnknownCodecHasNoFormulas(t *testing.T) {
	p := Iris2()
	assert.Nil(t, p.Decoder(codec.Unknown).Bin)
	assert.Nil(t, p.Decoder(codec.Unknown).Persist)
	assert.Nil(t, p.Encoder(codec.VP9).Bin)
	assert.Nil(t, p.Encoder(codec.Unknown).DPB)
}

func TestDecoderFormulasMonotonic(t *testing.T) {
	p := Iris2()
	steps := []resolution{{176, 144}, {640, 480}, res720p, res1080p, {2560, 1440}, res4K, {7680, 4320}}
	for _, c := range []codec.Codec{codec.H264, codec.HEVC, codec.VP9} {
		f := p.Decoder(c)
		for i := 1; i < len(steps); i++ {
			a, b := steps[i-1], steps[i]
			assert.GreaterOrEqual(t, f.Bin(b.width, b.height, false, 2, pipes), f.Bin(a.width, a.height, false, 2, pipes), "%s bin %v", c, b)
			assert.GreaterOrEqual(t, f.Line(b.width, b.height, 3, true, pipes), f.Line(a.width, a.height, 3, true, pipes), "%s line %v", c, b)
			if f.NonComv != nil {
				assert.GreaterOrEqual(t, f.NonComv(b.width, b.height, pipes), f.NonComv(a.width, a.height, pipes), "%s non comv %v", c, b)
				assert.GreaterOrEqual(t, f.Comv(b.width, b.height, 5), f.Comv(a.width, a.height, 5), "%s comv %v", c, b)
			}
		}
	}
}

func TestDecoderBinInterlaced(t *testing.T) {
	f := Iris2().Decoder(codec.H264)
	assert.Zero(t, f.Bin(1920, 1080, true, 2, pipes))

	hevc := Iris2().Decoder(codec.HEVC)
	assert.Equal(t, hevc.Bin(1920, 1080, false, 2, pipes), hevc.Bin(1920, 1080, true, 2, pipes))
}

func TestDecoderBinDelay(t *testing.T) {
	f := Iris2().Decoder(codec.H264)
	assert.Greater(t, f.Bin(1920, 1080, false, 10, pipes), f.Bin(1920, 1080, false, 2, pipes))
}

func TestDecoderComvScalesWithCount(t *testing.T) {
	for _, c := range []codec.Codec{codec.H264, codec.HEVC} {
		f := Iris2().Decoder(c)
		three := f.Comv(1920, 1080, 3)
		five := f.Comv(1920, 1080, 5)
		assert.Equal(t, (three-512)/3*5+512, five, c.String())
	}
}

func TestDecoderLineOPB(t *testing.T) {
	for _, c := range []codec.Codec{codec.H264, codec.HEVC, codec.VP9} {
		f := Iris2().Decoder(c)
		assert.Greater(t, f.Line(1920, 1080, 3, true, pipes), f.Line(1920, 1080, 3, false, pipes), c.String())
	}
}

func TestZeroPipes(t *testing.T) {
	p := Iris2()
	assert.Zero(t, p.Decoder(codec.H264).Bin(1920, 1080, false, 2, 0))
	assert.Zero(t, p.Decoder(codec.VP9).Bin(1920, 1080, false, 2, 0))
	assert.Zero(t, p.Encoder(codec.HEVC).Bin(1920, 1080, 2, 0))
	assert.Zero(t, p.Encoder(codec.HEVC).NonComv(1920, 1080, 0))
}

func TestPersistSizes(t *testing.T) {
	p := Iris2()
	assert.Equal(t, uint32(512*64+32*4096), p.Decoder(codec.H264).Persist())
	assert.Greater(t, p.Decoder(codec.VP9).Persist(), p.Decoder(codec.H264).Persist())
}

func TestEncoderFormulas(t *testing.T) {
	p := Iris2()
	steps := []resolution{{176, 144}, res720p, res1080p, res4K}
	for _, c := range []codec.Codec{codec.H264, codec.HEVC} {
		f := p.Encoder(c)
		for i, r := range steps {
			for _, stage := range []uint32{1, 2} {
				assert.Greater(t, f.Bin(r.width, r.height, stage, pipes), uint32(0), "%s bin %v", c, r)
			}
			assert.Greater(t, f.Comv(r.width, r.height, 2), uint32(0), "%s comv %v", c, r)
			assert.Greater(t, f.NonComv(r.width, r.height, pipes), uint32(0), "%s non comv %v", c, r)
			assert.Greater(t, f.Line(r.width, r.height, false, pipes), uint32(0), "%s line %v", c, r)
			assert.Greater(t, f.DPB(r.width, r.height, false), uint32(0), "%s dpb %v", c, r)
			if i == 0 {
				continue
			}
			prev := steps[i-1]
			assert.GreaterOrEqual(t, f.Bin(r.width, r.height, 2, pipes), f.Bin(prev.width, prev.height, 2, pipes))
			assert.GreaterOrEqual(t, f.NonComv(r.width, r.height, pipes), f.NonComv(prev.width, prev.height, pipes))
			assert.GreaterOrEqual(t, f.Line(r.width, r.height, true, pipes), f.Line(prev.width, prev.height, true, pipes))
		}
		assert.Greater(t, f.Line(1920, 1080, true, pipes), f.Line(1920, 1080, false, pipes), c.String())
	}
}

func TestEncoderDPBBitDepth(t *testing.T) {
	p := Iris2()
	h264 := p.Encoder(codec.H264)
	assert.Equal(t, h264.DPB(1920, 1080, false), h264.DPB(1920, 1080, true))

	hevc := p.Encoder(codec.HEVC)
	assert.Greater(t, hevc.DPB(1920, 1080, true), hevc.DPB(1920, 1080, false))
}

func TestARPAndVPSS(t *testing.T) {
	p := Iris2()
	assert.Equal(t, uint32(204800), p.ARPSize())

	plain := p.VPSSSize(1920, 1080, false, false, false, false)
	assert.Greater(t, plain, uint32(0))
	assert.Greater(t, p.VPSSSize(1920, 1080, true, false, false, false), plain)
	assert.Greater(t, p.VPSSSize(1920, 1080, false, true, false, false), plain)
	assert.Greater(t, p.VPSSSize(1920, 1080, false, false, true, true), p.VPSSSize(1920, 1080, false, false, true, false))
	assert.Zero(t, p.VPSSSize(0, 1080, true, false, false, false))
}

func TestReconBufCount(t *testing.T) {
	cases := []struct {
		name     string
		params   session.RefParams
		codec    codec.Codec
		expected uint32
	}{
		{"Default", session.RefParams{}, codec.H264, 2},
		{"DefaultHEVC", session.RefParams{}, codec.HEVC, 2},
		{"BFrames", session.RefParams{BFrames: 1}, codec.H264, 3},
		{"LTR", session.RefParams{LTRCount: 2}, codec.HEVC, 4},
		{"HPLayersHEVC", session.RefParams{HPLayers: 4}, codec.HEVC, 3},
		{"HPLayersAVCSmall", session.RefParams{HPLayers: 3}, codec.H264, 3},
		{"HPLayersAVCLarge", session.RefParams{HPLayers: 5}, codec.H264, 6},
		{"HybridHP", session.RefParams{HPLayers: 5, HybridHP: true}, codec.H264, 4},
		{"HBLayersHEVC", session.RefParams{HBLayers: 3}, codec.HEVC, 4},
		{"HBLayersAVC", session.RefParams{HBLayers: 4}, codec.H264, 6},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, ReconBufCount(tc.params, tc.codec), tc.name)
	}
}

func TestRegister(t *testing.T) {
	const custom = codec.Codec(99)
	defer func() {
		delete(decoders, custom)
		delete(encoders, custom)
	}()

	Register(custom, DecoderFormulas{Persist: func() uint32 { return 42 }})
	Register(custom, EncoderFormulas{DPB: func(uint32, uint32, bool) uint32 { return 7 }})
	Register(custom, "ignored")

	p := Iris2()
	require.NotNil(t, p.Decoder(custom).Persist)
	assert.Equal(t, uint32(42), p.Decoder(custom).Persist())
	require.NotNil(t, p.Encoder(custom).DPB)
	assert.Equal(t, uint32(7), p.Encoder(custom).DPB(1, 1, false))
}

func TestAlign(t *testing.T) {
	assert.Equal(t, uint32(256), align(1, 256))
	assert.Equal(t, uint32(256), align(256, 256))
	assert.Equal(t, uint32(384), align(200, 192))
	assert.Equal(t, uint32(0), align(0, 64))
	assert.Equal(t, uint32(math.MaxUint32), align(math.MaxUint32-10, 256))
}

func TestLargeInputsSaturate(t *testing.T) {
	p := Iris2()
	const side = 16384

	for _, c := range []codec.Codec{codec.H264, codec.HEVC} {
		dec := p.Decoder(c)
		assert.GreaterOrEqual(t, dec.Bin(side, side, false, 31, pipes), dec.Bin(side, side, false, 2, pipes), c.String())
		assert.Equal(t, uint32(math.MaxUint32), dec.Comv(side, side, math.MaxUint32), c.String())
		assert.GreaterOrEqual(t, dec.Comv(side, side, 64), dec.Comv(1920, 1080, 64), c.String())

		enc := p.Encoder(c)
		assert.Equal(t, uint32(math.MaxUint32), enc.Comv(side, side, math.MaxUint32), c.String())
		for _, stage := range []uint32{1, 2} {
			assert.GreaterOrEqual(t, enc.Bin(side, side, stage, 1), enc.Bin(res4K.width, res4K.height, stage, 1), c.String())
		}
	}
}

func TestReconBufCountSaturates(t *testing.T) {
	assert.Equal(t, uint32(math.MaxUint32), ReconBufCount(session.RefParams{LTRCount: math.MaxUint32}, codec.HEVC))
	assert.Equal(t, uint32(math.MaxUint32), ReconBufCount(session.RefParams{HBLayers: 40}, codec.H264))
	assert.Equal(t, uint32(math.MaxUint32), ReconBufCount(session.RefParams{HBLayers: math.MaxUint32}, codec.HEVC))
}
