package hfi

import (
	"github.com/pion/vidcbuf/pkg/codec"
	"github.com/pion/vidcbuf/pkg/frame"
)

const (
	lcuSizeH264 = 16
	lcuSizeHEVC = 32

	workMode2 = 2

	sizeEncSliceInfo    = 256
	sizeEncStatsHist    = 4096
	sizeEncTopLineLuma  = 4
	sizeEncTopLineCrma  = 2
	sizeEncLeftPerRow   = 16
	sizeEncCtrlPerLCU   = 512
	sizeEncSAOPerLCU    = 64
	sizeEncColMVPerMB   = 16
	sizeEncColMVPerLCU  = 64
	sizeARPEnc          = 204800
	sizeVPSSLineScratch = 256
)

func init() {
	Register(codec.H264, EncoderFormulas{
		Bin:     binH264E,
		Comv:    comvH264E,
		NonComv: nonComvH264E,
		Line:    lineH264E,
		DPB:     dpbH264E,
	})
	Register(codec.HEVC, EncoderFormulas{
		Bin:     binH265E,
		Comv:    comvH265E,
		NonComv: nonComvH265E,
		Line:    lineH265E,
		DPB:     dpbH265E,
	})
}

// binEncode sizes the bitstream bins shared between the two encoder stages.
// In single stage mode a single bin per pipe holds the worst case bitstream.
func binEncode(width, height, lcuSize, stage, numPipes uint32) uint32 {
	if numPipes == 0 {
		return 0
	}
	alignedWidth := align(width, lcuSize)
	alignedHeight := align(height, lcuSize)

	area := uint64(alignedWidth) * uint64(alignedHeight)
	var bins, binSize uint64
	if stage == workMode2 {
		bitstream := (area * 3) >> 2
		if lcuSize == lcuSizeHEVC {
			bitstream = (bitstream * 5) >> 2
		}
		bins = 3
		binSize = uint64(align(satU32(bitstream*17/10), dmaAlignment))
	} else {
		bins = 1
		binSize = area * 3
	}
	perPipe := uint64(align(satU32(binSize/uint64(numPipes)), dmaAlignment))
	return satU32(uint64(align(satU32(bins*perPipe), dmaAlignment)) * uint64(numPipes))
}

func binH264E(width, height, stage, numPipes uint32) uint32 {
	return binEncode(width, height, lcuSizeH264, stage, numPipes)
}

func binH265E(width, height, stage, numPipes uint32) uint32 {
	return binEncode(width, height, lcuSizeHEVC, stage, numPipes)
}

func comvH264E(width, height, numRef uint32) uint32 {
	mbs := ((width + 15) >> 4) * ((height + 15) >> 4)
	return satU32((uint64(numRef) + 1) * uint64(align(mbs*sizeEncColMVPerMB, dmaAlignment)))
}

func comvH265E(width, height, numRef uint32) uint32 {
	lcus := ((width + 31) >> 5) * ((height + 31) >> 5)
	return satU32((uint64(numRef) + 1) * uint64(align(lcus*sizeEncColMVPerLCU, dmaAlignment)))
}

// nonComvEncode holds the per-LCU override maps, intra refresh state and
// per-pipe slice command lists.
func nonComvEncode(width, height, numPipes, lcuSize uint32) uint32 {
	if numPipes == 0 {
		return 0
	}
	lcuWidth := ceilDiv(width, lcuSize)
	lcuHeight := ceilDiv(height, lcuSize)
	lcus := lcuWidth * lcuHeight

	overrideBytes := uint32(8)
	if lcuSize == lcuSizeH264 {
		overrideBytes = 16
	}
	override := align(lcus*overrideBytes, dmaAlignment)
	intraRefresh := align((((lcus<<1)+7)&^7)*3, dmaAlignment)
	slices := align(ceilDiv(lcuHeight, numPipes)*sizeEncSliceInfo, dmaAlignment) * numPipes
	return align(override+intraRefresh+slices+sizeEncStatsHist, dmaAlignment)
}

func nonComvH264E(width, height, numPipes uint32) uint32 {
	return nonComvEncode(width, height, numPipes, lcuSizeH264)
}

func nonComvH265E(width, height, numPipes uint32) uint32 {
	return nonComvEncode(width, height, numPipes, lcuSizeHEVC)
}

// lineEncode holds the top neighbour rows of the frame and the left
// neighbour column of each pipe. Ten bit content stores 5 bytes per 4
// samples.
func lineEncode(width, height uint32, tenBit bool, numPipes, lcuSize uint32) uint32 {
	alignedWidth := align(width, lcuSize)
	alignedHeight := align(height, lcuSize)
	lcuWidth := alignedWidth / lcuSize

	topLuma := alignedWidth * sizeEncTopLineLuma
	topChroma := alignedWidth * sizeEncTopLineCrma
	left := alignedHeight * sizeEncLeftPerRow
	if tenBit {
		topLuma = (topLuma * 5) >> 2
		topChroma = (topChroma * 5) >> 2
		left = (left * 5) >> 2
	}
	size := align(topLuma, dmaAlignment) +
		align(topChroma, dmaAlignment) +
		align(left, dmaAlignment)*numPipes +
		align(lcuWidth*sizeEncCtrlPerLCU, dmaAlignment)
	if lcuSize == lcuSizeHEVC {
		size += align(lcuWidth*sizeEncSAOPerLCU, dmaAlignment)
	}
	return align(size, dmaAlignment)
}

func lineH264E(width, height uint32, tenBit bool, numPipes uint32) uint32 {
	return lineEncode(width, height, tenBit, numPipes, lcuSizeH264)
}

func lineH265E(width, height uint32, tenBit bool, numPipes uint32) uint32 {
	return lineEncode(width, height, tenBit, numPipes, lcuSizeHEVC)
}

// dpbEncode sizes one reconstructed picture in the tiled compressed layout.
func dpbEncode(width, height uint32, tenBit bool) uint32 {
	if tenBit {
		return frame.Size(frame.FormatTP10C, width, height)
	}
	return frame.Size(frame.FormatNV12C, width, height)
}

// H.264 reference pictures are always 8 bit.
func dpbH264E(width, height uint32, _ bool) uint32 {
	return dpbEncode(width, height, false)
}

func dpbH265E(width, height uint32, tenBit bool) uint32 {
	return dpbEncode(width, height, tenBit)
}

func arpEnc() uint32 {
	return sizeARPEnc
}

// vpssEnc always reserves the line scratch of the pre-processor. A full
// intermediate picture is added when it has to scale, rotate or flip.
func vpssEnc(width, height uint32, downscale, rotate, flip, tenBit bool) uint32 {
	if width == 0 || height == 0 {
		return 0
	}
	size := align(align(width, 32)/32*sizeVPSSLineScratch+align(height, 16)*32, dmaAlignment)
	if !downscale && !rotate && !flip {
		return size
	}
	w, h := width, height
	if rotate {
		w, h = height, width
	}
	f := frame.FormatNV12C
	if tenBit {
		f = frame.FormatTP10C
	}
	return size + frame.Size(f, w, h)
}
