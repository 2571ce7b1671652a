package hfi

import "github.com/pion/vidcbuf/pkg/codec"

const (
	h264CabacHdrRatio = 1
	h264CabacResRatio = 3
	h265CabacHdrRatio = 2
	h265CabacResRatio = 2

	vpxBinHdrBudget   = 1
	vpxBinResBudget   = 3
	vpxBinDenominator = 2
	vpxConcurrency    = 2

	h264dMaxSlice         = 1800
	sizeH264DBufTab       = 256
	sizeH264DHWPic        = 1 << 11
	sizeH264DBSECmdPerBuf = 32 * 4
	sizeH264DVPPCmdPerBuf = 512

	h265dMaxSlice         = 600
	sizeH265DHWPic        = 1 << 14
	sizeH265DBSECmdPerBuf = 16 * 4
	sizeH265DVPPCmdPerBuf = 256
	hdr10HistExtradata    = 4 * 1024

	lbFENbrDataLuma   = 17
	lbFENbrCtrlLCU64  = 64
	lbSENbrCtrlLCU64  = 192
	lbPENbrDataLCU64  = 384
	lbFENbrCtrlLCU16  = 64
	lbSENbrCtrlLCU16  = 128
	lbPENbrDataLCU16  = 96
	lbVSPTopPerLCU16  = 128
	lbReconDMAPerRow  = 32
	lbQPPerLCU64      = 128
	lbSAOPerLCU64     = 256
	lbVP9LoopFilter   = 9 * 64
	lbVP9SegmentLCU64 = 16

	sizeSlistBufH264 = 512
	numSlistBufH264  = 64
	sizeSlistBufH265 = 1 << 10
	numSlistBufH265  = 80 + 20
	h265NumTile      = 32*128 + 1

	vp9NumProbTables     = 4 + 1
	vp9ProbTableSize     = 3840
	vp9MaxComvSize       = ((8192 + 63) >> 6) * ((4320 + 63) >> 6) * 8 * 8 * 2 * 8
	vp9MaxSuperframeHdr  = 34
	vp9UDCHeaderBufSize  = 3 * 128
	vp9NumFrameInfoBufs  = 32
	vp9CCETileOffsetSize = 32 * 4 * 4
)

func init() {
	Register(codec.H264, DecoderFormulas{
		Bin:     binH264D,
		Comv:    comvH264D,
		NonComv: nonComvH264D,
		Line:    lineH264D,
		Persist: persistH264D,
	})
	Register(codec.HEVC, DecoderFormulas{
		Bin:     binH265D,
		Comv:    comvH265D,
		NonComv: nonComvH265D,
		Line:    lineH265D,
		Persist: persistH265D,
	})
	Register(codec.VP9, DecoderFormulas{
		Bin:     binVP9D,
		Line:    lineVP9D,
		Persist: persistVP9D,
	})
}

// binDecode splits the parsed bitstream between header and residual bins,
// scaled by how many frames the bitstream engine runs ahead.
func binDecode(width, height, delay, numPipes, hdrRatio, resRatio uint32) uint32 {
	yuv := (width * height * 3) >> 1
	if width*height <= binBufferThreshold {
		yuv = (binBufferThreshold * 3) >> 1
	}
	depth := uint64((delay&31)/10 + 2)
	hdr := uint64(yuv) * uint64(hdrRatio) * depth / 2
	res := uint64(yuv) * uint64(resRatio) * depth / 2
	hdr = uint64(align(satU32(hdr/uint64(numPipes)), dmaAlignment)) * uint64(numPipes)
	res = uint64(align(satU32(res/uint64(numPipes)), dmaAlignment)) * uint64(numPipes)
	return satU32(hdr + res)
}

func binH264D(width, height uint32, interlaced bool, delay, numPipes uint32) uint32 {
	if interlaced || numPipes == 0 {
		return 0
	}
	return binDecode(align(width, 16), align(height, 16), delay, numPipes,
		h264CabacHdrRatio, h264CabacResRatio)
}

func binH265D(width, height uint32, _ bool, delay, numPipes uint32) uint32 {
	if numPipes == 0 {
		return 0
	}
	return binDecode(align(width, 16), align(height, 16), delay, numPipes,
		h265CabacHdrRatio, h265CabacResRatio)
}

func binVP9D(width, height uint32, interlaced bool, _, numPipes uint32) uint32 {
	if interlaced || numPipes == 0 {
		return 0
	}
	yuv := align(width, 16) * align(height, 16) * 3 / 2
	yuv = maxU32(yuv, (binBufferThreshold*3)>>1)
	hdr := align(yuv*vpxBinHdrBudget/vpxBinDenominator*vpxConcurrency/numPipes, dmaAlignment)
	res := align(yuv*vpxBinResBudget/vpxBinDenominator*vpxConcurrency/numPipes, dmaAlignment)
	return (hdr + res) * numPipes
}

func comvH264D(width, height, bufCount uint32) uint32 {
	mbWidth := (width + 15) >> 4
	mbHeight := (height + 15) >> 4
	colMVWidth := align(mbWidth<<7, 16)
	colZeroWidth := align(mbWidth<<2, 16)

	colZero := align(colZeroWidth*((mbHeight+1)>>1), 64) << 1
	colZero = align(colZero, 512)
	colloc := align(colMVWidth*((mbHeight+1)>>1), 64) << 1
	colloc = align(colloc, 512)
	colloc += colZero + sizeH264DBufTab*2
	return satU32(uint64(colloc)*uint64(bufCount) + 512)
}

func comvH265D(width, height, bufCount uint32) uint32 {
	size := align((((width+15)>>4)*((height+15)>>4))<<8, 512)
	return satU32(uint64(size)*uint64(bufCount) + 512)
}

func nonComvH264D(_, height, _ uint32) uint32 {
	rows := ((align(height, 32) + 15) >> 4) * 48
	slices := minU32(rows, h264dMaxSlice)
	bse := slices * sizeH264DBSECmdPerBuf
	vpp := minU32(slices*sizeH264DVPPCmdPerBuf, vppCmdMaxSize)
	size := align(bse, dmaAlignment) +
		align(vpp, dmaAlignment) +
		align(numHWPicBuf*sizeH264DHWPic, dmaAlignment)
	return align(size, dmaAlignment)
}

func nonComvH265D(width, height, _ uint32) uint32 {
	lcus := (align(width, lcuMaxSizePels) / lcuMinSizePels) *
		(align(height, lcuMaxSizePels) / lcuMinSizePels)
	slices := minU32(lcus, h265dMaxSlice+1)
	bse := slices * sizeH265DBSECmdPerBuf
	vpp := minU32(slices*sizeH265DVPPCmdPerBuf, vppCmdMaxSize)
	size := align(bse, dmaAlignment) +
		align(vpp, dmaAlignment) +
		align(numHWPicBuf*20*22*4, dmaAlignment) +
		align(2*2*lcus, dmaAlignment) +
		align(numHWPicBuf*sizeH265DHWPic, dmaAlignment) +
		hdr10HistExtradata
	return align(size, dmaAlignment)
}

func lineH264D(width, height, _ uint32, isOPB bool, numPipes uint32) uint32 {
	mbWidth := (width + 15) >> 4
	mbHeight := (height + 15) >> 4
	size := align(lbFENbrDataLuma*align(width, 16)*3, dmaAlignment) +
		align(lbFENbrCtrlLCU16*mbWidth, dmaAlignment) +
		align(lbFENbrCtrlLCU16*mbHeight, dmaAlignment)*numPipes +
		align(lbSENbrCtrlLCU16*mbWidth, dmaAlignment) +
		align(lbSENbrCtrlLCU16*mbHeight, dmaAlignment)*numPipes +
		align(lbPENbrDataLCU16*mbWidth, dmaAlignment) +
		align(mbWidth*lbVSPTopPerLCU16, dmaAlignment) +
		align(align(height, 16)*lbReconDMAPerRow, dmaAlignment)*2 +
		align(((width+63)>>6)*((height+63)>>6)*lbQPPerLCU64, dmaAlignment)
	size = align(size, dmaAlignment)
	if isOPB {
		size += vpssLineBuffer(width, height, numPipes)
	}
	return align(size, dmaAlignment)
}

func lineH265D(width, height, _ uint32, isOPB bool, numPipes uint32) uint32 {
	ctbWidth := (width + 63) >> 6
	ctbHeight := (height + 63) >> 6
	size := align(lbFENbrDataLuma*align(width, 64)*3, dmaAlignment) +
		align(lbFENbrCtrlLCU64*ctbWidth, dmaAlignment) +
		align(lbFENbrCtrlLCU64*ctbHeight, dmaAlignment)*numPipes +
		align(lbSENbrCtrlLCU64*ctbWidth, dmaAlignment) +
		align(lbSENbrCtrlLCU64*ctbHeight, dmaAlignment)*numPipes +
		align(lbPENbrDataLCU64*ctbWidth, dmaAlignment) +
		align(lbSAOPerLCU64*ctbWidth, dmaAlignment) +
		align(align(height, 64)*lbReconDMAPerRow, dmaAlignment)*2 +
		align(ctbWidth*ctbHeight*lbQPPerLCU64, dmaAlignment)
	size = align(size, dmaAlignment)
	if isOPB {
		size += vpssLineBuffer(width, height, numPipes)
	}
	return align(size, dmaAlignment)
}

func lineVP9D(width, height, _ uint32, isOPB bool, numPipes uint32) uint32 {
	sbWidth := (width + 63) >> 6
	sbHeight := (height + 63) >> 6
	size := align(lbFENbrDataLuma*align(width, 64)*3, dmaAlignment) +
		align(lbFENbrCtrlLCU64*sbWidth, dmaAlignment) +
		align(lbFENbrCtrlLCU64*sbHeight, dmaAlignment)*numPipes +
		align(lbSENbrCtrlLCU64*sbWidth, dmaAlignment) +
		align(lbSENbrCtrlLCU64*sbHeight, dmaAlignment)*numPipes +
		align(lbVP9LoopFilter*sbWidth, dmaAlignment) +
		align(lbVP9SegmentLCU64*sbWidth*sbHeight, dmaAlignment) +
		align(align(height, 64)*lbReconDMAPerRow, dmaAlignment)*2
	size = align(size, dmaAlignment)
	if isOPB {
		size += vpssLineBuffer(width, height, numPipes)
	}
	return align(size, dmaAlignment)
}

func persistH264D() uint32 {
	return align(sizeSlistBufH264*numSlistBufH264+numHWPicBuf*sizeSEIUserdata, dmaAlignment)
}

func persistH265D() uint32 {
	return align(sizeSlistBufH265*numSlistBufH265+h265NumTile*4+numHWPicBuf*sizeSEIUserdata, dmaAlignment)
}

func persistVP9D() uint32 {
	return align(vp9NumProbTables*vp9ProbTableSize, dmaAlignment) +
		align(vp9MaxComvSize, dmaAlignment) +
		align(vp9MaxSuperframeHdr, dmaAlignment) +
		align(vp9UDCHeaderBufSize, dmaAlignment) +
		align(vp9NumFrameInfoBufs*align(vp9CCETileOffsetSize, 32), dmaAlignment)
}
