package hfi

import "math"

const (
	dmaAlignment       = 256
	numHWPicBuf        = 32
	binBufferThreshold = 1280 * 736
	sizeSEIUserdata    = 4096
	maxTileColumns     = 32
	lcuMaxSizePels     = 64
	lcuMinSizePels     = 16
	vppCmdMaxSize      = 1 << 20
)

func align(v, a uint32) uint32 {
	return satU32((uint64(v) + uint64(a) - 1) / uint64(a) * uint64(a))
}

func ceilDiv(v, d uint32) uint32 {
	return (v + d - 1) / d
}

// satU32 narrows v, clamping to the largest uint32 instead of wrapping.
func satU32(v uint64) uint32 {
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}

func maxU32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

func minU32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}

// vpssLineBuffer is the line storage of the pixel post processor when it
// writes a linear output picture.
func vpssLineBuffer(width, height, numPipes uint32) uint32 {
	const macrotiling = 32
	lumaTop := align(width, macrotiling) / macrotiling * 256
	lumaTop = align(lumaTop, dmaAlignment) + (maxTileColumns-1)*256
	lumaTop = maxU32(lumaTop, 32*align(height, 16))
	chromaTop := lumaTop
	llb := align(align(height, 16)/2*64, 32)
	left := align(height, 16) * 8
	return lumaTop + chromaTop + 2*llb + numPipes*left
}
