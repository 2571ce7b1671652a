package hfi

import (
	"math"

	"github.com/pion/vidcbuf/pkg/codec"
	"github.com/pion/vidcbuf/pkg/session"
)

// ReconBufCount returns how many reconstructed pictures an encoder keeps for
// the given reference structure: the references plus the picture being
// reconstructed.
func ReconBufCount(p session.RefParams, c codec.Codec) uint32 {
	numRef := uint64(1)
	if p.BFrames > 0 {
		numRef = 2
	}
	if p.HPLayers > 1 {
		layers := uint64(p.HPLayers)
		switch {
		case p.HybridHP, c == codec.HEVC:
			numRef = (layers + 1) >> 1
		case c == codec.H264 && layers < 4:
			numRef = layers - 1
		default:
			numRef = layers
		}
	}
	numRef += uint64(p.LTRCount)
	if p.HBLayers > 1 {
		switch c {
		case codec.HEVC:
			numRef = uint64(p.HBLayers)
		case codec.H264:
			numRef = math.MaxUint32
			if p.HBLayers-2 < 32 {
				numRef = 1<<(p.HBLayers-2) + 1
			}
		}
	}
	return satU32(numRef + 1)
}
