package frame

import "strings"

// Format identifies the pixel layout of a raw port or the bitstream of a
// compressed port. The value is the V4L2 fourcc spelled as a string.
type Format string

const (
	// YUV Formats

	// FormatI420 https://www.fourcc.org/pixel-format/yuv-i420/
	FormatI420 Format = "YU12"
	// FormatNV12 https://www.fourcc.org/pixel-format/yuv-nv12/
	FormatNV12 Format = "NV12"
	// FormatNV21 https://www.fourcc.org/pixel-format/yuv-nv21/
	FormatNV21 Format = "NV21"
	// FormatP010 is NV12 with 16 bits per sample, 10 of them significant
	FormatP010 Format = "P010"
	// FormatNV12C is NV12 in the UBWC tiled and compressed layout
	FormatNV12C Format = "Q08C"
	// FormatTP10C is 10-bit 4:2:0 packed three samples per 32 bits in the
	// UBWC tiled and compressed layout
	FormatTP10C Format = "Q10C"
	// FormatYUY2 https://www.fourcc.org/pixel-format/yuv-yuy2/
	FormatYUY2 Format = "YUYV"
	// FormatUYVY https://www.fourcc.org/pixel-format/yuv-uyvy/
	FormatUYVY Format = "UYVY"

	// Compressed Formats

	// FormatH264 is an H.264 Annex B bitstream
	FormatH264 Format = "H264"
	// FormatHEVC is an H.265 Annex B bitstream
	FormatHEVC Format = "HEVC"
	// FormatVP9 is a VP9 frame stream
	FormatVP9 Format = "VP90"
	// FormatMJPEG https://www.fourcc.org/mjpg/
	FormatMJPEG Format = "MJPG"
)

// YUV aliases

// FormatYUYV is an alias of FormatYUY2
const FormatYUYV = FormatYUY2

var aliases = map[string]Format{
	"I420":   FormatI420,
	"YUV420": FormatI420,
	"AVC":    FormatH264,
	"H265":   FormatHEVC,
	"VP9":    FormatVP9,
	"MJPEG":  FormatMJPEG,
	"TP10C":  FormatTP10C,
	"NV12C":  FormatNV12C,
	"YUY2":   FormatYUY2,
}

var known = map[Format]struct{}{
	FormatI420: {}, FormatNV12: {}, FormatNV21: {}, FormatP010: {},
	FormatNV12C: {}, FormatTP10C: {}, FormatYUY2: {}, FormatUYVY: {},
	FormatH264: {}, FormatHEVC: {}, FormatVP9: {}, FormatMJPEG: {},
}

// ParseFormat resolves a fourcc or a common name, case-insensitively.
func ParseFormat(s string) (Format, bool) {
	up := strings.ToUpper(strings.TrimSpace(s))
	if f, ok := aliases[up]; ok {
		return f, true
	}
	f := Format(up)
	_, ok := known[f]
	return f, ok
}

// Fourcc returns the little-endian V4L2 pixel format code, or 0 when the
// format is not four characters long.
func (f Format) Fourcc() uint32 {
	if len(f) != 4 {
		return 0
	}
	return uint32(f[0]) | uint32(f[1])<<8 | uint32(f[2])<<16 | uint32(f[3])<<24
}

// Compressed reports whether f describes a bitstream rather than pixels.
func (f Format) Compressed() bool {
	switch f {
	case FormatH264, FormatHEVC, FormatVP9, FormatMJPEG:
		return true
	}
	return false
}

// TenBit reports whether f carries 10-bit samples.
func (f Format) TenBit() bool {
	return f == FormatP010 || f == FormatTP10C
}
