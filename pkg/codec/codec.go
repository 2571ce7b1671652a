// Package codec identifies the bitstream standards the video hardware
// accelerates.
package codec

import (
	"fmt"
	"strings"

	"github.com/pion/vidcbuf/pkg/frame"
)

// Codec is a video coding standard handled by the hardware.
type Codec int

// List of the supported codecs. The zero value is Unknown so a session that
// has not negotiated its codec yet matches no formula.
const (
	Unknown Codec = iota
	H264
	HEVC
	VP9
)

var names = map[Codec]string{
	Unknown: "unknown",
	H264:    "h264",
	HEVC:    "hevc",
	VP9:     "vp9",
}

func (c Codec) String() string {
	if n, ok := names[c]; ok {
		return n
	}
	return fmt.Sprintf("codec(%d)", int(c))
}

// Format returns the compressed port format carrying c.
func (c Codec) Format() frame.Format {
	switch c {
	case H264:
		return frame.FormatH264
	case HEVC:
		return frame.FormatHEVC
	case VP9:
		return frame.FormatVP9
	}
	return ""
}

// FromFormat returns the codec carried by a compressed port format.
func FromFormat(f frame.Format) Codec {
	switch f {
	case frame.FormatH264:
		return H264
	case frame.FormatHEVC:
		return HEVC
	case frame.FormatVP9:
		return VP9
	}
	return Unknown
}

// Parse resolves a codec name such as "h264", "avc", "hevc", "h265" or "vp9".
func Parse(s string) (Codec, error) {
	c, ok := lookup(strings.ToLower(strings.TrimSpace(s)))
	if !ok {
		return Unknown, fmt.Errorf("codec: unknown codec %q", s)
	}
	return c, nil
}
