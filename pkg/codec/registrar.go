package codec

import "strings"

var aliases = make(map[string]Codec)

func init() {
	for c, n := range names {
		if c != Unknown {
			Register(n, c)
		}
	}
	Register("avc", H264)
	Register("h265", HEVC)
	Register("vp90", VP9)
}

// Register makes a codec resolvable by Parse under an additional name.
func Register(name string, c Codec) {
	aliases[strings.ToLower(name)] = c
}

func lookup(name string) (Codec, bool) {
	c, ok := aliases[name]
	return c, ok
}
