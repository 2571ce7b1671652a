package frame

// frameSizeMap returns the function computing the number of bytes a frame
// occupies in the given format, including the stride and scanline padding the
// video hardware requires.
var frameSizeMap = map[Format]frameSizeFunc{
	FormatI420:  frameSizeNV12, // I420 and NV12 carry the same planes
	FormatNV12:  frameSizeNV12,
	FormatNV21:  frameSizeNV12, // NV12 and NV21 have the same frame size
	FormatP010:  frameSizeP010,
	FormatNV12C: frameSizeNV12UBWC,
	FormatTP10C: frameSizeTP10UBWC,
	FormatYUY2:  frameSizeYUY2,
	FormatUYVY:  frameSizeYUY2, // UYVY and YUY2 have the same frame size
}

type frameSizeFunc func(width, height uint32) uint32

const (
	pageSize       = 4096
	lumaStrideNV12 = 128
	strideP010     = 256
	scanlinesLuma  = 32
	scanlinesUV    = 16
	ubwcMetaStride = 64
	ubwcMetaScan   = 16
)

// Size returns the padded size in bytes of one raw frame. Compressed and
// unknown formats report 0 since their size cannot be derived from the
// resolution alone.
func Size(f Format, width, height uint32) uint32 {
	fn, ok := frameSizeMap[f]
	if !ok || width == 0 || height == 0 {
		return 0
	}
	return fn(width, height)
}

// Stride returns the padded luma stride in bytes for the given format.
func Stride(f Format, width uint32) uint32 {
	switch f {
	case FormatP010:
		return align(width*2, strideP010)
	case FormatTP10C:
		return align(align(width, 192)*4/3, strideP010)
	case FormatYUY2, FormatUYVY:
		return align(width*2, lumaStrideNV12)
	case FormatI420, FormatNV12, FormatNV21, FormatNV12C:
		return align(width, lumaStrideNV12)
	}
	return 0
}

func frameSizeNV12(width, height uint32) uint32 {
	stride := Stride(FormatNV12, width)
	y := stride * align(height, scanlinesLuma)
	uv := stride * align((height+1)>>1, scanlinesUV)
	return align(y+uv, pageSize)
}

func frameSizeP010(width, height uint32) uint32 {
	stride := Stride(FormatP010, width)
	y := stride * align(height, scanlinesLuma)
	uv := stride * align((height+1)>>1, scanlinesUV)
	return align(y+uv, pageSize)
}

func frameSizeYUY2(width, height uint32) uint32 {
	return align(Stride(FormatYUY2, width)*align(height, scanlinesLuma), pageSize)
}

func frameSizeNV12UBWC(width, height uint32) uint32 {
	stride := Stride(FormatNV12C, width)
	y := align(stride*align(height, scanlinesLuma), pageSize)
	uv := align(stride*align((height+1)>>1, scanlinesLuma), pageSize)
	yMeta := align(align(ceilDiv(width, 32), ubwcMetaStride)*align(ceilDiv(height, 8), ubwcMetaScan), pageSize)
	uvMeta := align(align(ceilDiv((width+1)>>1, 16), ubwcMetaStride)*align(ceilDiv((height+1)>>1, 8), ubwcMetaScan), pageSize)
	return y + uv + yMeta + uvMeta
}

func frameSizeTP10UBWC(width, height uint32) uint32 {
	stride := Stride(FormatTP10C, width)
	y := align(stride*align(height, scanlinesUV), pageSize)
	uv := align(stride*align((height+1)>>1, scanlinesUV), pageSize)
	yMeta := align(align(ceilDiv(width, 48), ubwcMetaStride)*align(ceilDiv(height, 4), ubwcMetaScan), pageSize)
	uvMeta := align(align(ceilDiv((width+1)>>1, 24), ubwcMetaStride)*align(ceilDiv((height+1)>>1, 4), ubwcMetaScan), pageSize)
	return y + uv + yMeta + uvMeta
}

func align(v, a uint32) uint32 {
	return (v + a - 1) / a * a
}

func ceilDiv(v, d uint32) uint32 {
	return (v + d - 1) / d
}
