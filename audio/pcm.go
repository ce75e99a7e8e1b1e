package audio

import (
	"encoding/binary"

	"github.com/chewxy/math32"
)

// SampleWidth is the size in bytes of a s16le sample.
const SampleWidth = 2

// BytesToInt16 decodes little endian 16 bit samples from src into dst and
// returns the number of samples decoded.
func BytesToInt16(dst []int16, src []byte) int {
	n := len(src) / SampleWidth
	if len(dst) < n {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		dst[i] = int16(binary.LittleEndian.Uint16(src[SampleWidth*i:]))
	}
	return n
}

// Int16ToBytes encodes samples from src as little endian 16 bit into dst and
// returns the number of samples encoded.
func Int16ToBytes(dst []byte, src []int16) int {
	n := len(dst) / SampleWidth
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint16(dst[SampleWidth*i:], uint16(src[i]))
	}
	return n
}

// Float32ToBytes converts normalized samples into s16le. Samples outside
// of [-1, 1] are clipped. The number of converted samples is returned.
func Float32ToBytes(dst []byte, src []float32) int {
	n := len(dst) / SampleWidth
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint16(dst[SampleWidth*i:], uint16(floatToInt16(src[i])))
	}
	return n
}

// BytesToFloat32 converts s16le samples into normalized float32 samples and
// returns the number of converted samples.
func BytesToFloat32(dst []float32, src []byte) int {
	n := len(src) / SampleWidth
	if len(dst) < n {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		dst[i] = float32(int16(binary.LittleEndian.Uint16(src[SampleWidth*i:]))) / 32768
	}
	return n
}

func floatToInt16(s float32) int16 {
	v := math32.Floor(s*32768 + 0.5)
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}
