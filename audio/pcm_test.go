package audio

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt16Bytes(t *testing.T) {

	in := []int16{5, -5, 12, 4, 48, 12, 37, -12, 32767, -32768}
	b := make([]byte, len(in)*SampleWidth)

	require.Equal(t, len(in), Int16ToBytes(b, in))
	assert.Equal(t, []byte{5, 0, 0xfb, 0xff}, b[:4])

	out := make([]int16, len(in))
	require.Equal(t, len(in), BytesToInt16(out, b))
	assert.Equal(t, in, out)

	// destination limits the amount of samples
	assert.Equal(t, 2, BytesToInt16(make([]int16, 2), b))
	assert.Equal(t, 1, Int16ToBytes(make([]byte, 3), in))
}

func TestFloat32Bytes(t *testing.T) {

	in := []float32{0, 0.5, -0.5, 1.5, -1.5}
	b := make([]byte, len(in)*SampleWidth)
	require.Equal(t, len(in), Float32ToBytes(b, in))

	s := make([]int16, len(in))
	BytesToInt16(s, b)
	assert.Equal(t, []int16{0, 16384, -16384, 32767, -32768}, s)

	out := make([]float32, len(in))
	require.Equal(t, len(in), BytesToFloat32(out, b))
	assert.InDelta(t, 0.5, out[1], 1e-4)
	assert.InDelta(t, -1.0, out[4], 1e-4)
}

func TestAdjustChannels(t *testing.T) {
	mono := []float32{0.1, 0.2, 0.3}

	stereo := AdjustChannels(1, 2, mono)
	assert.Equal(t, []float32{0.1, 0.1, 0.2, 0.2, 0.3, 0.3}, stereo)

	back := AdjustChannels(2, 1, []float32{0.2, 0.4, -1, 1})
	assert.InDeltaSlice(t, []float32{0.3, 0}, back, 1e-6)

	assert.Equal(t, mono, AdjustChannels(1, 1, mono))
}

func TestAdjustVolume(t *testing.T) {
	d := []float32{1, -0.5}
	AdjustVolume(0.5, d)
	assert.Equal(t, []float32{0.5, -0.25}, d)
}

func TestRMS(t *testing.T) {
	_, err := RMS(nil)
	assert.Error(t, err)

	v, err := RMS([]float32{1, -1, 1, -1})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v, 1e-6)
}

func TestSNR(t *testing.T) {
	ref := []float32{0.5, -0.5, 0.5, -0.5}

	v, err := SNR(ref, ref)
	require.NoError(t, err)
	assert.True(t, math32.IsInf(v, 1))

	noisy := []float32{0.55, -0.55, 0.55, -0.55}
	v, err = SNR(ref, noisy)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, v, 1e-3)

	_, err = SNR(nil, ref)
	assert.Error(t, err)
}
