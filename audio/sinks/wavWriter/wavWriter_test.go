package wavWriter

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/dh1tw/opusbox/audio"
	"github.com/dh1tw/opusbox/audio/sources/wavReader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sine(frames int, samplerate float64) []float32 {
	data := make([]float32, frames)
	for i := range data {
		data[i] = float32(0.5 * math.Sin(2*math.Pi*440*float64(i)/samplerate))
	}
	return data
}

func TestWriteRead(t *testing.T) {

	path := filepath.Join(t.TempDir(), "sine.wav")

	w, err := NewWavWriter(path, Channels(1), Samplerate(16000))
	require.NoError(t, err)

	in := audio.Msg{
		Data:       sine(1600, 16000),
		Samplerate: 16000,
		Channels:   1,
		Frames:     1600,
		EOF:        true,
	}
	require.NoError(t, w.Write(in))
	assert.Equal(t, 1600, w.Frames())
	require.NoError(t, w.Close())

	out, err := wavReader.ReadFile(path, wavReader.FramesPerBuffer(256))
	require.NoError(t, err)

	assert.Equal(t, 1, out.Channels)
	assert.Equal(t, 16000.0, out.Samplerate)
	require.Equal(t, 1600, out.Frames)
	assert.InDeltaSlice(t, in.Data, out.Data, 1.0/16384)
}

func TestWriteAdjustsChannels(t *testing.T) {

	path := filepath.Join(t.TempDir(), "stereo.wav")

	w, err := NewWavWriter(path, Channels(2), Samplerate(8000))
	require.NoError(t, err)

	in := audio.Msg{
		Data:       sine(800, 8000),
		Samplerate: 8000,
		Channels:   1,
		Frames:     800,
		EOF:        true,
	}
	require.NoError(t, w.Write(in))
	require.NoError(t, w.Close())

	out, err := wavReader.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Channels)
	assert.Equal(t, 800, out.Frames)
	assert.InDelta(t, out.Data[20], out.Data[21], 1e-6)
}

func TestWriteBitDepthAndVolume(t *testing.T) {

	path := filepath.Join(t.TempDir(), "quiet24.wav")

	w, err := NewWavWriter(path, Channels(1), Samplerate(8000), BitDepth(24))
	require.NoError(t, err)
	w.SetVolume(0.5)

	in := audio.Msg{
		Data:       sine(800, 8000),
		Samplerate: 8000,
		Channels:   1,
		Frames:     800,
		EOF:        true,
	}
	require.NoError(t, w.Write(in))
	require.NoError(t, w.Close())

	out, err := wavReader.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, 800, out.Frames)

	for i := range in.Data {
		assert.InDelta(t, in.Data[i]*0.5, out.Data[i], 1e-5, "sample %d", i)
	}
}

func TestUnsupportedBitDepth(t *testing.T) {
	w, err := NewWavWriter(filepath.Join(t.TempDir(), "x.wav"), BitDepth(12))
	require.NoError(t, err)
	defer w.Close()
	assert.Equal(t, 16, w.options.BitDepth)
}

func TestSetVolume(t *testing.T) {
	w := &WavWriter{}
	w.SetVolume(2)
	assert.Equal(t, float32(1), w.Volume())
	w.SetVolume(-1)
	assert.Equal(t, float32(0), w.Volume())
}

func TestReadInvalidFile(t *testing.T) {
	_, err := wavReader.ReadFile(filepath.Join(t.TempDir(), "missing.wav"))
	assert.Error(t, err)
}
