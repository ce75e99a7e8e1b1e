package cmd

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/dh1tw/opusbox/audio"
	"github.com/dh1tw/opusbox/audio/sinks/wavWriter"
	"github.com/dh1tw/opusbox/audio/sources/wavReader"
	"github.com/dh1tw/opusbox/audiocodec"
	"github.com/dh1tw/opusbox/audiocodec/g711"
	"github.com/dh1tw/opusbox/session"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sine(freq, samplerate float64, frames, channels int) audio.Msg {
	data := make([]float32, 0, frames*channels)
	for i := 0; i < frames; i++ {
		v := float32(0.5 * math.Sin(2*math.Pi*freq*float64(i)/samplerate))
		for ch := 0; ch < channels; ch++ {
			data = append(data, v)
		}
	}
	return audio.Msg{
		Data:       data,
		Samplerate: samplerate,
		Channels:   channels,
		Frames:     frames,
		EOF:        true,
	}
}

func newG711Session(t *testing.T, samplerate, channels int) *session.Session {
	t.Helper()
	s, err := session.New(session.NewRuntime(g711.New(0)), samplerate, channels,
		audiocodec.AppVoIP, session.WithRegistry(session.NewRegistry()))
	require.NoError(t, err)
	t.Cleanup(func() { s.Destroy() })
	return s
}

func TestRunRoundtrip(t *testing.T) {
	s := newG711Session(t, 8000, 1)

	// 1s plus a partial frame
	in := sine(440, 8000, 8050, 1)

	res, err := runRoundtrip(s, in, 160, 3)
	require.NoError(t, err)

	assert.Equal(t, 51, res.packets)
	assert.Equal(t, 51*160, res.bytes)
	assert.Equal(t, 160, res.maxPacket)
	assert.Equal(t, 51*160, res.decoded.Frames)
	assert.Equal(t, 8000.0, res.decoded.Samplerate)
	assert.InDelta(t, 64000, res.bitrate(), 1)

	snr, err := audio.SNR(res.reference.Data, res.decoded.Data)
	require.NoError(t, err)
	assert.Greater(t, snr, float32(25))

	// the padding is silent
	for _, v := range res.decoded.Data[8050:] {
		assert.InDelta(t, 0, v, 0.001)
	}
}

func TestRunRoundtripDownmix(t *testing.T) {
	s := newG711Session(t, 16000, 1)

	in := sine(1000, 16000, 3200, 2)

	res, err := runRoundtrip(s, in, 320, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, res.reference.Channels)
	assert.Len(t, res.reference.Data, 3200)
	assert.Equal(t, 10, res.packets)
	assert.Equal(t, 3200, res.decoded.Frames)
}

func TestRunRoundtripEncodeError(t *testing.T) {
	s := newG711Session(t, 48000, 2)

	in := sine(440, 48000, 2880, 2)

	// 60ms stereo µ-law packets exceed the maximum packet size
	_, err := runRoundtrip(s, in, 2880, 2)
	assert.ErrorIs(t, err, session.ErrEncode)
	assert.Equal(t, session.Ready, s.State())
}

func TestNewCodec(t *testing.T) {
	c, err := newCodec("G711")
	require.NoError(t, err)
	assert.Equal(t, "g711", c.Name())

	_, err = newCodec("mp3")
	assert.Error(t, err)
}

func writeSineFile(t *testing.T, path string, samplerate float64, frames int) {
	t.Helper()
	w, err := wavWriter.NewWavWriter(path, wavWriter.Channels(1), wavWriter.Samplerate(samplerate))
	require.NoError(t, err)
	require.NoError(t, w.Write(sine(440, samplerate, frames, 1)))
	require.NoError(t, w.Close())
}

func TestRoundtripFile(t *testing.T) {
	defer viper.Reset()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	out := filepath.Join(dir, "out.wav")
	writeSineFile(t, in, 8000, 1600)

	setDefaultCodecParameters()
	viper.Set("codec.name", "g711")
	viper.Set("codec.samplerate", 8000)
	viper.Set("codec.frame-length", 160)
	viper.Set("output.bit-depth", 24)
	viper.Set("output.volume", 0.5)

	require.NoError(t, roundtripFile(in, out))
	assert.Zero(t, session.DefaultRegistry.Len())

	msg, err := wavReader.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 1, msg.Channels)
	assert.Equal(t, 8000.0, msg.Samplerate)
	assert.Equal(t, 1600, msg.Frames)

	rms, err := audio.RMS(msg.Data)
	require.NoError(t, err)
	// half the volume of a sine with an amplitude of 0.5
	assert.InDelta(t, 0.25/math.Sqrt2, rms, 0.01)
}

func TestRoundtripFileDestroysSessionOnError(t *testing.T) {
	defer viper.Reset()

	setDefaultCodecParameters()
	viper.Set("codec.name", "g711")

	err := roundtripFile(filepath.Join(t.TempDir(), "missing.wav"), "")
	require.Error(t, err)
	assert.Zero(t, session.DefaultRegistry.Len())

	// encode error after the session has been created
	in := filepath.Join(t.TempDir(), "in.wav")
	writeSineFile(t, in, 48000, 2880)

	viper.Set("codec.channels", 2)
	viper.Set("codec.frame-length", 2880)

	err = roundtripFile(in, "")
	assert.ErrorIs(t, err, session.ErrEncode)
	assert.Zero(t, session.DefaultRegistry.Len())
}

func TestRoundtripFileInvalidParameters(t *testing.T) {
	defer viper.Reset()

	setDefaultCodecParameters()
	viper.Set("codec.name", "g711")

	assert.Error(t, roundtripFile("", ""))

	viper.Set("output.volume", 2.0)
	err := roundtripFile("in.wav", "")
	var pe *parmError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "output.volume", pe.parm)
}
