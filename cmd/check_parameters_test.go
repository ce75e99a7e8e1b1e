package cmd

import (
	"testing"

	"github.com/dh1tw/opusbox/audiocodec"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setDefaultCodecParameters() {
	viper.Reset()
	viper.Set("codec.name", "opus")
	viper.Set("codec.samplerate", 48000)
	viper.Set("codec.channels", 1)
	viper.Set("codec.application", "audio")
	viper.Set("codec.max-bandwidth", "fullband")
	viper.Set("codec.bitrate", 32000)
	viper.Set("codec.complexity", 9)
	viper.Set("codec.frame-length", 960)
	viper.Set("codec.packet-buffer", 4)
	viper.Set("output.bit-depth", 16)
	viper.Set("output.volume", 1.0)
}

func TestCheckCodecParameterValues(t *testing.T) {
	defer viper.Reset()

	setDefaultCodecParameters()
	require.NoError(t, checkCodecParameterValues())

	tests := []struct {
		key   string
		value interface{}
	}{
		{"codec.name", "mp3"},
		{"codec.samplerate", 44100},
		{"codec.channels", 0},
		{"codec.channels", 3},
		{"codec.application", "music"},
		{"codec.max-bandwidth", "ultraband"},
		{"codec.bitrate", 5999},
		{"codec.bitrate", 510001},
		{"codec.complexity", 11},
		{"codec.frame-length", 1000},
		{"codec.packet-buffer", 0},
		{"output.bit-depth", 12},
		{"output.volume", 1.5},
		{"output.volume", -0.1},
	}

	for _, tc := range tests {
		setDefaultCodecParameters()
		viper.Set(tc.key, tc.value)

		err := checkCodecParameterValues()
		require.Error(t, err, "%v = %v", tc.key, tc.value)

		pe, ok := err.(*parmError)
		require.True(t, ok)
		assert.Equal(t, tc.key, pe.parm)
	}
}

func TestFrameLengthDependsOnSamplerate(t *testing.T) {
	defer viper.Reset()

	// 160 samples are 20ms @ 8kHz but 3.33ms @ 48kHz
	setDefaultCodecParameters()
	viper.Set("codec.frame-length", 160)
	assert.Error(t, checkCodecParameterValues())

	viper.Set("codec.samplerate", 8000)
	assert.NoError(t, checkCodecParameterValues())
}

func TestGetApplication(t *testing.T) {
	app, err := getApplication("VOIP")
	require.NoError(t, err)
	assert.Equal(t, audiocodec.AppVoIP, app)

	app, err = getApplication("restricted_lowdelay")
	require.NoError(t, err)
	assert.Equal(t, audiocodec.AppRestrictedLowdelay, app)

	_, err = getApplication("")
	assert.Error(t, err)
}

func TestGetMaxBandwidth(t *testing.T) {
	bw, err := getMaxBandwidth("SuperWideband")
	require.NoError(t, err)
	assert.Equal(t, audiocodec.SuperWideband, bw)

	_, err = getMaxBandwidth("")
	assert.Error(t, err)
}
