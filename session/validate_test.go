package session

import (
	"errors"
	"testing"

	"github.com/dh1tw/opusbox/audiocodec"
	"github.com/stretchr/testify/assert"
)

func TestValidateSamplingRate(t *testing.T) {
	for _, sr := range []int{8000, 12000, 16000, 24000, 48000} {
		assert.NoError(t, ValidateSamplingRate(sr))
	}
	for _, sr := range []int{0, -8000, 11025, 22050, 44100, 96000} {
		assert.ErrorIs(t, ValidateSamplingRate(sr), ErrInvalidArgument, "%d", sr)
	}
}

func TestValidateChannels(t *testing.T) {
	assert.NoError(t, ValidateChannels(1))
	assert.NoError(t, ValidateChannels(2))
	assert.ErrorIs(t, ValidateChannels(0), ErrInvalidArgument)
	assert.ErrorIs(t, ValidateChannels(-1), ErrInvalidArgument)
}

func TestValidateApplication(t *testing.T) {
	assert.NoError(t, ValidateApplication(audiocodec.AppVoIP))
	assert.NoError(t, ValidateApplication(audiocodec.AppAudio))
	assert.NoError(t, ValidateApplication(audiocodec.AppRestrictedLowdelay))
	assert.ErrorIs(t, ValidateApplication(2050), ErrInvalidArgument)
	assert.ErrorIs(t, ValidateApplication(0), ErrInvalidArgument)
}

func TestValidateFrameSize(t *testing.T) {
	tests := []struct {
		samples    int
		samplerate int
		valid      bool
	}{
		{120, 48000, true},
		{240, 48000, true},
		{480, 48000, true},
		{960, 48000, true},
		{1920, 48000, true},
		{2880, 48000, true},
		{20, 8000, true},
		{160, 8000, true},
		{480, 8000, true},
		{1440, 48000, false},
		{100, 48000, false},
		{0, 48000, false},
		{-960, 48000, false},
		{5760, 48000, false},
	}

	for _, tc := range tests {
		err := ValidateFrameSize(tc.samples, tc.samplerate)
		if tc.valid {
			assert.NoError(t, err, "%d @ %d", tc.samples, tc.samplerate)
		} else {
			assert.ErrorIs(t, err, ErrInvalidArgument, "%d @ %d", tc.samples, tc.samplerate)
		}
	}
}

func TestValidateControl(t *testing.T) {
	assert.NoError(t, ValidateControl(audiocodec.SetBitrateRequest))
	assert.ErrorIs(t, ValidateControl(0), ErrInvalidArgument)

	var pe *ParamError
	assert.True(t, errors.As(ValidateControl(-4002), &pe))
	assert.Equal(t, "ctl request -4002: request id must be > 0", pe.Error())
}
