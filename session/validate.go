package session

import (
	"github.com/dh1tw/opusbox/audiocodec"
)

// ValidSamplingRates contains the sampling rates a session can be created
// with.
var ValidSamplingRates = []int{8000, 12000, 16000, 24000, 48000}

// ValidateSamplingRate checks that rate is one of ValidSamplingRates.
func ValidateSamplingRate(rate int) error {
	for _, sr := range ValidSamplingRates {
		if sr == rate {
			return nil
		}
	}
	return &ParamError{
		Param: "sampling rate",
		Value: rate,
		Msg:   "allowed values are [8000, 12000, 16000, 24000, 48000]",
	}
}

// ValidateChannels checks that at least one channel is requested.
func ValidateChannels(n int) error {
	if n < 1 {
		return &ParamError{
			Param: "channels",
			Value: n,
			Msg:   "value must be >= 1",
		}
	}
	return nil
}

// ValidateApplication checks that app is one of audiocodec.Applications.
func ValidateApplication(app audiocodec.Application) error {
	for _, a := range audiocodec.Applications {
		if a == app {
			return nil
		}
	}
	return &ParamError{
		Param: "application",
		Value: int(app),
		Msg:   "allowed values are VOIP (2048), AUDIO (2049) or RESTRICTED_LOWDELAY (2051)",
	}
}

// ValidateFrameSize checks that samples (per channel) at sampleRate result
// in a frame of 2.5, 5, 10, 20, 40 or 60ms.
func ValidateFrameSize(samples, sampleRate int) error {
	if !audiocodec.ValidFrameSize(samples, sampleRate) {
		return &ParamError{
			Param: "frame size",
			Value: samples,
			Msg:   "frame size / sampling rate must result in 2.5, 5, 10, 20, 40 or 60ms",
		}
	}
	return nil
}

// ValidateControl checks the request id of a CTL call. The value is
// validated by the codec.
func ValidateControl(id int) error {
	if id <= 0 {
		return &ParamError{
			Param: "ctl request",
			Value: id,
			Msg:   "request id must be > 0",
		}
	}
	return nil
}
