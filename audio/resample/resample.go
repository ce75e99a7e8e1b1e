// Package resample converts complete audio buffers between sampling rates
// with libsamplerate.
package resample

import (
	"fmt"

	"github.com/dh1tw/gosamplerate"
	"github.com/dh1tw/opusbox/audio"
)

// Msg returns a copy of msg converted to samplerate. If msg already has
// the requested samplerate it is returned unchanged.
func Msg(msg audio.Msg, samplerate float64) (audio.Msg, error) {

	if msg.Samplerate == samplerate {
		return msg, nil
	}

	if msg.Samplerate <= 0 || samplerate <= 0 || msg.Channels < 1 {
		return audio.Msg{}, fmt.Errorf("can not resample from %v Hz to %v Hz", msg.Samplerate, samplerate)
	}

	if len(msg.Data) == 0 {
		msg.Samplerate = samplerate
		return msg, nil
	}

	ratio := samplerate / msg.Samplerate
	data, err := gosamplerate.Simple(msg.Data, ratio, msg.Channels, gosamplerate.SRC_SINC_MEDIUM_QUALITY)
	if err != nil {
		return audio.Msg{}, fmt.Errorf("resample: %v", err)
	}

	return audio.Msg{
		Data:       data,
		Samplerate: samplerate,
		Channels:   msg.Channels,
		Frames:     len(data) / msg.Channels,
		EOF:        msg.EOF,
	}, nil
}
