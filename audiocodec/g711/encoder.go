package g711

import (
	"encoding/binary"
	"fmt"

	"github.com/dh1tw/opusbox/audiocodec"
	"github.com/zaf/g711"
)

type encoder struct {
	samplerate  int
	channels    int
	application audiocodec.Application
	destroyed   bool

	// accepted for API parity, no influence on µ-law
	bitrate      int
	maxBandwidth int
	complexity   int
	inbandFEC    bool
	packetLoss   int
	dtx          bool
}

// CreateEncoder returns a new µ-law encoder handle.
func (c *Codec) CreateEncoder(samplerate, channels int, app audiocodec.Application) (audiocodec.Handle, error) {

	if samplerate <= 0 || channels < 1 {
		return nil, fmt.Errorf("g711 encoder %d Hz / %d channels: %w",
			samplerate, channels, audiocodec.Status(audiocodec.StatusBadArg))
	}

	switch app {
	case audiocodec.AppVoIP, audiocodec.AppAudio, audiocodec.AppRestrictedLowdelay:
	default:
		return nil, fmt.Errorf("g711 encoder application %d: %w",
			int(app), audiocodec.Status(audiocodec.StatusBadArg))
	}

	return &encoder{
		samplerate:   samplerate,
		channels:     channels,
		application:  app,
		bitrate:      samplerate * channels * 8,
		maxBandwidth: audiocodec.Fullband,
		complexity:   10,
	}, nil
}

// Encode compands sampleCount s16le samples into out.
func (c *Codec) Encode(h audiocodec.Handle, pcm []byte, sampleCount int, out []byte, frameSize int) int {

	e, ok := h.(*encoder)
	if !ok {
		return audiocodec.StatusBadArg
	}
	if e.destroyed {
		return audiocodec.StatusInvalidState
	}

	if !audiocodec.ValidFrameSize(frameSize, e.samplerate) ||
		sampleCount != frameSize*e.channels ||
		len(pcm) < sampleCount*2 {
		return audiocodec.StatusBadArg
	}

	if sampleCount > len(out) {
		return audiocodec.StatusBufferTooSmall
	}

	for i := 0; i < sampleCount; i++ {
		out[i] = g711.EncodeUlawFrame(int16(binary.LittleEndian.Uint16(pcm[2*i:])))
	}

	return sampleCount
}

// EncoderCtl applies a control request. The value ranges follow the ones
// of a libopus encoder.
func (c *Codec) EncoderCtl(h audiocodec.Handle, id, value int) int {

	e, ok := h.(*encoder)
	if !ok {
		return audiocodec.StatusBadArg
	}
	if e.destroyed {
		return audiocodec.StatusInvalidState
	}

	switch id {
	case audiocodec.SetBitrateRequest:
		switch {
		case value == audiocodec.BitrateAuto, value == audiocodec.BitrateMax:
			e.bitrate = e.samplerate * e.channels * 8
		case value <= 0:
			return audiocodec.StatusBadArg
		default:
			e.bitrate = value
		}
	case audiocodec.SetMaxBandwidthRequest:
		if value < audiocodec.Narrowband || value > audiocodec.Fullband {
			return audiocodec.StatusBadArg
		}
		e.maxBandwidth = value
	case audiocodec.SetComplexityRequest:
		if value < 0 || value > 10 {
			return audiocodec.StatusBadArg
		}
		e.complexity = value
	case audiocodec.SetInbandFECRequest:
		if value < 0 || value > 1 {
			return audiocodec.StatusBadArg
		}
		e.inbandFEC = value == 1
	case audiocodec.SetPacketLossPercRequest:
		if value < 0 || value > 100 {
			return audiocodec.StatusBadArg
		}
		e.packetLoss = value
	case audiocodec.SetDTXRequest:
		if value < 0 || value > 1 {
			return audiocodec.StatusBadArg
		}
		e.dtx = value == 1
	case audiocodec.ResetStateRequest:
		// µ-law is stateless
	default:
		return audiocodec.StatusUnimplemented
	}

	return audiocodec.StatusOK
}
