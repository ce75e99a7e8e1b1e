package opus

import (
	"fmt"

	"github.com/dh1tw/opusbox/audio"
	"github.com/dh1tw/opusbox/audiocodec"
	opus "gopkg.in/hraban/opus.v2"
)

// encoder is the handle returned by CreateEncoder.
type encoder struct {
	enc      *opus.Encoder
	channels int
	scratch  []int16
}

// CreateEncoder creates a libopus encoder for the given samplerate,
// channels and application.
func (c *Codec) CreateEncoder(samplerate, channels int, app audiocodec.Application) (audiocodec.Handle, error) {

	enc, err := opus.NewEncoder(samplerate, channels, opus.Application(app))
	if err != nil {
		return nil, fmt.Errorf("opus encoder: %w", err)
	}

	return &encoder{
		enc:      enc,
		channels: channels,
		scratch:  make([]int16, c.options.MaxFrameSize*channels),
	}, nil
}

// Encode the s16le samples in pcm with libopus into out. On success the
// amount of bytes written into out is returned.
func (c *Codec) Encode(h audiocodec.Handle, pcm []byte, sampleCount int, out []byte, frameSize int) int {

	e, ok := h.(*encoder)
	if !ok {
		return audiocodec.StatusBadArg
	}
	if e.enc == nil {
		return audiocodec.StatusInvalidState
	}

	if sampleCount != frameSize*e.channels || sampleCount > len(e.scratch) ||
		sampleCount*2 > len(pcm) {
		return audiocodec.StatusBadArg
	}

	samples := e.scratch[:sampleCount]
	audio.BytesToInt16(samples, pcm)

	n, err := e.enc.Encode(samples, out)
	if err != nil {
		return status(err)
	}
	return n
}

// EncoderCtl applies a control request to the encoder.
func (c *Codec) EncoderCtl(h audiocodec.Handle, id, value int) int {

	e, ok := h.(*encoder)
	if !ok {
		return audiocodec.StatusBadArg
	}
	if e.enc == nil {
		return audiocodec.StatusInvalidState
	}

	switch id {
	case audiocodec.SetBitrateRequest:
		switch value {
		case audiocodec.BitrateAuto:
			return status(e.enc.SetBitrateToAuto())
		case audiocodec.BitrateMax:
			return status(e.enc.SetBitrateToMax())
		}
		return status(e.enc.SetBitrate(value))
	case audiocodec.SetMaxBandwidthRequest:
		return status(e.enc.SetMaxBandwidth(opus.Bandwidth(value)))
	case audiocodec.SetComplexityRequest:
		return status(e.enc.SetComplexity(value))
	case audiocodec.SetInbandFECRequest:
		return status(e.enc.SetInBandFEC(value != 0))
	case audiocodec.SetPacketLossPercRequest:
		return status(e.enc.SetPacketLossPerc(value))
	case audiocodec.SetDTXRequest:
		return status(e.enc.SetDTX(value != 0))
	case audiocodec.ResetStateRequest:
		// clears the signal history, the settings above are kept
		return status(e.enc.Reset())
	}

	return audiocodec.StatusUnimplemented
}
