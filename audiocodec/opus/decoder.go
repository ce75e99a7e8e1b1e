package opus

import (
	"fmt"

	"github.com/dh1tw/opusbox/audio"
	"github.com/dh1tw/opusbox/audiocodec"
	opus "gopkg.in/hraban/opus.v2"
)

// decoder is the handle returned by CreateDecoder.
type decoder struct {
	dec        *opus.Decoder
	samplerate int
	channels   int
	scratch    []int16
}

// CreateDecoder creates a libopus decoder for the given samplerate and
// channels.
func (c *Codec) CreateDecoder(samplerate, channels int) (audiocodec.Handle, error) {

	dec, err := opus.NewDecoder(samplerate, channels)
	if err != nil {
		return nil, fmt.Errorf("opus decoder: %w", err)
	}

	return &decoder{
		dec:        dec,
		samplerate: samplerate,
		channels:   channels,
		scratch:    make([]int16, c.options.MaxFrameSize*channels),
	}, nil
}

// Decode an opus packet into out (interleaved s16le). On success, the
// number of samples per channel written into out will be returned.
func (c *Codec) Decode(h audiocodec.Handle, packet []byte, out []byte) int {

	d, ok := h.(*decoder)
	if !ok {
		return audiocodec.StatusBadArg
	}
	if d.dec == nil {
		return audiocodec.StatusInvalidState
	}

	if len(packet) == 0 {
		return audiocodec.StatusInvalidPacket
	}

	samples := d.scratch
	if max := len(out) / 2; max < len(samples) {
		samples = samples[:max]
	}

	n, err := d.dec.Decode(packet, samples)
	if err != nil {
		return status(err)
	}

	audio.Int16ToBytes(out, samples[:n*d.channels])
	return n
}

// DecoderCtl applies a control request to the decoder. The libopus bindings
// only allow the decoder state to be reset; SetGainRequest is Unimplemented.
func (c *Codec) DecoderCtl(h audiocodec.Handle, id, value int) int {

	d, ok := h.(*decoder)
	if !ok {
		return audiocodec.StatusBadArg
	}
	if d.dec == nil {
		return audiocodec.StatusInvalidState
	}

	switch id {
	case audiocodec.ResetStateRequest:
		dec, err := opus.NewDecoder(d.samplerate, d.channels)
		if err != nil {
			return status(err)
		}
		d.dec = dec
		return audiocodec.StatusOK
	}

	return audiocodec.StatusUnimplemented
}
