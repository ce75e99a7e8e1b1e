package g711

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/dh1tw/opusbox/audiocodec"
	"github.com/zaf/g711"
)

type decoder struct {
	samplerate int
	channels   int
	gain       int // Q8 dB
	destroyed  bool
}

// CreateDecoder returns a new µ-law decoder handle.
func (c *Codec) CreateDecoder(samplerate, channels int) (audiocodec.Handle, error) {
	if samplerate <= 0 || channels < 1 {
		return nil, fmt.Errorf("g711 decoder %d Hz / %d channels: %w",
			samplerate, channels, audiocodec.Status(audiocodec.StatusBadArg))
	}
	return &decoder{samplerate: samplerate, channels: channels}, nil
}

// Decode expands a µ-law packet into s16le samples and returns the number
// of samples per channel.
func (c *Codec) Decode(h audiocodec.Handle, packet []byte, out []byte) int {

	d, ok := h.(*decoder)
	if !ok {
		return audiocodec.StatusBadArg
	}
	if d.destroyed {
		return audiocodec.StatusInvalidState
	}

	if len(packet) == 0 || len(packet)%d.channels != 0 {
		return audiocodec.StatusInvalidPacket
	}

	frameSize := len(packet) / d.channels
	if !audiocodec.ValidFrameSize(frameSize, d.samplerate) {
		return audiocodec.StatusInvalidPacket
	}

	if len(packet)*2 > len(out) {
		return audiocodec.StatusBufferTooSmall
	}

	scale := 1.0
	if d.gain != 0 {
		scale = math.Pow(10, float64(d.gain)/(20*256))
	}

	for i, b := range packet {
		s := g711.DecodeUlawFrame(b)
		if scale != 1.0 {
			s = clip(float64(s) * scale)
		}
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}

	return frameSize
}

// DecoderCtl applies a control request to the decoder.
func (c *Codec) DecoderCtl(h audiocodec.Handle, id, value int) int {

	d, ok := h.(*decoder)
	if !ok {
		return audiocodec.StatusBadArg
	}
	if d.destroyed {
		return audiocodec.StatusInvalidState
	}

	switch id {
	case audiocodec.SetGainRequest:
		if value < math.MinInt16 || value > math.MaxInt16 {
			return audiocodec.StatusBadArg
		}
		d.gain = value
	case audiocodec.ResetStateRequest:
		// µ-law is stateless; the gain survives a reset
	default:
		return audiocodec.StatusUnimplemented
	}

	return audiocodec.StatusOK
}

func clip(v float64) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}
